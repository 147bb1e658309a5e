package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default", opts: Options{}, wantInfo: true},
		{name: "verbose", opts: Options{Verbose: true}, wantDebug: true, wantInfo: true},
		{name: "quiet", opts: Options{Quiet: true}},
		{name: "quiet wins over verbose", opts: Options{Quiet: true, Verbose: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := New(&buf, tt.opts)

			log.Debug().Msg("lexer selected")
			log.Info().Msg("converted")
			log.Error().Err(errors.New("boom")).Msg("conversion failed")

			out := buf.String()
			if got := strings.Contains(out, "lexer selected"); got != tt.wantDebug {
				t.Errorf("debug present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "converted"); got != tt.wantInfo {
				t.Errorf("info present = %v, want %v\n%s", got, tt.wantInfo, out)
			}
			if !strings.Contains(out, "conversion failed") {
				t.Errorf("error line missing:\n%s", out)
			}
		})
	}
}

func TestNew_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, Options{})

	log.Info().Str("src", "a/b.c").Str("dst", "output/a/b.c.pdf").Msg("converted")

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "INF converted") {
		t.Errorf("line = %q, want prefix %q", line, "INF converted")
	}
	if !strings.Contains(line, "src=a/b.c") || !strings.Contains(line, "dst=output/a/b.c.pdf") {
		t.Errorf("line = %q, want src and dst fields", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Errorf("line contains ANSI color codes: %q", line)
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	log := Nop()
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Nop() level = %v, want disabled", log.GetLevel())
	}
}
