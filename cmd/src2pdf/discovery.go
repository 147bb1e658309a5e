package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles walks root and returns every regular file whose extension is
// in exts, sorted by path, with its mirrored output path under outputDir.
// Unreadable subtrees are logged and skipped. The output directory is never
// descended into when it lives under root.
func discoverFiles(root, outputDir string, exts []string, logger zerolog.Logger) ([]FileToConvert, error) {
	skip := absPath(outputDir)

	var files []FileToConvert
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && skip != "" && absPath(path) == skip {
				return filepath.SkipDir
			}
			return nil
		}

		if !slices.Contains(exts, filepath.Ext(path)) || !isRegular(path, d) {
			return nil
		}

		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(root, path, outputDir),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b FileToConvert) int {
		return strings.Compare(a.InputPath, b.InputPath)
	})
	return files, nil
}

// resolveOutputPath mirrors path's position under root into outputDir and
// keeps the source extension: root/a/b.c -> outputDir/a/b.c.pdf.
func resolveOutputPath(root, path, outputDir string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.Join(outputDir, rel+".pdf")
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return ""
	}
	return abs
}
