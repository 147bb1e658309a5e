package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/cli"
	"github.com/alnah/go-docpdf/internal/fileutil"
)

// errSkipped marks files never attempted because the batch stopped early.
var errSkipped = errors.New("skipped")

// conversionParams groups parameters shared by every file in the batch.
type conversionParams struct {
	language   string
	htmlOutput bool
	htmlOnly   bool
	now        func() time.Time
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files one at a time. A failed file is logged and
// the batch moves on; a browser that cannot start, or an interrupt, stops
// the batch and marks the rest as skipped.
func convertBatch(ctx context.Context, conv cli.Converter, files []FileToConvert, params *conversionParams, logger zerolog.Logger) []ConversionResult {
	results := make([]ConversionResult, 0, len(files))

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return appendSkipped(results, files[i:], err)
		}

		r := convertFile(ctx, conv, f, params)
		results = append(results, r)

		if r.Err != nil {
			logger.Error().Err(r.Err).Str("src", r.InputPath).Msg("conversion failed")
			if errors.Is(r.Err, docpdf.ErrBrowserConnect) {
				return appendSkipped(results, files[i+1:], r.Err)
			}
			continue
		}

		logger.Info().Str("src", r.InputPath).Str("dst", r.OutputPath).Msg("converted")
		logger.Debug().Str("src", r.InputPath).Str("took", cli.Elapsed(r.Duration)).Msg("timing")
	}

	return results
}

func appendSkipped(results []ConversionResult, rest []FileToConvert, cause error) []ConversionResult {
	for _, f := range rest {
		results = append(results, ConversionResult{
			InputPath: f.InputPath,
			Err:       fmt.Errorf("%w: %v", errSkipped, cause),
		})
	}
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv cli.Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = params.now().Sub(start)
		return result
	}

	code, err := fileutil.ReadText(f.InputPath)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", cli.ErrReadInput, err))
	}

	res, err := conv.ConvertSource(ctx, docpdf.SourceInput{
		Name:     filepath.Base(f.InputPath),
		Code:     code,
		Language: params.language,
		HTMLOnly: params.htmlOnly,
	})
	if err != nil {
		return finish(err)
	}

	if params.htmlOnly || params.htmlOutput {
		htmlPath := cli.HTMLPath(f.OutputPath)
		if err := cli.WriteOutput(htmlPath, res.HTML); err != nil {
			return finish(err)
		}
		if params.htmlOnly {
			result.OutputPath = htmlPath
			return finish(nil)
		}
	}

	return finish(cli.WriteOutput(f.OutputPath, res.PDF))
}

// ResultSummary holds the count of converted, failed and skipped files.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// countResults tallies the batch outcome.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err == nil:
			summary.Succeeded++
		case errors.Is(r.Err, errSkipped):
			summary.Skipped++
		default:
			summary.Failed++
		}
	}
	return summary
}

// firstError returns the first non-skip failure, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil && !errors.Is(r.Err, errSkipped) {
			return r.Err
		}
	}
	return nil
}
