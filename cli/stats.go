package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/avanlin/srcstat"
	"github.com/avanlin/srcstat/output"
	"github.com/avanlin/srcstat/report"
	"github.com/avanlin/srcstat/scanner"
	"github.com/avanlin/srcstat/telemetry"
)

type StatsCmd struct {
	File       FileOrStdin `help:"C source filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	TabStop    int         `help:"Column multiple for tab expansion." default:"8" env:"SRCSTAT_TAB_STOP"`
	TotalsOnly bool        `help:"Print only the raw counters, no percentages or averages."`
	JSON       bool        `help:"Emit the statistics as JSON."`
	Output     string      `help:"Write the report to a file instead of stdout." type:"path"`
	Force      bool        `help:"Overwrite the output file without confirmation." short:"f"`
}

func (cmd *StatsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewPhaseCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	readTimer := telemetry.FromContext(runCtx).Start("read")
	src, err := cmd.File.Source()
	readTimer.End()
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", cmd.File.Filename, err))
		return NewCommandError(1)
	}

	scanTimer := telemetry.FromContext(runCtx).Start("scan")
	stats := srcstat.ScanBytes(src, scanner.WithTabStop(cmd.TabStop))
	scanTimer.End()

	var buf bytes.Buffer
	var w io.Writer = ctx.Stdout
	if cmd.Output != "" {
		w = &buf
	}

	renderTimer := telemetry.FromContext(runCtx).Start("render")
	if cmd.JSON {
		err = report.RenderJSON(w, stats)
	} else {
		var opts []report.Option
		if cmd.TotalsOnly {
			opts = append(opts, report.WithTotalsOnly())
		}
		err = report.Render(w, stats, opts...)
	}
	renderTimer.End()
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cmd.Output == "" {
		return nil
	}

	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("File %q already exists. Overwrite?", cmd.Output))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Skipped writing %s", pathStyle.Render(cmd.Output))
			return nil
		}
	}

	if err := os.WriteFile(cmd.Output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Report written to %s", pathStyle.Render(cmd.Output)))

	return nil
}
