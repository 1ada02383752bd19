package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/avanlin/srcstat"
	"github.com/avanlin/srcstat/report"
	"github.com/avanlin/srcstat/scanner"
)

type WatchCmd struct {
	File       string `help:"C source file to watch." arg:"" type:"existingfile"`
	TabStop    int    `help:"Column multiple for tab expansion." default:"8" env:"SRCSTAT_TAB_STOP"`
	TotalsOnly bool   `help:"Print only the raw counters, no percentages or averages."`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.rescan(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "Watching %s for changes (ctrl-c to stop)", pathStyle.Render(cmd.File))

	// Debounce timer - editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		var fire <-chan time.Time
		if debounce != nil {
			fire = debounce.C
		}

		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))

		case <-fire:
			debounce = nil
			// Editors that replace the file via rename drop the
			// watch; re-adding restores it once the file is back.
			_ = watcher.Add(cmd.File)
			if err := cmd.rescan(ctx); err != nil {
				printError(ctx.Stderr, err.Error())
			}
		}
	}
}

// rescan runs one scan of the watched file and prints a fresh report.
func (cmd *WatchCmd) rescan(ctx *kong.Context) error {
	f, err := os.Open(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cmd.File, err)
	}
	defer func() {
		_ = f.Close()
	}()

	stats, err := srcstat.Scan(f, scanner.WithTabStop(cmd.TabStop))
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "%s at %s", pathStyle.Render(cmd.File), time.Now().Format("15:04:05"))

	var opts []report.Option
	if cmd.TotalsOnly {
		opts = append(opts, report.WithTotalsOnly())
	}
	if err := report.Render(ctx.Stdout, stats, opts...); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, _ = fmt.Fprintln(ctx.Stdout)

	return nil
}
