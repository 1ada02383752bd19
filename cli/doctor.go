package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/avanlin/srcstat/scanner"
)

// DoctorCmd provides doctor utilities for debugging the scanner.
type DoctorCmd struct {
	Lex LexCmd `cmd:"" help:"Show per-line lexical classification for a C source file."`
}

// LexCmd dumps how the scanner classified each input line.
type LexCmd struct {
	File    FileOrStdin `help:"C source filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	TabStop int         `help:"Column multiple for tab expansion." default:"8" env:"SRCSTAT_TAB_STOP"`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	src, err := cmd.File.Source()
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", cmd.File.Filename, err))
		return NewCommandError(1)
	}

	s := scanner.New(scanner.WithTabStop(cmd.TabStop))
	br := bufio.NewScanner(bytes.NewReader(src))
	br.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Format: LINE start→end indent=N flags
	for br.Scan() {
		info := s.ScanLine(br.Bytes())
		_, _ = fmt.Fprintf(ctx.Stdout, "%4d  %-7s  %-7s  indent=%-3d %s\n",
			info.Number,
			info.StartMode.String(),
			info.EndMode.String(),
			info.Indent,
			lineFlags(info))
	}
	if err := br.Err(); err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", cmd.File.Filename, err))
		return NewCommandError(1)
	}

	return nil
}

func lineFlags(info scanner.LineInfo) string {
	var flags []string
	if info.Blank {
		flags = append(flags, "blank")
	}
	if info.CommentOnly {
		flags = append(flags, "comment-only")
	}
	if info.OpenBrace {
		flags = append(flags, "open-brace")
	}
	if info.CloseBrace {
		flags = append(flags, "close-brace")
	}
	return strings.Join(flags, ",")
}
