package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/coregx/wildmatch"
	"github.com/coregx/wildmatch/internal/logger"
)

// Exit statuses, as in grep.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

const maxLineSize = 1 << 20

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	opt, rest, err := parseArgs(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitMatch
		}
		log.Error("invalid arguments", "err", err)
		return exitError
	}
	if err := logger.Level.SetByName(opt.LogLevel); err != nil {
		log.Error("invalid arguments", "err", err)
		return exitError
	}

	set, files, err := opt.compile(rest)
	if err != nil {
		log.Error("cannot compile patterns", "err", err)
		return exitError
	}
	log.Debug("compiled patterns", "patterns", set.Len(), "files", len(files))

	if len(files) == 0 {
		files = []string{"-"}
	}

	g := &grep{
		set:      set,
		invert:   opt.Invert,
		count:    opt.Count,
		withName: len(files) > 1,
		out:      bufio.NewWriter(stdout),
		stdin:    stdin,
		log:      log,
	}
	defer g.out.Flush()

	status := exitNoMatch
	for _, name := range files {
		selected, err := g.file(name)
		if err != nil {
			log.Error("cannot read input", "file", name, "err", err)
			status = exitError
			continue
		}
		if selected > 0 && status == exitNoMatch {
			status = exitMatch
		}
	}
	return status
}

// compile turns the option patterns into a set and returns the files to read.
func (o *Option) compile(rest []string) (*wildmatch.Set, []string, error) {
	config, err := o.config()
	if err != nil {
		return nil, nil, err
	}
	sources, files, err := o.patternSources(rest)
	if err != nil {
		return nil, nil, err
	}

	patterns := make([]*wildmatch.Pattern, 0, len(sources))
	for _, src := range sources {
		p, err := wildmatch.CompileWithConfig(src, config)
		if err != nil {
			return nil, nil, fmt.Errorf("compile pattern %q: %w", src, err)
		}
		patterns = append(patterns, p)
	}
	return wildmatch.NewSet(patterns...), files, nil
}

// grep selects the lines of its inputs.
type grep struct {
	set      *wildmatch.Set
	invert   bool
	count    bool
	withName bool
	out      *bufio.Writer
	stdin    io.Reader
	log      *slog.Logger
}

// file processes one named input ("-" for stdin) and returns the number of
// selected lines.
func (g *grep) file(name string) (int, error) {
	r := g.stdin
	label := "(standard input)"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r, label = f, name
	}

	selected, err := g.scan(r, label)
	if err != nil {
		return selected, fmt.Errorf("%s: %w", label, err)
	}
	g.log.Debug("input done", "file", label, "selected", selected)
	return selected, nil
}

func (g *grep) scan(r io.Reader, label string) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)

	selected := 0
	for sc.Scan() {
		line := sc.Text()
		if g.set.MatchString(line) == g.invert {
			continue
		}
		selected++
		if !g.count {
			g.printLine(label, line)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return selected, fmt.Errorf("line longer than %d bytes: %w", maxLineSize, err)
		}
		return selected, err
	}

	if g.count {
		g.printLine(label, fmt.Sprint(selected))
	}
	return selected, nil
}

// scanLines is bufio.ScanLines without dropping a trailing '\r': CRLF lines
// are matched and printed with their '\r', as grep does.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (g *grep) printLine(label, text string) {
	if g.withName {
		g.out.WriteString(label)
		g.out.WriteByte(':')
	}
	g.out.WriteString(text)
	g.out.WriteByte('\n')
}
