package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v2"

	"github.com/coregx/wildmatch"
)

// Option defines command line options.
type Option struct {
	IgnoreCase   bool   `short:"i" long:"ignore-case" description:"compare characters with Unicode case folding"`
	Multi        string `long:"multi" description:"multi-wildcard character" default:"*"`
	Single       string `long:"single" description:"single-wildcard character" default:"?"`
	Invert       bool   `short:"v" long:"invert-match" description:"select lines that do not match"`
	Count        bool   `short:"c" long:"count" description:"print only a count of selected lines per file"`
	PatternsFile string `short:"f" long:"patterns-file" description:"YAML file with a list of patterns" value-name:"FILE"`
	LogLevel     string `long:"log-level" description:"error, warn, info or debug" default:"warn"`
	NoPrefilter  bool   `long:"no-prefilter" description:"run the matcher on every line"`
}

// patternsFile is the layout of the --patterns-file document:
//
//	patterns:
//	  - "*.go"
//	  - "go.???"
type patternsFile struct {
	Patterns []string `yaml:"patterns"`
}

var errNoPattern = errors.New("no pattern given")

// parseArgs returns the parsed options and the remaining positional
// arguments.
func parseArgs(args []string) (*Option, []string, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "wildmatch"
	parser.Usage = "[OPTIONS] PATTERN [FILE...]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	return opt, rest, nil
}

func isHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// config builds the matching configuration from the options.
func (o *Option) config() (wildmatch.Config, error) {
	config := wildmatch.DefaultConfig()
	config.CaseInsensitive = o.IgnoreCase
	config.EnablePrefilter = !o.NoPrefilter

	var err error
	if config.MultiWildcard, err = symbol("multi", o.Multi); err != nil {
		return config, err
	}
	if config.SingleWildcard, err = symbol("single", o.Single); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func symbol(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// patternSources returns the pattern texts and the files to read: the
// patterns file when given, otherwise the first positional argument.
func (o *Option) patternSources(rest []string) (patterns, files []string, err error) {
	if o.PatternsFile == "" {
		if len(rest) == 0 {
			return nil, nil, errNoPattern
		}
		return rest[:1], rest[1:], nil
	}

	data, err := os.ReadFile(o.PatternsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read patterns file: %w", err)
	}
	var doc patternsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse patterns file %s: %w", o.PatternsFile, err)
	}
	if len(doc.Patterns) == 0 {
		return nil, nil, fmt.Errorf("patterns file %s: %w", o.PatternsFile, errNoPattern)
	}
	return doc.Patterns, rest, nil
}
