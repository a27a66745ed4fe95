// Package cmd implements the ppdf command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/etnz/portfolio-pdf"
	"github.com/etnz/portfolio-pdf/report"
	"github.com/etnz/portfolio-pdf/table"
	"github.com/google/subcommands"
	"github.com/subosito/gotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&renderCmd{}, "reports")
	c.Register(&allCmd{}, "reports")
	c.Register(&widthsCmd{}, "reports")
	c.Register(&presetsCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// Known reports whether name is a command registered in c.
func Known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	inputFlag  = flag.String("input", "", "Path to the holdings JSON file, or a folder containing "+portfolio.DefaultInput)
	outDirFlag = flag.String("out-dir", "", "Folder where PDF files are written")
	configFlag = flag.String("config", "", "Path to the settings file (default "+DefaultConfig+")")
	Verbose    = flag.Bool("verbose", false, "Log progress")
)

// DefaultConfig is the settings file read when none is given.
const DefaultConfig = "ppdf.yaml"

// config is the resolved configuration, set by Init.
var config Settings

// first returns the first non empty string.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Init resolves the configuration once the command line is parsed.
//
// Each setting comes from its flag, then its environment variable, then the
// settings file, then its default. A .env file in the working directory
// completes the environment without overriding it.
func Init() error {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}

	path := first(*configFlag, os.Getenv(EnvConfig))
	s, err := LoadSettings(first(path, DefaultConfig))
	if errors.Is(err, fs.ErrNotExist) && path == "" {
		s, err = Settings{}, nil
	}
	if err != nil {
		return err
	}

	config = s
	config.Input = first(*inputFlag, os.Getenv(EnvInput), s.Input, portfolio.DefaultInput)
	config.OutDir = first(*outDirFlag, os.Getenv(EnvOutDir), s.OutDir, ".")
	config.Currency = first(s.Currency, report.DefaultCurrency)
	if len(config.Presets) == 0 {
		config.Presets = report.Originals
	}
	if v := os.Getenv(EnvVerbose); v != "" && !*Verbose {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvVerbose, v, err)
		}
		*Verbose = b
	}

	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.Parse(time.DateTime, v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvTestingNow, v, err)
		}
		report.Now = func() time.Time { return t }
	}

	if *Verbose {
		log.Printf("input %q, output folder %q", config.Input, config.OutDir)
	}
	return nil
}

// loadRecords loads the holdings from input, or the configured input.
func loadRecords(input, path string) ([]*portfolio.Record, error) {
	input = first(input, config.Input)
	records, err := portfolio.LoadRecords(input, portfolio.DecodeOptions{Path: first(path, config.Path)})
	if err != nil {
		return nil, err
	}
	if *Verbose {
		log.Printf("loaded %d holdings, %d rows from %q", len(records), portfolio.CountRows(records), input)
	}
	return records, nil
}

// preset returns the preset called name with the configured theme, page
// break and currency.
func preset(name string) (report.Variant, error) {
	v, err := report.Lookup(name)
	if err != nil {
		return v, err
	}
	return customize(v, "", "")
}

// customize applies the theme, page break and currency settings to v. Empty
// values fall back to the settings file, then to the preset.
func customize(v report.Variant, theme, brk string) (report.Variant, error) {
	if name := first(theme, config.Theme); name != "" {
		t, err := table.ThemeByName(name)
		if err != nil {
			return v, err
		}
		v.Options.Theme = t
	}
	if name := first(brk, config.Break); name != "" {
		b, err := table.ParseBreakPolicy(name)
		if err != nil {
			return v, err
		}
		v.Options.Break = b
	}
	return v.WithCurrency(first(config.Currency, report.DefaultCurrency)), nil
}
