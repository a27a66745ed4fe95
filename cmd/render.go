package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/portfolio-pdf/report"
	"github.com/google/subcommands"
)

// renderCmd holds the flags for the 'render' subcommand.
type renderCmd struct {
	preset string
	input  string
	output string
	path   string
	brk    string
	theme  string
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render holdings into a PDF table" }
func (*renderCmd) Usage() string {
	return `ppdf render [-v <preset>] [-i <input>] [-o <file.pdf>] [-path <jsonpath>] [-break row|group|keep] [-theme plain|grey|dark]

  Renders the holdings as a paginated table using a preset layout.
  See 'ppdf presets' for the available presets.
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.preset, "v", "a4", "Preset to render.")
	f.StringVar(&c.input, "i", "", "Holdings JSON file. Defaults to the global -input.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the preset file name in the output folder.")
	f.StringVar(&c.path, "path", "", "JSONPath selecting the holdings array, e.g. $.data.holdings")
	f.StringVar(&c.brk, "break", "", "Page break policy: row, group or keep.")
	f.StringVar(&c.theme, "theme", "", "Color theme: plain, grey or dark.")
}

func (c *renderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := preset(c.preset)
	if err == nil {
		v, err = customize(v, c.theme, c.brk)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	records, err := loadRecords(c.input, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	dir := config.OutDir
	if c.output != "" {
		dir, v.Output = filepath.Split(c.output)
	}
	res, err := report.Generate(ctx, v, records, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %q: %v\n", v.Name, err)
		return subcommands.ExitFailure
	}
	logStats(res)
	return subcommands.ExitSuccess
}
