package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portfolio-pdf/renderer"
	"github.com/etnz/portfolio-pdf/report"
	"github.com/google/subcommands"
)

// widthsCmd holds the flags for the 'widths' subcommand.
type widthsCmd struct {
	preset string
	input  string
	json   bool
}

func (*widthsCmd) Name() string     { return "widths" }
func (*widthsCmd) Synopsis() string { return "show the column widths of a preset" }
func (*widthsCmd) Usage() string {
	return `ppdf widths [-v <preset>] [-i <input>] [-json]

  Measures the holdings and prints the page size and the width of every
  column, without writing any PDF.
`
}

func (c *widthsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.preset, "v", "a4", "Preset to measure.")
	f.StringVar(&c.input, "i", "", "Holdings JSON file. Defaults to the global -input.")
	f.BoolVar(&c.json, "json", false, "Print the widths as JSON.")
}

func (c *widthsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := preset(c.preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	records, err := loadRecords(c.input, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	res, err := report.Measure(v, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error measuring %q: %v\n", v.Name, err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding widths: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderWidths(renderer.NewWidths(res)))
	return subcommands.ExitSuccess
}
