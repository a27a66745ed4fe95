package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/portfolio-pdf/renderer"
	"github.com/etnz/portfolio-pdf/report"
	"github.com/google/subcommands"
)

// allCmd holds the flags for the 'all' subcommand.
type allCmd struct {
	input   string
	dir     string
	colored bool
}

func (*allCmd) Name() string     { return "all" }
func (*allCmd) Synopsis() string { return "render every preset" }
func (*allCmd) Usage() string {
	return `ppdf all [-i <input>] [-dir <folder>] [-colored]

  Renders the presets listed in the settings file (a4, v1, v2 and limitless
  by default) one after the other.
`
}

func (c *allCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Holdings JSON file. Defaults to the global -input.")
	f.StringVar(&c.dir, "dir", "", "Output folder. Defaults to the global -out-dir.")
	f.BoolVar(&c.colored, "colored", false, "Also render the colored presets.")
}

func (c *allCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := config.Presets
	if c.colored {
		names = append(names[:len(names):len(names)], report.Colored...)
	}
	vs, err := report.LookupAll(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for i := range vs {
		if vs[i], err = customize(vs[i], "", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	records, err := loadRecords(c.input, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := report.GenerateAll(ctx, vs, records, first(c.dir, config.OutDir))
	for _, res := range results {
		logStats(res)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderGenerated(renderer.NewGenerated(results)))
	return subcommands.ExitSuccess
}

// logStats logs the figures of a generated report.
func logStats(res report.Result) {
	if !*Verbose {
		return
	}
	log.Printf("%s: %d pages, %d rows, table %.2f pt on a %.2fx%.2f pt page",
		res.Variant, res.Stats.Pages, res.Stats.Rows, res.Stats.TableWidth, res.Width, res.Height)
}
