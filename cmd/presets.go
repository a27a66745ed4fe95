package cmd

import (
	"context"
	"flag"

	"github.com/etnz/portfolio-pdf/renderer"
	"github.com/etnz/portfolio-pdf/report"
	"github.com/google/subcommands"
)

type presetsCmd struct{}

func (*presetsCmd) Name() string     { return "presets" }
func (*presetsCmd) Synopsis() string { return "list the report presets" }
func (*presetsCmd) Usage() string {
	return `ppdf presets

  Lists the presets with their page, width policy and output file.
`
}

func (c *presetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *presetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderPresets(renderer.NewPresets(report.Variants())))
	return subcommands.ExitSuccess
}
