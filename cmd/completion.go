package cmd

import (
	"github.com/etnz/portfolio-pdf/docs"
	"github.com/etnz/portfolio-pdf/report"
	"github.com/etnz/portfolio-pdf/table"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	presets := predict.Set(report.Names())
	input := predict.Files("*.json")
	themes := predict.Set(table.ThemeNames())
	none := predict.Set{}
	topics, _ := docs.GetAllTopics()
	breaks := predict.Set{table.BreakPerRow.String(), table.BreakAfterGroup.String(), table.KeepGroups.String()}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"render": {
				Flags: map[string]complete.Predictor{
					"v":     presets,
					"i":     input,
					"o":     predict.Files("*.pdf"),
					"break": breaks,
					"theme": themes,
				},
			},
			"all": {
				Flags: map[string]complete.Predictor{
					"i":       input,
					"dir":     predict.Dirs("*"),
					"colored": none,
				},
			},
			"widths": {
				Flags: map[string]complete.Predictor{
					"v":    presets,
					"i":    input,
					"json": none,
				},
			},
			"presets": {},
			"topic":   {Args: predict.Set(append(topics, "readme"))},
			"help":    {},
		},
		Flags: map[string]complete.Predictor{
			"input":   input,
			"out-dir": predict.Dirs("*"),
			"config":  predict.Files("*.yaml"),
			"verbose": none,
		},
	}
}
