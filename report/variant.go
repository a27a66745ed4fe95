// Package report assembles holding tables into PDF files.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/portfolio-pdf/pdf"
	"github.com/etnz/portfolio-pdf/table"
)

// Variant is a named report preset: page geometry, columns and typography.
type Variant struct {
	Name        string
	Description string
	// Output is the default file name. "{stamp}" is replaced by the
	// generation time.
	Output  string
	Page    pdf.Page
	Columns []table.Column
	Policy  table.Policy
	Options table.Options
	// FitPage makes the page exactly as wide as the table and its margins.
	FitPage bool
}

// StampLayout formats the time replacing "{stamp}" in output file names.
const StampLayout = "20060102_150405"

// FileName returns the output file name for a report generated at t.
func (v Variant) FileName(t time.Time) string {
	return strings.ReplaceAll(v.Output, "{stamp}", t.Format(StampLayout))
}

// WithCurrency returns a copy of v whose money columns use currency.
func (v Variant) WithCurrency(currency string) Variant {
	cols := make([]table.Column, len(v.Columns))
	copy(cols, v.Columns)
	for i := range cols {
		if cols[i].IsMoney() {
			cols[i].Currency = currency
		}
	}
	v.Columns = cols
	return v
}

// Renderer returns the table renderer of the variant.
func (v Variant) Renderer() *table.Renderer {
	return &table.Renderer{Columns: v.Columns, Options: v.Options, Policy: v.Policy}
}

// coreColumns are the holding figures shared by most presets.
var coreColumns = []table.Column{
	table.C("symbol", "Symbol"),
	table.C("transaction_type", "Type"),
	table.C("lastTradedPrice", "LTP"),
	table.C("quantity", "Qty"),
	table.C("price", "Price"),
	table.C("unreal_gain", "Unreal Gain"),
	table.C("earnings_per_share", "EPS"),
	table.C("book_value_per_share", "BVPS"),
	table.C("return_on_asset", "ROA"),
	table.C("return_on_equity", "ROE"),
	table.C("market_cap", "Market Cap"),
	table.C("price_loans", "PL"),
	table.C("price_book", "PB"),
}

// fullColumns extend coreColumns with the transaction and market figures.
var fullColumns = append(coreColumns[:len(coreColumns):len(coreColumns)],
	table.C("transactionId", "Transaction ID"),
	table.C("total_investments", "Total Investments"),
	table.C("current_value", "Current Value"),
	table.C("unrealProfitPer", "Unreal Gain (%)"),
	table.C("amountReceivable", "Amount Receivable"),
	table.C("sectorName", "Sector"),
	table.C("securityName", "Security Name"),
	table.C("dailyChange", "Daily Change"),
	table.C("perChange", "Percent Change"),
	table.C("price_earnings", "PE"),
	table.C("interest_income", "Interest Income"),
	table.C("net_profit", "Net Profit"),
	table.C("cash_equivalents", "Cash Equivalents"),
)

// centered aligns every column on its center.
func centered(cols ...table.Column) []table.Column {
	for i := range cols {
		cols[i].Align = table.Center
	}
	return cols
}

var summaryColumns = centered(
	table.C("symbol", "Sym"),
	table.C("transaction_type", "Type"),
	table.C("lastTradedPrice", "LTP"),
	table.C("quantity", "Q"),
	table.C("price", "Pr"),
	table.C("unreal_gain", "Unr"),
	table.C("earnings_per_share", "E"),
	table.C("book_value_per_share", "B"),
	table.C("return_on_asset", "R"),
	table.C("return_on_equity", "R"),
	table.C("market_cap", "Mark"),
	table.C("price_loans", "P/L"),
	table.C("price_earnings", "P/E"),
	table.C("price_book", "P/B"),
	table.C("transactionId", "Trans"),
	table.C("total_investments", "Total In"),
	table.C("current_value", "Curr"),
	table.C("unrealProfitPer", "Unreal %"),
	table.C("amountReceivable", "Amount"),
	table.C("sectorName", "Sector"),
	table.C("securityName", "Security Name"),
	table.C("dailyChange", "Daily"),
	table.C("perChange", "Perce"),
	table.C("interest_income", "Interest"),
	table.C("net_profit", "Net"),
	table.C("cash_equivalents", "Cash E"),
)

var darkColumns = centered(
	table.C("symbol", "Sym"),
	table.C("transaction_type", "Type"),
	table.C("lastTradedPrice", "LTP"),
	table.C("quantity", "Q"),
	table.C("price", "Pr"),
	table.C("unreal_gain", "Unr"),
	table.C("earnings_per_share", "Eps"),
	table.C("book_value_per_share", "B/v"),
	table.C("return_on_asset", "ROA"),
	table.C("return_on_equity", "ROE"),
	table.C("market_cap", "MCap"),
	table.C("price_loans", "P/L"),
	table.C("price_earnings", "P/E"),
	table.C("price_book", "P/B"),
	table.C("total_investments", "Total In"),
	table.C("current_value", "Curr"),
	table.C("unrealProfitPer", "Unreal %"),
	table.C("amountReceivable", "Amount"),
	table.C("dailyChange", "Daily C"),
	table.C("perChange", "%C"),
	table.C("interest_income", "Interest"),
	table.C("net_profit", "Net/p"),
	table.C("cash_equivalents", "Cash/E"),
)

var portraitColumns = centered(
	table.C("symbol", "Sym"),
	table.C("transaction_type", "Type"),
	table.C("lastTradedPrice", "LTP"),
	table.C("quantity", "Q"),
	table.C("price", "Pr"),
	table.C("unreal_gain", "Unr"),
	table.C("earnings_per_share", "E"),
	table.C("book_value_per_share", "B"),
	table.C("return_on_asset", "ROA"),
	table.C("return_on_equity", "ROE"),
	table.C("market_cap", "MCap"),
	table.C("price_loans", "P/L"),
	table.C("price_earnings", "P/E"),
	table.C("price_book", "P/B"),
	table.C("transactionId", "Trans"),
	table.C("total_investments", "Total In"),
	table.C("current_value", "Curr"),
	table.C("unrealProfitPer", "Unreal %"),
	table.C("amountReceivable", "Amount"),
	table.C("sectorName", "Sector"),
	table.C("securityName", "Security"),
	table.C("dailyChange", "Daily"),
	table.C("perChange", "Perce"),
	table.C("interest_income", "Interest"),
	table.C("net_profit", "Net"),
	table.C("cash_equivalents", "Cash E"),
)

// DefaultCurrency is the currency of money columns.
const DefaultCurrency = "NPR"

func money(key, label string) table.Column {
	return table.Column{Key: key, Label: label, Kind: table.Money, Currency: DefaultCurrency, Align: table.Right}
}

// signed turns a money column into a signed one.
func signed(c table.Column) table.Column {
	c.Kind = table.SignedMoney
	return c
}

var valuationColumns = []table.Column{
	table.C("symbol", "Symbol"),
	table.C("securityName", "Security Name"),
	table.C("sectorName", "Sector"),
	{Key: "quantity", Label: "Qty", Kind: table.Quantity, Align: table.Right},
	money("lastTradedPrice", "LTP"),
	money("total_investments", "Invested"),
	money("current_value", "Current Value"),
	signed(money("unreal_gain", "Unreal Gain")),
	{Key: "unrealProfitPer", Label: "Unreal %", Kind: table.Percent, Align: table.Right},
	{Key: "perChange", Label: "Change", Kind: table.SignedPercent, Align: table.Right},
}

// with returns the default options changed by fn.
func with(fn func(o *table.Options)) table.Options {
	o := table.DefaultOptions()
	fn(&o)
	return o
}

// colored is the layout of the short label reports: plain user names in
// place of their holding.
func colored(size, padding, rowHeight float64, theme table.Theme, collapse bool) table.Options {
	return with(func(o *table.Options) {
		o.FontSize = size
		o.Padding = padding
		o.RowHeight = rowHeight
		o.Indicator = ""
		o.CollapseParents = collapse
		o.Theme = theme
	})
}

var variants = []Variant{
	{
		Name:        "a4",
		Description: "A4 landscape, every column scaled to the page width",
		Output:      "A4.pdf",
		Page:        pdf.Page{Size: "A4", Orientation: pdf.Landscape, Margin: 40},
		Columns:     fullColumns,
		Policy:      table.ScaleToFit,
		Options: with(func(o *table.Options) {
			o.FontSize = 9
			o.Padding = 4
		}),
	},
	{
		Name:        "v1",
		Description: "A3 landscape, core figures with a trailing user column",
		Output:      "v1.pdf",
		Page:        pdf.Page{Size: "A3", Orientation: pdf.Landscape, Margin: 40},
		Columns:     append(coreColumns[:len(coreColumns):len(coreColumns)], table.C("user_name", "User")),
		Policy:      table.Natural,
		Options: with(func(o *table.Options) {
			o.IndicatorKey = "user_name"
		}),
	},
	{
		Name:        "v2",
		Description: "A3 landscape, core figures, nested rows only name the user",
		Output:      "v2.pdf",
		Page:        pdf.Page{Size: "A3", Orientation: pdf.Landscape, Margin: 40},
		Columns:     coreColumns,
		Policy:      table.Natural,
		Options: with(func(o *table.Options) {
			o.ChildValues = false
		}),
	},
	{
		Name:        "limitless",
		Description: "2132pt wide page, every column at its natural width",
		Output:      "limitless.pdf",
		Page:        pdf.Page{Width: 600, Height: 2132, Orientation: pdf.Landscape, Margin: 40},
		Columns:     fullColumns,
		Policy:      table.Natural,
		Options:     table.DefaultOptions(),
	},
	{
		Name:        "summary",
		Description: "short labels on a page as wide as the table, grey header",
		Output:      "portfolio_summary_{stamp}.pdf",
		Page:        pdf.Page{Width: 841.89, Height: 595.28, Margin: 10},
		Columns:     summaryColumns,
		Policy:      table.Natural,
		Options:     colored(7, 2.5, 15, table.Grey, true),
		FitPage:     true,
	},
	{
		Name:        "dark",
		Description: "A4 portrait, dark background and alternating row colors",
		Output:      "darkcolored_{stamp}.pdf",
		Page:        pdf.Page{Size: "A4", Margin: 20},
		Columns:     darkColumns,
		Policy:      table.ScaleToFit,
		Options:     colored(5.5, 1, 10, table.Dark, false),
	},
	{
		Name:        "a4portrait",
		Description: "A4 portrait, short labels scaled to the page width, grey header",
		Output:      "portfolio_A4portrait_{stamp}.pdf",
		Page:        pdf.Page{Size: "A4", Margin: 20},
		Columns:     portraitColumns,
		Policy:      table.ScaleToFit,
		Options:     colored(5.5, 1, 10, table.Grey, true),
	},
	{
		Name:        "valuation",
		Description: "A4 landscape, amounts in the holding currency and percentages",
		Output:      "valuation.pdf",
		Page:        pdf.Page{Size: "A4", Orientation: pdf.Landscape, Margin: 40},
		Columns:     valuationColumns,
		Policy:      table.ScaleToFit,
		Options: with(func(o *table.Options) {
			o.FontSize = 9
			o.Padding = 4
			o.Theme = table.Grey
		}),
	},
}

// Originals are the presets rendered by default.
var Originals = []string{"a4", "v1", "v2", "limitless"}

// Colored are the presets with colors and time stamped file names.
var Colored = []string{"summary", "dark", "a4portrait"}

// Variants returns every preset.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Names returns the preset names.
func Names() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the preset called name.
func Lookup(name string) (Variant, error) {
	for _, v := range variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown preset %q, want one of %s", name, strings.Join(Names(), ", "))
}
