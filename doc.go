// Package portfolio holds the data model of portfolio-pdf: holding records
// decoded from JSON, their nested per-user transaction records, and the
// value types used to display them.
//
// The core functionalities include:
//   - Record decoding: turning a JSON array of holdings (optionally selected
//     from a larger document with a JSONPath expression) into a tree of
//     immutable records.
//   - Value formatting: rendering any decoded value as display text, numbers
//     with exactly two decimals.
//   - Money, Quantity and Percent: typed views on numeric values for columns
//     that need a currency, an exact quantity or a percentage.
//
// Layout and PDF writing live in the table, pdf and report packages; this
// package only knows about records and values.
package portfolio
