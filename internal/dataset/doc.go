// Package dataset holds the in-memory record table and the loaders that
// produce it.
//
// A Table is an ordered header plus rows; each cell is missing, a string or
// a number. Loaders implement Source and return header names verbatim, so
// callers run the table through the cleaning package before addressing
// columns by name. Available strategies are a Google Sheets worksheet, a
// local CSV file and a local XLSX workbook, each optionally wrapped in a
// bounded retry.
package dataset
