package testutil

import (
	"context"
	"sync/atomic"

	"scpulse/internal/dataset"
)

// SampleHeader is the raw header of the sample supply chain sheet
var SampleHeader = []string{
	"Product type", "SKU", "Price", "Availability", "Number of products sold",
	"Revenue generated", "Stock levels", "Lead times", "Order quantities",
	"Shipping times", "Shipping carriers", "Shipping costs",
	"Transportation modes", "Defect rates", "Manufacturing costs",
}

// SampleRecords holds seven raw rows: one unknown product type, one "N/A"
// stock level and one blank availability cell
var SampleRecords = [][]string{
	{"haircare", "SKU0", "$69.80", "Yes", "802", "8661.99", "58", "7", "96", "4", "Carrier B", "2.95", "Road", "0.22", "46.27"},
	{"skincare", "SKU1", "$14.84", "yes", "736", "7460.90", "53", "30", "37", "2", "Carrier A", "9.72", "Air", "4.85", "33.61"},
	{"haircare", "SKU2", "$11.31", "No", "8", "9577.75", "1", "10", "88", "2", "Carrier B", "8.05", "Rail", "4.58", "30.69"},
	{"cosmetics", "SKU3", "$61.16", "Yes", "83", "7766.84", "23", "13", "59", "6", "Carrier C", "1.73", "Air", "4.75", "35.62"},
	{"others", "SKU4", "$4.81", "No", "871", "2686.51", "5", "3", "56", "8", "Carrier A", "3.89", "Road", "3.14", "92.07"},
	{"fragrance", "SKU5", "$1.70", "Yes", "147", "2828.35", "N/A", "27", "66", "3", "Carrier B", "4.44", "Road", "0.48", "8.69"},
	{"widgets", "SKU6", "$4.08", "", "65", "7823.48", "30", "15", "58", "10", "Carrier C", "3.88", "Sea", "1.09", "75.64"},
}

// SampleTable returns the raw, uncleaned sample table
func SampleTable() dataset.Table {
	return dataset.FromRecords(SampleHeader, SampleRecords)
}

// StaticSource serves a fixed table or error and counts fetches
type StaticSource struct {
	Table dataset.Table
	Err   error
	calls atomic.Int64
}

// NewStaticSource returns a source serving the raw sample table
func NewStaticSource() *StaticSource {
	return &StaticSource{Table: SampleTable()}
}

// Fetch implements dataset.Source
func (s *StaticSource) Fetch(ctx context.Context) (dataset.Table, error) {
	s.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return dataset.Table{}, err
	}
	if s.Err != nil {
		return dataset.Table{}, s.Err
	}
	return s.Table, nil
}

// Kind implements dataset.Describer
func (s *StaticSource) Kind() string { return "static" }

// Calls returns the number of Fetch calls
func (s *StaticSource) Calls() int {
	return int(s.calls.Load())
}
