package kpi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scpulse/internal/cleaning"
	"scpulse/internal/dataset"
)

var fixtureHeader = []string{
	"Product type", "SKU", "Price", "Availability", "Number of products sold",
	"Revenue generated", "Stock levels", "Lead times", "Order quantities",
	"Shipping times", "Shipping carriers", "Shipping costs",
	"Transportation modes", "Defect rates", "Manufacturing costs",
}

var fixtureRecords = [][]string{
	{"haircare", "SKU0", "$69.80", "Yes", "802", "8661.99", "58", "7", "96", "4", "Carrier B", "2.95", "Road", "0.22", "46.27"},
	{"skincare", "SKU1", "$14.84", "yes", "736", "7460.90", "53", "30", "37", "2", "Carrier A", "9.72", "Air", "4.85", "33.61"},
	{"haircare", "SKU2", "$11.31", "No", "8", "9577.75", "1", "10", "88", "2", "Carrier B", "8.05", "Rail", "4.58", "30.69"},
	{"cosmetics", "SKU3", "$61.16", "Yes", "83", "7766.84", "23", "13", "59", "6", "Carrier C", "1.73", "Air", "4.75", "35.62"},
	{"others", "SKU4", "$4.81", "No", "871", "2686.51", "5", "3", "56", "8", "Carrier A", "3.89", "Road", "3.14", "92.07"},
	{"fragrance", "SKU5", "$1.70", "Yes", "147", "2828.35", "N/A", "27", "66", "3", "Carrier B", "4.44", "Road", "0.48", "8.69"},
	{"widgets", "SKU6", "$4.08", "", "65", "7823.48", "30", "15", "58", "10", "Carrier C", "3.88", "Sea", "1.09", "75.64"},
}

// cleanedTable cleans a raw header/records pair
func cleanedTable(t *testing.T, header []string, records [][]string) dataset.Table {
	t.Helper()
	table, err := cleaning.Clean(dataset.FromRecords(header, records))
	require.NoError(t, err)
	return table
}

func fixtureTable(t *testing.T) dataset.Table {
	return cleanedTable(t, fixtureHeader, fixtureRecords)
}

// withoutColumn drops one raw column from the fixture
func withoutColumn(name string) ([]string, [][]string) {
	idx := -1
	header := make([]string, 0, len(fixtureHeader))
	for i, h := range fixtureHeader {
		if h == name {
			idx = i
			continue
		}
		header = append(header, h)
	}

	records := make([][]string, len(fixtureRecords))
	for i, rec := range fixtureRecords {
		row := make([]string, 0, len(rec))
		for j, cell := range rec {
			if j != idx {
				row = append(row, cell)
			}
		}
		records[i] = row
	}
	return header, records
}
