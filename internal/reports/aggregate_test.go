package reports

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

func TestCountByCollapsesBlanksIntoPlaceholder(t *testing.T) {
	assets := []sheetstore.Record{
		{"Asset Category": "A"},
		{"Asset Category": "A"},
		{"Asset Category": ""},
		{}, // absent key reads as ""
	}

	counts := CountBy(assets, "Asset Category", NoCategory)
	assert.Equal(t, 2, counts["A"])
	assert.Equal(t, 2, counts[NoCategory])
	assert.Len(t, counts, 2)
}

func TestSumBy(t *testing.T) {
	assets := []sheetstore.Record{
		{"Location": "HQ", "Amount": "100.50"},
		{"Location": "HQ", "Amount": "49.50"},
		{"Location": "", "Amount": "10"},
		{"Location": "Lab", "Amount": "junk"}, // unparsable -> 0
	}

	sums := SumBy(assets, "Location", "Amount", NoLocation)
	assert.InDelta(t, 150.0, sums["HQ"], 1e-9)
	assert.InDelta(t, 10.0, sums[NoLocation], 1e-9)
	assert.InDelta(t, 0.0, sums["Lab"], 1e-9)
}

func TestSumByLogsUnparsableAmount(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	assets := []sheetstore.Record{
		{"Location": "HQ", "Amount": "twelve"},
		{"Location": "HQ", "Amount": "12"},
	}
	sums := SumBy(assets, "Location", "Amount", NoLocation)
	assert.InDelta(t, 12.0, sums["HQ"], 1e-9)
	assert.Contains(t, buf.String(), `"twelve"`)
}

func TestTotalAmount(t *testing.T) {
	assets := []sheetstore.Record{
		{"Amount": "100"},
		{"Amount": ""},
		{"Amount": "x"},
		{"Amount": "25.25"},
	}
	assert.InDelta(t, 125.25, TotalAmount(assets, "Amount"), 1e-9)
}

func TestTopGroups(t *testing.T) {
	counts := map[string]int{"Dell": 5, "HP": 2, "Apple": 5, "Asus": 1}

	groups := TopGroups(counts, 3)
	assert.Equal(t, []GroupCount{
		{Label: "Apple", Count: 5}, // tie broken by label
		{Label: "Dell", Count: 5},
		{Label: "HP", Count: 2},
	}, groups)
}
