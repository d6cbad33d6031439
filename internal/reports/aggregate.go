package reports

import (
	"log"
	"sort"
	"strconv"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// Placeholder labels for blank grouping keys. Blank and absent values
// collapse into the same bucket.
const (
	NoCategory = "Uncategorized"
	NoLocation = "No Location"
	NoStatus   = "No Status"
	NoBrand    = "No Brand"
)

// CountBy groups records by the value of a field and counts each group.
// A blank key lands in the placeholder bucket.
func CountBy(records []sheetstore.Record, field, placeholder string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		key := rec[field]
		if key == "" {
			key = placeholder
		}
		counts[key]++
	}
	return counts
}

// SumBy groups records by a field and sums a numeric field per group.
// Unparsable values contribute 0, not an error.
func SumBy(records []sheetstore.Record, field, amountField, placeholder string) map[string]float64 {
	sums := make(map[string]float64)
	for _, rec := range records {
		key := rec[field]
		if key == "" {
			key = placeholder
		}
		sums[key] += parseAmount(rec[amountField])
	}
	return sums
}

// TotalAmount sums a numeric field over all records, unparsable cells
// counting as 0.
func TotalAmount(records []sheetstore.Record, amountField string) float64 {
	total := 0.0
	for _, rec := range records {
		total += parseAmount(rec[amountField])
	}
	return total
}

// GroupCount is one chart bar: a label and how many records carry it.
type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopGroups returns the n largest groups in descending count order, ties
// broken by label so the output is stable.
func TopGroups(counts map[string]int, n int) []GroupCount {
	groups := make([]GroupCount, 0, len(counts))
	for label, count := range counts {
		groups = append(groups, GroupCount{Label: label, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Label < groups[j].Label
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// parseAmount reads a stored numeric cell, defaulting to 0 on any parse
// failure. Failures are logged so the bad cell can be fixed. Negative
// amounts are kept as stored.
func parseAmount(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("reports: non-numeric amount %q, counting as 0", raw)
		return 0
	}
	return v
}
