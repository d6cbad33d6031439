package reports

import (
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

// purchaseDateFormat is the stored form of Date of Purchase.
const purchaseDateFormat = "2006-01-02"

// DepreciationLine is one asset's straight-line valuation.
type DepreciationLine struct {
	AssetCode          string  `json:"assetCode"`
	ItemName           string  `json:"itemName"`
	Category           string  `json:"category"`
	Location           string  `json:"location"`
	PurchaseDate       string  `json:"purchaseDate"`
	PurchaseAmount     float64 `json:"purchaseAmount"`
	AgeYears           float64 `json:"ageYears"`
	RatePercent        float64 `json:"ratePercent"`
	AnnualDepreciation float64 `json:"annualDepreciation"`
	TotalDepreciation  float64 `json:"totalDepreciation"`
	CurrentValue       float64 `json:"currentValue"`
	Status             string  `json:"status"`
}

// DepreciationSummary totals a full report for the dashboard cards.
type DepreciationSummary struct {
	AssetCount        int     `json:"assetCount"`
	TotalPurchase     float64 `json:"totalPurchase"`
	TotalDepreciation float64 `json:"totalDepreciation"`
	TotalCurrentValue float64 `json:"totalCurrentValue"`
}

// RateLookup builds the category-name -> depreciation-percent table from
// AssetTypes records. An unparsable rate counts as 0 and is logged so the
// bad row can be fixed.
func RateLookup(assetTypes []sheetstore.Record) map[string]float64 {
	rates := make(map[string]float64, len(assetTypes))
	for _, at := range assetTypes {
		name := at["Asset Type"]
		raw := at["Depreciation Value (%)"]
		rate := 0.0
		if raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Printf("reports: asset type %q has non-numeric depreciation value %q", name, raw)
			} else {
				rate = v
			}
		}
		rates[name] = rate
	}
	return rates
}

// Depreciate computes the straight-line valuation of every asset as of
// today. Per asset: amount parsed as a float (0 on failure), age in years
// from Date of Purchase (0 on blank/unparsable, clamped at 0 for future
// dates), rate looked up by the asset's category name (0 when unmatched),
// then annual = amount*rate/100, total = annual*age, current =
// max(0, amount-total). Display values are rounded to 2 decimals.
func Depreciate(assets []sheetstore.Record, rates map[string]float64, today time.Time) []DepreciationLine {
	lines := make([]DepreciationLine, 0, len(assets))
	for _, asset := range assets {
		amount := parseAmount(asset["Amount"])
		age := ageYears(asset["Date of Purchase"], today, asset["Asset Code"])
		rate := rates[asset["Asset Category"]]
		annual, total, current := Valuation(amount, rate, age)

		lines = append(lines, DepreciationLine{
			AssetCode:          asset["Asset Code"],
			ItemName:           asset["Item Name"],
			Category:           asset["Asset Category"],
			Location:           asset["Location"],
			PurchaseDate:       asset["Date of Purchase"],
			PurchaseAmount:     round2(amount),
			AgeYears:           round2(age),
			RatePercent:        rate,
			AnnualDepreciation: round2(annual),
			TotalDepreciation:  round2(total),
			CurrentValue:       round2(current),
			Status:             asset["Asset Status"],
		})
	}
	return lines
}

// Summarize totals a report for the four summary cards.
func Summarize(lines []DepreciationLine) DepreciationSummary {
	s := DepreciationSummary{AssetCount: len(lines)}
	for _, l := range lines {
		s.TotalPurchase += l.PurchaseAmount
		s.TotalDepreciation += l.TotalDepreciation
		s.TotalCurrentValue += l.CurrentValue
	}
	s.TotalPurchase = round2(s.TotalPurchase)
	s.TotalDepreciation = round2(s.TotalDepreciation)
	s.TotalCurrentValue = round2(s.TotalCurrentValue)
	return s
}

// Valuation applies the straight-line formula. When any input is zero or
// negative the asset has not depreciated: annual and total stay 0 and the
// current value equals the purchase amount. The current value never goes
// below zero.
func Valuation(amount, ratePercent, ageYears float64) (annual, total, current float64) {
	current = amount
	if amount > 0 && ratePercent > 0 && ageYears > 0 {
		annual = amount * ratePercent / 100
		total = annual * ageYears
		current = amount - total
		if current < 0 {
			current = 0
		}
	}
	return annual, total, current
}

// ageYears converts a stored purchase date into whole-day-based years
// (days/365.25). Blank or unparsable dates contribute zero age; a future
// date clamps to zero rather than appreciating the asset.
func ageYears(raw string, today time.Time, assetCode string) float64 {
	if raw == "" {
		return 0
	}
	purchased, err := time.Parse(purchaseDateFormat, raw)
	if err != nil {
		log.Printf("reports: asset %s has unparsable purchase date %q", assetCode, raw)
		return 0
	}
	days := int(today.Sub(purchased).Hours() / 24)
	age := float64(days) / 365.25
	if age < 0 {
		return 0
	}
	return age
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
