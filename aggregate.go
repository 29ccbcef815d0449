package main

import (
	"encoding/json"
	"math"
	"strconv"
)

// Vehicle-use vocabularies. Closed sets determined from an EDA pass over the
// source feed; anything outside them simply doesn't set a flag.
var emergencyTerms = []string{
	"POLICE", "FIRE", "AMBULANCE", "TOW TRUCK", "CTA", "STATE OWNED",
}

var commercialTerms = []string{
	"COMMERCIAL - SINGLE UNIT", "COMMERCIAL - MULTI-UNIT",
	"RIDESHARE SERVICE", "TAXI/FOR HIRE", "CONSTRUCTION/MAINTENANCE",
	"AGRICULTURE", "HOUSE TRAILER",
}

var personalTerms = []string{"PERSONAL", "CAMPER/RV - SINGLE UNIT"}

// parseStringList decodes a JSON-encoded list cell into its string items.
// Missing, malformed, or non-list cells come back as an empty list — the
// parse is total and never an error.
func parseStringList(cell string) []string {
	if cell == "" {
		return nil
	}
	var raw []any
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

// parseAgeList decodes a JSON-encoded age list; entries may be numbers or
// numeric strings. Anything unparsable is skipped.
func parseAgeList(cell string) []float64 {
	if cell == "" {
		return nil
	}
	var raw []any
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		return nil
	}
	ages := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			ages = append(ages, n)
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				ages = append(ages, f)
			}
		}
	}
	return ages
}

// filterAges keeps ages in the plausible [10, 110] range
func filterAges(ages []float64) []float64 {
	kept := ages[:0]
	for _, a := range ages {
		if a >= 10 && a <= 110 {
			kept = append(kept, a)
		}
	}
	return kept
}

// ageSummary computes min/mean/max over the filtered ages. An empty set
// yields nil for all three.
func ageSummary(ages []float64) (min, mean, max *float64) {
	if len(ages) == 0 {
		return nil, nil, nil
	}
	lo, hi, sum := ages[0], ages[0], 0.0
	for _, a := range ages {
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
		sum += a
	}
	avg := sum / float64(len(ages))
	return &lo, &avg, &hi
}

func containsAny(items, terms []string) bool {
	for _, item := range items {
		for _, term := range terms {
			if item == term {
				return true
			}
		}
	}
	return false
}

// hasBicycle reports whether a person-type list involves a cyclist
func hasBicycle(items []string) bool {
	for _, item := range items {
		if item == "BICYCLE" || item == "NON-MOTOR VEHICLE" {
			return true
		}
	}
	return false
}

// clipVehCount clips the vehicle count to [1, 5] to bound the influence of
// extreme pileups on downstream modeling. Missing or unparsable counts stay
// nil rather than being invented.
func clipVehCount(cell string) *int {
	if cell == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return &n
}
