// Package extract pulls numeric price levels out of noisy recognized text.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// pricePattern matches 1-5 integer digits with an optional 1-4 digit
// fraction. The caps exclude timestamps and bar indices that OCR picks up
// from chart axes.
var pricePattern = regexp.MustCompile(`\b\d{1,5}(?:\.\d{1,4})?\b`)

// Prices extracts positive price levels from recognized text lines,
// deduplicated by numeric value and sorted descending. Zero matches is not
// an error; the result is simply empty.
func Prices(lines []string) []float64 {
	matches := pricePattern.FindAllString(strings.Join(lines, " "), -1)

	seen := make(map[float64]struct{}, len(matches))
	prices := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil || v <= 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		prices = append(prices, v)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))
	return prices
}
