package heuristics

import (
	"regexp"
	"strconv"
)

var pieceCountPatterns = compileMeasure(
	`set\s+of\s+(\d+)`,
	`(\d+)[\s-]piece`,
	`(\d+)\s*pcs?\b`,
	`pack\s+of\s+(\d+)`,
	`(\d+)[\s-]pack\b`,
)

var seatingPatterns = compileMeasure(
	`seats\s+(?:up\s+to\s+)?(\d+)`,
	`(\d+)[\s-]seater`,
	`seating\s+capacity[:\s]+(\d+)`,
	`for\s+(\d+)\s+(?:people|persons)`,
)

var shelfPatterns = compileMeasure(
	`(\d+)[\s-]tier`,
	`(\d+)[\s-]shel(?:f|ves)`,
	`with\s+(\d+)\s+(?:open\s+)?shel(?:f|ves)`,
)

var drawerPatterns = compileMeasure(
	`(\d+)[\s-]drawers?\b`,
	`with\s+(\d+)\s+drawers?\b`,
)

var doorPatterns = compileMeasure(
	`(\d+)[\s-]doors?\b`,
	`with\s+(\d+)\s+doors?\b`,
)

var perPackPatterns = compileMeasure(
	`(\d+)\s+per\s+pack`,
	`pack\s+of\s+(\d+)`,
	`(\d+)[\s-]count\b`,
)

// matchCount tries the ordered pattern list and returns the first
// integer inside [minVal, maxVal].
func matchCount(text string, patterns []*regexp.Regexp, minVal, maxVal int) (int, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= minVal && n <= maxVal {
			return n, true
		}
	}
	return 0, false
}

func extractCount(src *Source, param string, patterns []*regexp.Regexp, minVal, maxVal int) interface{} {
	if n, ok := matchCount(src.Text(), patterns, minVal, maxVal); ok {
		return n
	}
	if param != "" {
		if n, err := strconv.Atoi(param); err == nil {
			return n
		}
	}
	return nil
}

func extractPieceCount(src *Source, param string) interface{} {
	return extractCount(src, param, pieceCountPatterns, 1, 10000)
}

func extractSeatingCapacity(src *Source, param string) interface{} {
	return extractCount(src, param, seatingPatterns, 1, 20)
}

func extractNumberOfShelves(src *Source, param string) interface{} {
	return extractCount(src, param, shelfPatterns, 1, 30)
}

func extractNumberOfDrawers(src *Source, param string) interface{} {
	return extractCount(src, param, drawerPatterns, 1, 30)
}

func extractNumberOfDoors(src *Source, param string) interface{} {
	return extractCount(src, param, doorPatterns, 1, 10)
}

func extractCountPerPack(src *Source, param string) interface{} {
	return extractCount(src, param, perPackPatterns, 1, 10000)
}
