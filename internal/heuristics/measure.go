package heuristics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Plausibility bounds. A pattern match outside its bound is discarded
// and the next pattern is tried.
const (
	minWeightLb   = 0.1
	maxWeightLb   = 2000
	minLengthIn   = 0.1
	maxLengthIn   = 1000
	minCapacityLb = 1
	maxCapacityLb = 5000
	minScreenIn   = 5
	maxScreenIn   = 120
)

const weightUnits = `(kg|kgs|kilograms?|g|grams?|oz|ounces?|lb|lbs|pounds?)`
const lengthUnits = `(cm|mm|m|ft|feet|"|''|in|inch|inches)`

var numRe = `(\d+(?:\.\d+)?)`

// Weight patterns, most specific phrasing first. Group 1 is the value,
// group 2 the unit.
var shippingWeightPatterns = compileMeasure(
	`shipping\s+weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`package\s+weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`weighs\s+(?:about\s+|approximately\s+)?`+numRe+`\s*`+weightUnits+`?`,
	`weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
)

var assembledWeightPatterns = compileMeasure(
	`assembled\s+(?:product\s+)?weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`product\s+weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`weighs\s+(?:about\s+|approximately\s+)?`+numRe+`\s*`+weightUnits+`?`,
	`weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
)

var itemWeightPatterns = compileMeasure(
	`item\s+weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`net\s+weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`weight[:\s]+`+numRe+`\s*`+weightUnits+`?`,
)

var weightCapacityPatterns = compileMeasure(
	`(?:holds?|supports?)\s+up\s+to\s+`+numRe+`\s*`+weightUnits+`?`,
	`(?:max(?:imum)?\s+)?weight\s+capacity[:\s]+(?:up\s+to\s+)?`+numRe+`\s*`+weightUnits+`?`,
	`load\s+capacity[:\s]+`+numRe+`\s*`+weightUnits+`?`,
	`capacity\s+of\s+`+numRe+`\s*`+weightUnits,
)

var screenSizePatterns = compileMeasure(
	`(?:fits?|for)\s+(?:most\s+)?(?:tvs?|televisions?)\s+up\s+to\s+`+numRe+`\s*("|''|in|inch|inches)?`,
	numRe+`\s*("|''|in|inch|inches)\s*(?:tvs?|televisions?|screens?|monitors?)`,
	`screen\s+size[:\s]+`+numRe+`\s*("|''|in|inch|inches)?`,
)

// dimensionTriple recognizes "47.2"(l) x 23.6"(w) x 29.5"(h)" and
// "120 x 60 x 75 cm" phrasings. Labeled forms come first.
var dimensionTriplePatterns = []*regexp.Regexp{
	regexp.MustCompile(numRe + `\s*` + lengthUnits + `?\s*\(?l\)?\s*[x×]\s*` + numRe + `\s*` + lengthUnits + `?\s*\(?w\)?\s*[x×]\s*` + numRe + `\s*` + lengthUnits + `?\s*\(?h\)?`),
	regexp.MustCompile(numRe + `\s*[x×]\s*` + numRe + `\s*[x×]\s*` + numRe + `\s*` + lengthUnits),
	regexp.MustCompile(`dimensions?[:\s]+` + numRe + `\s*[x×]\s*` + numRe + `\s*[x×]\s*` + numRe),
}

var lengthPatterns = compileMeasure(
	`length[:\s]+`+numRe+`\s*`+lengthUnits+`?`,
	numRe+`\s*`+lengthUnits+`?\s+(?:long|in\s+length)`,
)

var widthPatterns = compileMeasure(
	`width[:\s]+`+numRe+`\s*`+lengthUnits+`?`,
	numRe+`\s*`+lengthUnits+`?\s+(?:wide|deep|in\s+width)`,
)

var heightPatterns = compileMeasure(
	`height[:\s]+`+numRe+`\s*`+lengthUnits+`?`,
	numRe+`\s*`+lengthUnits+`?\s+(?:tall|high|in\s+height)`,
)

func compileMeasure(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// toPounds converts a recognized weight unit to pounds. An empty unit
// is taken as pounds already.
func toPounds(value float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "kg":
		return value * 2.20462
	case "g":
		return value * 0.00220462
	case "oz":
		return value * 0.0625
	default:
		return value
	}
}

// toInches converts a recognized length unit to inches
func toInches(value float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "cm":
		return value / 2.54
	case "mm":
		return value / 25.4
	case "m":
		return value * 39.3701
	case "ft":
		return value * 12
	default:
		return value
	}
}

func normalizeUnit(unit string) string {
	switch strings.TrimSpace(strings.ToLower(unit)) {
	case "kg", "kgs", "kilogram", "kilograms":
		return "kg"
	case "g", "gram", "grams":
		return "g"
	case "oz", "ounce", "ounces":
		return "oz"
	case "lb", "lbs", "pound", "pounds":
		return "lb"
	case "cm":
		return "cm"
	case "mm":
		return "mm"
	case "m":
		return "m"
	case "ft", "feet":
		return "ft"
	case `"`, "''", "in", "inch", "inches":
		return "in"
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// matchMeasure tries the ordered pattern list against the text and
// returns the first converted value inside [minVal, maxVal].
func matchMeasure(text string, patterns []*regexp.Regexp, convert func(float64, string) float64, minVal, maxVal float64) (float64, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := ""
		if len(m) > 2 {
			unit = m[2]
		}
		converted := convert(value, unit)
		if converted >= minVal && converted <= maxVal {
			return round2(converted), true
		}
	}
	return 0, false
}

// fieldWeightLb interprets a channel field holding a weight: a bare
// number (assumed lb), a "<number> <unit>" string, or a measurement
// object {measure, unit}.
func fieldWeightLb(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return weightInRange(t)
	case int:
		return weightInRange(float64(t))
	case string:
		return parseWeightString(t)
	case map[string]interface{}:
		measure, ok := numericValue(t["measure"])
		if !ok {
			return 0, false
		}
		unit, _ := t["unit"].(string)
		return weightInRange(toPounds(measure, unit))
	}
	return 0, false
}

func parseWeightString(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	re := regexp.MustCompile(`^` + numRe + `\s*` + weightUnits + `?$`)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return weightInRange(toPounds(value, m[2]))
}

func weightInRange(lb float64) (float64, bool) {
	if lb < minWeightLb || lb > maxWeightLb {
		return 0, false
	}
	return round2(lb), true
}

// fieldLengthIn interprets a channel field holding a length in the same
// shapes fieldWeightLb accepts.
func fieldLengthIn(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return lengthInRange(t)
	case int:
		return lengthInRange(float64(t))
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		re := regexp.MustCompile(`^` + numRe + `\s*` + lengthUnits + `?$`)
		m := re.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return lengthInRange(toInches(value, m[2]))
	case map[string]interface{}:
		measure, ok := numericValue(t["measure"])
		if !ok {
			return 0, false
		}
		unit, _ := t["unit"].(string)
		return lengthInRange(toInches(measure, unit))
	}
	return 0, false
}

func lengthInRange(in float64) (float64, bool) {
	if in < minLengthIn || in > maxLengthIn {
		return 0, false
	}
	return round2(in), true
}

func numericValue(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// dimensionTriple extracts (length, width, height) in inches from an
// "L x W x H" phrase.
func dimensionTriple(text string) ([3]float64, bool) {
	for i, re := range dimensionTriplePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var dims [3]float64
		switch i {
		case 0:
			// Per-value units; a later unit backfills earlier blanks
			units := [3]string{m[2], m[4], m[6]}
			for j := 2; j >= 0; j-- {
				if units[j] == "" && j < 2 {
					units[j] = units[j+1]
				}
			}
			vals := [3]string{m[1], m[3], m[5]}
			for j := 0; j < 3; j++ {
				value, err := strconv.ParseFloat(vals[j], 64)
				if err != nil {
					return dims, false
				}
				dims[j] = toInches(value, units[j])
			}
		case 1:
			unit := m[4]
			for j := 0; j < 3; j++ {
				value, err := strconv.ParseFloat(m[j+1], 64)
				if err != nil {
					return dims, false
				}
				dims[j] = toInches(value, unit)
			}
		default:
			for j := 0; j < 3; j++ {
				value, err := strconv.ParseFloat(m[j+1], 64)
				if err != nil {
					return dims, false
				}
				dims[j] = value
			}
		}
		ok := true
		for j := 0; j < 3; j++ {
			dims[j] = round2(dims[j])
			if dims[j] < minLengthIn || dims[j] > maxLengthIn {
				ok = false
			}
		}
		if ok {
			return dims, true
		}
	}
	return [3]float64{}, false
}

func paramFloat(param string) (float64, bool) {
	if param == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func extractShippingWeight(src *Source, param string) interface{} {
	if v := src.FirstField("packageWeight", "shippingWeight", "weight"); v != nil {
		if lb, ok := fieldWeightLb(v); ok {
			return lb
		}
	}
	if lb, ok := matchMeasure(src.Text(), shippingWeightPatterns, toPounds, minWeightLb, maxWeightLb); ok {
		return lb
	}
	if def, ok := paramFloat(param); ok {
		return def
	}
	return nil
}

func extractAssembledProductWeight(src *Source, param string) interface{} {
	if v := src.FirstField("assembledProductWeight", "productWeight", "weight"); v != nil {
		if lb, ok := fieldWeightLb(v); ok {
			return measurementLb(lb)
		}
	}
	if lb, ok := matchMeasure(src.Text(), assembledWeightPatterns, toPounds, minWeightLb, maxWeightLb); ok {
		return measurementLb(lb)
	}
	if def, ok := paramFloat(param); ok {
		return measurementLb(def)
	}
	return nil
}

func extractItemWeight(src *Source, param string) interface{} {
	if v := src.FirstField("itemWeight", "weight"); v != nil {
		if lb, ok := fieldWeightLb(v); ok {
			return lb
		}
	}
	if lb, ok := matchMeasure(src.Text(), itemWeightPatterns, toPounds, minWeightLb, maxWeightLb); ok {
		return lb
	}
	if def, ok := paramFloat(param); ok {
		return def
	}
	return nil
}

func measurementLb(lb float64) map[string]interface{} {
	return map[string]interface{}{"unit": "lb", "measure": round2(lb)}
}

func extractAssembledProductLength(src *Source, param string) interface{} {
	return extractDimension(src, param, 0, []string{"dimensions.length", "packageLength", "length"}, lengthPatterns)
}

func extractAssembledProductWidth(src *Source, param string) interface{} {
	return extractDimension(src, param, 1, []string{"dimensions.width", "packageWidth", "width"}, widthPatterns)
}

func extractAssembledProductHeight(src *Source, param string) interface{} {
	return extractDimension(src, param, 2, []string{"dimensions.height", "packageHeight", "height"}, heightPatterns)
}

func extractDimension(src *Source, param string, axis int, paths []string, patterns []*regexp.Regexp) interface{} {
	if v := src.FirstField(paths...); v != nil {
		if in, ok := fieldLengthIn(v); ok {
			return in
		}
	}
	if dims, ok := dimensionTriple(src.Text()); ok {
		return dims[axis]
	}
	if in, ok := matchMeasure(src.Text(), patterns, toInches, minLengthIn, maxLengthIn); ok {
		return in
	}
	if def, ok := paramFloat(param); ok {
		return def
	}
	return nil
}

func extractMaximumWeightCapacity(src *Source, param string) interface{} {
	if lb, ok := matchMeasure(src.Text(), weightCapacityPatterns, toPounds, minCapacityLb, maxCapacityLb); ok {
		return lb
	}
	if def, ok := paramFloat(param); ok {
		return def
	}
	return nil
}

func extractScreenSize(src *Source, param string) interface{} {
	if in, ok := matchMeasure(src.Text(), screenSizePatterns, toInches, minScreenIn, maxScreenIn); ok {
		return in
	}
	if def, ok := paramFloat(param); ok {
		return def
	}
	return nil
}
