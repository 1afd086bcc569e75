package heuristics

import (
	"strings"
)

// indicator extractors answer "Yes"/"No" from keyword evidence. The
// negative list is checked first: a negative match forces "No" even
// when a positive keyword is also present.
func extractIndicator(src *Source, param string, negatives, positives []string) interface{} {
	text := src.Text()
	for _, kw := range negatives {
		if strings.Contains(text, kw) {
			return "No"
		}
	}
	for _, kw := range positives {
		if strings.Contains(text, kw) {
			return "Yes"
		}
	}
	if param != "" {
		return param
	}
	return "No"
}

var industrialUseNegatives = []string{
	"industrial style",
	"industrial-style",
	"industrial design",
	"industrial look",
	"industrial chic",
}

var industrialUsePositives = []string{
	"industrial use",
	"industrial grade",
	"industrial-grade",
	"commercial grade",
	"commercial use",
	"heavy-duty",
	"heavy duty",
	"warehouse use",
	"workbench",
	"workshop",
}

func extractIndustrialUse(src *Source, param string) interface{} {
	return extractIndicator(src, param, industrialUseNegatives, industrialUsePositives)
}

var upholsteredNegatives = []string{
	"non-upholstered",
	"not upholstered",
	"no upholstery",
}

var upholsteredPositives = []string{
	"upholstered",
	"upholstery",
	"padded seat",
	"cushioned seat",
	"cushioned",
	"tufted",
}

func extractUpholstered(src *Source, param string) interface{} {
	return extractIndicator(src, param, upholsteredNegatives, upholsteredPositives)
}

var electronicsNegatives = []string{
	"no electronics",
	"non-electric",
	"non electric",
}

var electronicsPositives = []string{
	"wireless charging",
	"remote control",
	"electric fireplace",
	"power outlet",
	"usb port",
	"bluetooth",
	"speaker",
	"led light",
	"led strip",
	"led",
}

func extractContainsElectronics(src *Source, param string) interface{} {
	return extractIndicator(src, param, electronicsNegatives, electronicsPositives)
}

var batteryNegatives = []string{
	"no batteries required",
	"batteries not required",
	"no battery required",
	"no battery",
}

var batteryPositives = []string{
	"batteries required",
	"battery required",
	"battery operated",
	"battery powered",
	"requires batteries",
}

func extractBatteryRequired(src *Source, param string) interface{} {
	return extractIndicator(src, param, batteryNegatives, batteryPositives)
}

var assemblyNegatives = []string{
	"no assembly required",
	"fully assembled",
	"pre-assembled",
	"preassembled",
	"no assembly",
	"assembled delivery",
}

var assemblyPositives = []string{
	"assembly required",
	"requires assembly",
	"some assembly",
	"easy assembly",
	"easy to assemble",
	"self-assembly",
}

func extractAssemblyRequired(src *Source, param string) interface{} {
	return extractIndicator(src, param, assemblyNegatives, assemblyPositives)
}
