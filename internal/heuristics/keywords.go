package heuristics

import (
	"strings"
)

// keywordEntry pairs a search keyword with its canonical value.
// Tables are explicit ordered lists, authored longest-keyword-first so
// that "light blue" wins over "blue" deterministically.
type keywordEntry struct {
	keyword string
	value   string
}

// matchKeywords scans the table in order and returns the first
// canonical value whose keyword occurs in the text.
func matchKeywords(text string, table []keywordEntry) (string, bool) {
	for _, e := range table {
		if strings.Contains(text, e.keyword) {
			return e.value, true
		}
	}
	return "", false
}

// matchVocabulary first tries direct equality of the candidate against
// the controlled vocabulary, then falls back to keyword matching over
// the text.
func matchVocabulary(candidate, text string, vocab []string, table []keywordEntry) (string, bool) {
	if candidate != "" {
		c := strings.ToLower(strings.TrimSpace(candidate))
		for _, v := range vocab {
			if strings.ToLower(v) == c {
				return v, true
			}
		}
	}
	return matchKeywords(text, table)
}

func extractKeyword(src *Source, param string, table []keywordEntry) interface{} {
	if v, ok := matchKeywords(src.Text(), table); ok {
		return v
	}
	if param != "" {
		return param
	}
	return nil
}

var colorTable = []keywordEntry{
	{"rustic brown", "Rustic Brown"},
	{"antique white", "Antique White"},
	{"light brown", "Light Brown"},
	{"dark brown", "Dark Brown"},
	{"light blue", "Light Blue"},
	{"navy blue", "Navy Blue"},
	{"dark gray", "Dark Gray"},
	{"dark grey", "Dark Gray"},
	{"light gray", "Light Gray"},
	{"light grey", "Light Gray"},
	{"off white", "Off-White"},
	{"off-white", "Off-White"},
	{"espresso", "Espresso"},
	{"charcoal", "Charcoal"},
	{"burgundy", "Burgundy"},
	{"lavender", "Lavender"},
	{"natural", "Natural"},
	{"walnut", "Walnut"},
	{"cherry", "Cherry"},
	{"yellow", "Yellow"},
	{"orange", "Orange"},
	{"purple", "Purple"},
	{"silver", "Silver"},
	{"bronze", "Bronze"},
	{"black", "Black"},
	{"white", "White"},
	{"brown", "Brown"},
	{"beige", "Beige"},
	{"ivory", "Ivory"},
	{"cream", "Cream"},
	{"green", "Green"},
	{"navy", "Navy Blue"},
	{"teal", "Teal"},
	{"gray", "Gray"},
	{"grey", "Gray"},
	{"blue", "Blue"},
	{"gold", "Gold"},
	{"pink", "Pink"},
	{"red", "Red"},
	{"oak", "Oak"},
}

func extractColor(src *Source, param string) interface{} {
	if c, ok := src.Field("color").(string); ok && strings.TrimSpace(c) != "" {
		return strings.TrimSpace(c)
	}
	return extractKeyword(src, param, colorTable)
}

// colorCategoryVocab is the marketplace's closed color-category list
var colorCategoryVocab = []string{
	"Black", "Blue", "Beige", "Bronze", "Brown", "Gold", "Gray", "Green",
	"Multicolor", "Off-White", "Orange", "Pink", "Purple", "Red",
	"Silver", "White", "Yellow",
}

var colorCategoryTable = []keywordEntry{
	{"multicolor", "Multicolor"},
	{"multi-color", "Multicolor"},
	{"off white", "Off-White"},
	{"off-white", "Off-White"},
	{"espresso", "Brown"},
	{"charcoal", "Gray"},
	{"burgundy", "Red"},
	{"lavender", "Purple"},
	{"walnut", "Brown"},
	{"cherry", "Brown"},
	{"yellow", "Yellow"},
	{"orange", "Orange"},
	{"purple", "Purple"},
	{"silver", "Silver"},
	{"bronze", "Bronze"},
	{"black", "Black"},
	{"white", "White"},
	{"brown", "Brown"},
	{"beige", "Beige"},
	{"ivory", "Off-White"},
	{"cream", "Off-White"},
	{"green", "Green"},
	{"navy", "Blue"},
	{"teal", "Blue"},
	{"gray", "Gray"},
	{"grey", "Gray"},
	{"blue", "Blue"},
	{"gold", "Gold"},
	{"pink", "Pink"},
	{"red", "Red"},
	{"oak", "Brown"},
}

func extractColorCategory(src *Source, param string) interface{} {
	candidate, _ := src.Field("color").(string)
	if v, ok := matchVocabulary(candidate, src.Text(), colorCategoryVocab, colorCategoryTable); ok {
		return v
	}
	if param != "" {
		return param
	}
	return nil
}

var materialTable = []keywordEntry{
	{"engineered wood", "Engineered Wood"},
	{"manufactured wood", "Engineered Wood"},
	{"stainless steel", "Stainless Steel"},
	{"particle board", "Particle Board"},
	{"tempered glass", "Tempered Glass"},
	{"bonded leather", "Bonded Leather"},
	{"faux leather", "Faux Leather"},
	{"pu leather", "Faux Leather"},
	{"solid wood", "Solid Wood"},
	{"aluminum", "Aluminum"},
	{"concrete", "Concrete"},
	{"leather", "Leather"},
	{"plastic", "Plastic"},
	{"bamboo", "Bamboo"},
	{"marble", "Marble"},
	{"velvet", "Velvet"},
	{"wicker", "Wicker"},
	{"rattan", "Rattan"},
	{"fabric", "Fabric"},
	{"linen", "Linen"},
	{"metal", "Metal"},
	{"glass", "Glass"},
	{"steel", "Steel"},
	{"wood", "Wood"},
	{"iron", "Iron"},
	{"mdf", "MDF"},
}

func extractMaterial(src *Source, param string) interface{} {
	if m, ok := src.Field("material").(string); ok && strings.TrimSpace(m) != "" {
		return strings.TrimSpace(m)
	}
	return extractKeyword(src, param, materialTable)
}

var frameMaterialTable = []keywordEntry{
	{"stainless steel frame", "Stainless Steel"},
	{"solid wood frame", "Solid Wood"},
	{"aluminum frame", "Aluminum"},
	{"wooden frame", "Wood"},
	{"metal frame", "Metal"},
	{"steel frame", "Steel"},
	{"wood frame", "Wood"},
	{"iron frame", "Iron"},
}

func extractFrameMaterial(src *Source, param string) interface{} {
	return extractKeyword(src, param, frameMaterialTable)
}

var fillMaterialTable = []keywordEntry{
	{"high-density foam", "High-Density Foam"},
	{"high density foam", "High-Density Foam"},
	{"memory foam", "Memory Foam"},
	{"polyester fill", "Polyester"},
	{"down filled", "Down"},
	{"down fill", "Down"},
	{"foam", "Foam"},
}

func extractFillMaterial(src *Source, param string) interface{} {
	return extractKeyword(src, param, fillMaterialTable)
}

var homeDecorStyleTable = []keywordEntry{
	{"mid-century modern", "Mid-Century Modern"},
	{"mid century modern", "Mid-Century Modern"},
	{"modern farmhouse", "Modern Farmhouse"},
	{"french country", "French Country"},
	{"shabby chic", "Shabby Chic"},
	{"scandinavian", "Scandinavian"},
	{"transitional", "Transitional"},
	{"contemporary", "Contemporary"},
	{"traditional", "Traditional"},
	{"minimalist", "Minimalist"},
	{"industrial", "Industrial"},
	{"farmhouse", "Farmhouse"},
	{"bohemian", "Bohemian"},
	{"victorian", "Victorian"},
	{"coastal", "Coastal"},
	{"vintage", "Vintage"},
	{"rustic", "Rustic"},
	{"modern", "Modern"},
	{"glam", "Glam"},
	{"boho", "Bohemian"},
}

func extractHomeDecorStyle(src *Source, param string) interface{} {
	return extractKeyword(src, param, homeDecorStyleTable)
}

var shapeTable = []keywordEntry{
	{"rectangular", "Rectangle"},
	{"rectangle", "Rectangle"},
	{"l-shaped", "L-Shaped"},
	{"l shaped", "L-Shaped"},
	{"u-shaped", "U-Shaped"},
	{"u shaped", "U-Shaped"},
	{"circular", "Round"},
	{"octagon", "Octagon"},
	{"hexagon", "Hexagon"},
	{"square", "Square"},
	{"round", "Round"},
	{"oval", "Oval"},
}

func extractShape(src *Source, param string) interface{} {
	return extractKeyword(src, param, shapeTable)
}

var finishTable = []keywordEntry{
	{"distressed", "Distressed"},
	{"weathered", "Weathered"},
	{"lacquered", "Lacquered"},
	{"polished", "Polished"},
	{"brushed", "Brushed"},
	{"antique", "Antique"},
	{"painted", "Painted"},
	{"stained", "Stained"},
	{"glossy", "Glossy"},
	{"gloss", "Glossy"},
	{"matte", "Matte"},
	{"satin", "Satin"},
}

func extractFinish(src *Source, param string) interface{} {
	return extractKeyword(src, param, finishTable)
}

var woodToneTable = []keywordEntry{
	{"medium wood", "Medium Wood"},
	{"light wood", "Light Wood"},
	{"dark wood", "Dark Wood"},
	{"espresso", "Dark Wood"},
	{"walnut", "Medium Wood"},
	{"natural", "Light Wood"},
	{"cherry", "Dark Wood"},
	{"oak", "Light Wood"},
}

func extractWoodTone(src *Source, param string) interface{} {
	return extractKeyword(src, param, woodToneTable)
}

var mountTypeTable = []keywordEntry{
	{"wall-mounted", "Wall Mount"},
	{"wall mounted", "Wall Mount"},
	{"ceiling mount", "Ceiling Mount"},
	{"freestanding", "Freestanding"},
	{"free standing", "Freestanding"},
	{"wall mount", "Wall Mount"},
	{"countertop", "Countertop"},
	{"tabletop", "Tabletop"},
}

func extractMountType(src *Source, param string) interface{} {
	return extractKeyword(src, param, mountTypeTable)
}

var powerTypeTable = []keywordEntry{
	{"battery operated", "Battery"},
	{"battery powered", "Battery"},
	{"corded electric", "Electric"},
	{"solar powered", "Solar"},
	{"usb powered", "USB"},
	{"cordless", "Battery"},
	{"plug-in", "Electric"},
	{"electric", "Electric"},
	{"solar", "Solar"},
}

func extractPowerType(src *Source, param string) interface{} {
	return extractKeyword(src, param, powerTypeTable)
}

var roomTable = []keywordEntry{
	{"laundry room", "Laundry Room"},
	{"living room", "Living Room"},
	{"dining room", "Dining Room"},
	{"home office", "Home Office"},
	{"bathroom", "Bathroom"},
	{"entryway", "Entryway"},
	{"basement", "Basement"},
	{"bedroom", "Bedroom"},
	{"hallway", "Hallway"},
	{"kitchen", "Kitchen"},
	{"nursery", "Nursery"},
	{"outdoor", "Outdoor"},
	{"garage", "Garage"},
	{"office", "Home Office"},
	{"patio", "Outdoor"},
	{"dorm", "Dorm"},
}

func extractRecommendedRoom(src *Source, param string) interface{} {
	return extractKeyword(src, param, roomTable)
}

var ageGroupTable = []keywordEntry{
	{"children", "Child"},
	{"toddler", "Toddler"},
	{"infant", "Infant"},
	{"child", "Child"},
	{"adult", "Adult"},
	{"baby", "Infant"},
	{"kids", "Child"},
	{"teen", "Teen"},
}

func extractAgeGroup(src *Source, param string) interface{} {
	return extractKeyword(src, param, ageGroupTable)
}

var genderTable = []keywordEntry{
	{"unisex", "Unisex"},
	{"womens", "Female"},
	{"women", "Female"},
	{"female", "Female"},
	{"girls", "Female"},
	{"girl", "Female"},
	{"mens", "Male"},
	{"male", "Male"},
	{"boys", "Male"},
	{"men", "Male"},
	{"boy", "Male"},
}

func extractGender(src *Source, param string) interface{} {
	return extractKeyword(src, param, genderTable)
}

var themeTable = []keywordEntry{
	{"christmas", "Christmas"},
	{"halloween", "Halloween"},
	{"geometric", "Geometric"},
	{"nautical", "Nautical"},
	{"tropical", "Tropical"},
	{"animal", "Animal"},
	{"floral", "Floral"},
	{"sports", "Sports"},
	{"beach", "Beach"},
	{"music", "Music"},
	{"space", "Space"},
	{"farm", "Farm"},
}

func extractTheme(src *Source, param string) interface{} {
	return extractKeyword(src, param, themeTable)
}

var patternTable = []keywordEntry{
	{"herringbone", "Herringbone"},
	{"camouflage", "Camouflage"},
	{"polka dot", "Polka Dot"},
	{"checkered", "Checkered"},
	{"geometric", "Geometric"},
	{"abstract", "Abstract"},
	{"chevron", "Chevron"},
	{"paisley", "Paisley"},
	{"striped", "Striped"},
	{"stripe", "Striped"},
	{"floral", "Floral"},
	{"plaid", "Plaid"},
	{"solid", "Solid"},
}

func extractPattern(src *Source, param string) interface{} {
	return extractKeyword(src, param, patternTable)
}

var orientationTable = []keywordEntry{
	{"left-facing", "Left-Facing"},
	{"left facing", "Left-Facing"},
	{"right-facing", "Right-Facing"},
	{"right facing", "Right-Facing"},
	{"reversible", "Reversible"},
	{"horizontal", "Horizontal"},
	{"vertical", "Vertical"},
}

func extractOrientation(src *Source, param string) interface{} {
	return extractKeyword(src, param, orientationTable)
}
