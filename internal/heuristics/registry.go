package heuristics

// Extractor derives one attribute value from channel data. Extractors
// never fail; when nothing matches they return the param default, or
// nil so the caller omits the attribute.
type Extractor func(src *Source, param string) interface{}

// registry holds the fixed catalog of named extractors. Registration
// order is preserved for listing purposes only; lookups are by name.
var (
	registryNames []string
	registryFuncs = map[string]Extractor{}
)

func register(name string, fn Extractor) {
	if _, exists := registryFuncs[name]; !exists {
		registryNames = append(registryNames, name)
	}
	registryFuncs[name] = fn
}

// Lookup returns the named extractor, or nil when unknown. Unknown rule
// types are a non-fatal condition by contract.
func Lookup(ruleType string) Extractor {
	return registryFuncs[ruleType]
}

// Names lists all registered extractor names in registration order
func Names() []string {
	out := make([]string, len(registryNames))
	copy(out, registryNames)
	return out
}

func init() {
	// Measurements
	register("shipping_weight_extract", extractShippingWeight)
	register("assembled_product_weight_extract", extractAssembledProductWeight)
	register("item_weight_extract", extractItemWeight)
	register("assembled_product_length_extract", extractAssembledProductLength)
	register("assembled_product_width_extract", extractAssembledProductWidth)
	register("assembled_product_height_extract", extractAssembledProductHeight)
	register("maximum_weight_capacity_extract", extractMaximumWeightCapacity)
	register("screen_size_extract", extractScreenSize)

	// Counts
	register("piece_count_extract", extractPieceCount)
	register("seating_capacity_extract", extractSeatingCapacity)
	register("number_of_shelves_extract", extractNumberOfShelves)
	register("number_of_drawers_extract", extractNumberOfDrawers)
	register("number_of_doors_extract", extractNumberOfDoors)
	register("count_per_pack_extract", extractCountPerPack)

	// Categorical
	register("color_extract", extractColor)
	register("color_category_extract", extractColorCategory)
	register("material_extract", extractMaterial)
	register("frame_material_extract", extractFrameMaterial)
	register("fill_material_extract", extractFillMaterial)
	register("home_decor_style_extract", extractHomeDecorStyle)
	register("shape_extract", extractShape)
	register("finish_extract", extractFinish)
	register("wood_tone_extract", extractWoodTone)
	register("mount_type_extract", extractMountType)
	register("power_type_extract", extractPowerType)
	register("recommended_room_extract", extractRecommendedRoom)
	register("age_group_extract", extractAgeGroup)
	register("gender_extract", extractGender)
	register("theme_extract", extractTheme)
	register("pattern_extract", extractPattern)
	register("orientation_extract", extractOrientation)

	// Indicators
	register("industrial_use_indicator", extractIndustrialUse)
	register("upholstered_indicator", extractUpholstered)
	register("contains_electronics_indicator", extractContainsElectronics)
	register("battery_required_indicator", extractBatteryRequired)
	register("assembly_required_indicator", extractAssemblyRequired)

	// Composite
	register("items_included_extract", extractItemsIncluded)
}
