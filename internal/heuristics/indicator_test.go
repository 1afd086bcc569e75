package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"listing-mapper-service/internal/models"
)

func TestIndustrialStyleIsNotIndustrialUse(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Industrial Style Coffee Table",
	})

	v := Lookup("industrial_use_indicator")(src, "")
	assert.Equal(t, "No", v)
}

func TestIndustrialGradeIsIndustrialUse(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Heavy-Duty Industrial Grade Workbench",
	})

	v := Lookup("industrial_use_indicator")(src, "")
	assert.Equal(t, "Yes", v)
}

func TestNegativeKeywordOverridesPositive(t *testing.T) {
	// "industrial style" and "heavy-duty" both present: negative wins
	src := NewSource(models.ChannelAttributes{
		"title":       "Industrial Style Desk",
		"description": "Heavy-duty steel legs.",
	})

	v := Lookup("industrial_use_indicator")(src, "")
	assert.Equal(t, "No", v)
}

func TestIndicatorDefaultsToParam(t *testing.T) {
	src := NewSource(models.ChannelAttributes{"title": "Plain Table"})

	assert.Equal(t, "Yes", Lookup("assembly_required_indicator")(src, "Yes"))
	assert.Equal(t, "No", Lookup("assembly_required_indicator")(src, ""))
}

func TestAssemblyRequired(t *testing.T) {
	yes := NewSource(models.ChannelAttributes{
		"description": "Some assembly required, tools included.",
	})
	no := NewSource(models.ChannelAttributes{
		"description": "Arrives fully assembled.",
	})

	assert.Equal(t, "Yes", Lookup("assembly_required_indicator")(yes, ""))
	assert.Equal(t, "No", Lookup("assembly_required_indicator")(no, ""))
}

func TestBatteryRequired(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"description": "LED lights, no batteries required, plugs into a wall outlet.",
	})

	assert.Equal(t, "No", Lookup("battery_required_indicator")(src, ""))
	assert.Equal(t, "Yes", Lookup("contains_electronics_indicator")(src, ""))
}

func TestUpholstered(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Tufted Velvet Accent Chair",
	})

	assert.Equal(t, "Yes", Lookup("upholstered_indicator")(src, ""))
}
