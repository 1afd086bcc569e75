package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupDottedPath(t *testing.T) {
	ca := ChannelAttributes{
		"title": "Desk",
		"dimensions": map[string]interface{}{
			"length": 47.2,
		},
	}

	assert.Equal(t, "Desk", ca.Lookup("title"))
	assert.Equal(t, 47.2, ca.Lookup("dimensions.length"))
	assert.Nil(t, ca.Lookup("dimensions.width"))
	assert.Nil(t, ca.Lookup("missing.deeply.nested"))
}

func TestLookupArrayIndex(t *testing.T) {
	ca := ChannelAttributes{
		"images": []interface{}{"a.jpg", "b.jpg"},
		"variants": []interface{}{
			map[string]interface{}{"sku": "V-1"},
			map[string]interface{}{"sku": "V-2"},
		},
	}

	assert.Equal(t, "a.jpg", ca.Lookup("images[0]"))
	assert.Equal(t, "b.jpg", ca.Lookup("images[1]"))
	assert.Nil(t, ca.Lookup("images[5]"))
	assert.Equal(t, "V-2", ca.Lookup("variants[1].sku"))
}

func TestLookupTraversesJSONBValues(t *testing.T) {
	// Channel payloads restored from a jsonb column carry JSONB maps
	ca := ChannelAttributes{
		"specs": JSONB{"weight": 12.5},
	}

	assert.Equal(t, 12.5, ca.Lookup("specs.weight"))
}

func TestLookupThroughScalarYieldsNil(t *testing.T) {
	ca := ChannelAttributes{"title": "Desk"}

	assert.Nil(t, ca.Lookup("title.nested"))
	assert.Nil(t, ca.Lookup("title[0]"))
}

func TestCustomAttributeLookup(t *testing.T) {
	ca := ChannelAttributes{
		"customAttributes": []interface{}{
			map[string]interface{}{"name": "warranty", "value": "2 years"},
			map[string]interface{}{"name": "origin", "value": "Vietnam"},
		},
	}

	assert.Equal(t, "2 years", ca.CustomAttribute("warranty"))
	assert.Equal(t, "Vietnam", ca.CustomAttribute("origin"))
	assert.Nil(t, ca.CustomAttribute("missing"))
}

func TestResolveResultErrorFlipsSuccess(t *testing.T) {
	r := NewResolveResult()
	assert.True(t, r.Success)

	r.AddWarning("something soft")
	assert.True(t, r.Success)

	r.AddError("attr-1", "Color", "ResolveError", "boom")
	assert.False(t, r.Success)
	assert.Len(t, r.Errors, 1)
	assert.Len(t, r.Warnings, 1)
}

func TestClassifyCode(t *testing.T) {
	assert.Equal(t, ProductIDTypeUPC, ClassifyCode("012345678905"))
	assert.Equal(t, ProductIDTypeEAN, ClassifyCode("4006381333931"))
	assert.Equal(t, ProductIDTypeGTIN, ClassifyCode("10614141543219"))
	assert.Equal(t, ProductIDTypeGTIN, ClassifyCode("12345"))
}

func TestPriceTierMatchesHalfOpen(t *testing.T) {
	max := 50.0
	tier := PriceTier{MinPrice: 10, MaxPrice: &max, Multiplier: 1.2}

	assert.False(t, tier.Matches(9.99))
	assert.True(t, tier.Matches(10))
	assert.True(t, tier.Matches(49.99))
	assert.False(t, tier.Matches(50))

	unbounded := PriceTier{MinPrice: 50}
	assert.True(t, unbounded.Matches(50))
	assert.True(t, unbounded.Matches(100000))
}
