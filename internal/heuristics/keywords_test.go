package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"listing-mapper-service/internal/models"
)

func TestColorPrefersChannelField(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Brown Leather Sofa",
		"color": "Cognac",
	})

	v := Lookup("color_extract")(src, "")
	assert.Equal(t, "Cognac", v)
}

func TestColorLongestKeywordWins(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Rustic Brown Coffee Table",
	})

	v := Lookup("color_extract")(src, "")
	assert.Equal(t, "Rustic Brown", v)
}

func TestColorDeterministicAcrossRuns(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Navy Blue and White Striped Armchair",
	})

	first := Lookup("color_extract")(src, "")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Lookup("color_extract")(src, ""))
	}
	assert.Equal(t, "Navy Blue", first)
}

func TestColorCategoryVocabularyMatch(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Armchair",
		"color": "off-white",
	})

	v := Lookup("color_category_extract")(src, "")
	assert.Equal(t, "Off-White", v)
}

func TestColorCategoryKeywordFallback(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Espresso Finish TV Stand",
	})

	v := Lookup("color_category_extract")(src, "")
	assert.Equal(t, "Brown", v)
}

func TestMaterialCompoundBeforeSimple(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title":       "Bookcase",
		"description": "Made of engineered wood with a metal base.",
	})

	v := Lookup("material_extract")(src, "")
	assert.Equal(t, "Engineered Wood", v)
}

func TestHomeDecorStyle(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Mid-Century Modern Accent Chair",
	})

	v := Lookup("home_decor_style_extract")(src, "")
	assert.Equal(t, "Mid-Century Modern", v)
}

func TestKeywordFallsBackToParam(t *testing.T) {
	src := NewSource(models.ChannelAttributes{"title": "Widget"})

	v := Lookup("shape_extract")(src, "Rectangle")
	assert.Equal(t, "Rectangle", v)
}

func TestKeywordNoMatchNoParam(t *testing.T) {
	src := NewSource(models.ChannelAttributes{"title": "Widget"})

	v := Lookup("finish_extract")(src, "")
	assert.Nil(t, v)
}

func TestRecommendedRoomSynonym(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Compact Desk for Office or Dorm",
	})

	v := Lookup("recommended_room_extract")(src, "")
	assert.Equal(t, "Home Office", v)
}
