package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"listing-mapper-service/internal/models"
)

func TestItemsIncludedFromSetTitle(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Coffee Table and TV Stand Set",
	})

	v := Lookup("items_included_extract")(src, "")
	assert.Equal(t, []string{"Coffee Table", "TV Stand"}, v)
}

func TestItemsIncludedSynonymsDeduplicate(t *testing.T) {
	// "TV Console" and "TV Stand" normalize to the same item
	src := NewSource(models.ChannelAttributes{
		"title": "TV Console and TV Stand Set of 2",
	})

	v := Lookup("items_included_extract")(src, "")
	assert.Equal(t, []string{"TV Stand"}, v)
}

func TestItemsIncludedThreeItems(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Coffee Table, End Table and Nightstand Set of 3",
	})

	v := Lookup("items_included_extract")(src, "")
	assert.Equal(t, []string{"Coffee Table", "End Table", "Nightstand"}, v)
}

func TestItemsIncludedNoSetStructureReturnsNil(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Modern Walnut Desk",
	})

	v := Lookup("items_included_extract")(src, "")
	assert.Nil(t, v)
}

func TestItemsIncludedParamFallback(t *testing.T) {
	src := NewSource(models.ChannelAttributes{
		"title": "Modern Walnut Desk",
	})

	v := Lookup("items_included_extract")(src, "Desk")
	assert.Equal(t, []string{"Desk"}, v)
}

func TestRegistryKnowsAllExtractors(t *testing.T) {
	names := Names()
	assert.Len(t, names, 37)
	for _, name := range names {
		assert.NotNil(t, Lookup(name), name)
	}
	assert.Nil(t, Lookup("definitely_not_registered"))
}
