package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigured(t *testing.T) {
	tests := []struct {
		name string
		rule MappingRule
		want bool
	}{
		{"default value set", MappingRule{MappingType: MappingDefaultValue, Value: "Walmart"}, true},
		{"default value empty string", MappingRule{MappingType: MappingDefaultValue, Value: ""}, false},
		{"default value nil", MappingRule{MappingType: MappingDefaultValue}, false},
		{"enum select set", MappingRule{MappingType: MappingEnumSelect, Value: "Blue"}, true},
		{"enum select empty list", MappingRule{MappingType: MappingEnumSelect, Value: []interface{}{}}, false},
		{"channel data path", MappingRule{MappingType: MappingChannelData, Value: "title"}, true},
		{"channel data blank path", MappingRule{MappingType: MappingChannelData, Value: "  "}, false},
		{"channel data non-string", MappingRule{MappingType: MappingChannelData, Value: 7}, false},
		{"auto generate with rule type", MappingRule{MappingType: MappingAutoGenerate, Value: map[string]interface{}{"ruleType": "color_extract"}}, true},
		{"auto generate without rule type", MappingRule{MappingType: MappingAutoGenerate, Value: map[string]interface{}{}}, false},
		{"upc pool needs no value", MappingRule{MappingType: MappingUPCPool}, true},
		{"unknown mapping type", MappingRule{MappingType: "mystery", Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.IsConfigured())
		})
	}
}

func TestAutoGenerateValueDecoding(t *testing.T) {
	fromMap := MappingRule{Value: map[string]interface{}{"ruleType": "color_extract", "param": "Black"}}
	cfg := fromMap.AutoGenerateValue()
	assert.Equal(t, "color_extract", cfg.RuleType)
	assert.Equal(t, "Black", cfg.Param)

	fromStruct := MappingRule{Value: AutoGenerateConfig{RuleType: "shape_extract"}}
	assert.Equal(t, "shape_extract", fromStruct.AutoGenerateValue().RuleType)

	malformed := MappingRule{Value: "not a config"}
	assert.Equal(t, AutoGenerateConfig{}, malformed.AutoGenerateValue())
}
