package models

import (
	"strings"
)

// MappingType identifies how a platform attribute's value is obtained
type MappingType string

const (
	MappingDefaultValue MappingType = "default_value"
	MappingChannelData  MappingType = "channel_data"
	MappingEnumSelect   MappingType = "enum_select"
	MappingAutoGenerate MappingType = "auto_generate"
	MappingUPCPool      MappingType = "upc_pool"
)

// MappingRule describes how to resolve one platform attribute.
// Rules are authored and persisted by the category configuration store;
// this service only consumes them.
type MappingRule struct {
	AttributeID   string      `json:"attributeId"`
	AttributeName string      `json:"attributeName"`
	MappingType   MappingType `json:"mappingType"`
	Value         interface{} `json:"value,omitempty"`
	DataType      string      `json:"dataType,omitempty"`
	IsRequired    bool        `json:"isRequired"`
}

// RulesConfig is an ordered rule set for one category. Evaluation order
// follows slice order; a later duplicate attributeId overwrites an
// earlier one.
type RulesConfig []MappingRule

// AutoGenerateConfig is the value payload of an auto_generate rule,
// naming one of the registered heuristic extractors.
type AutoGenerateConfig struct {
	RuleType string `json:"ruleType"`
	Param    string `json:"param,omitempty"`
}

// AutoGenerateValue decodes the rule's polymorphic value into an
// AutoGenerateConfig. Accepts either the struct itself or the decoded
// JSON object form.
func (r *MappingRule) AutoGenerateValue() AutoGenerateConfig {
	switch v := r.Value.(type) {
	case AutoGenerateConfig:
		return v
	case map[string]interface{}:
		cfg := AutoGenerateConfig{}
		if rt, ok := v["ruleType"].(string); ok {
			cfg.RuleType = rt
		}
		if p, ok := v["param"].(string); ok {
			cfg.Param = p
		}
		return cfg
	default:
		return AutoGenerateConfig{}
	}
}

// IsConfigured reports whether the rule carries a usable value for its
// mapping type. Unconfigured rules are skipped entirely during
// resolution, with no warning.
func (r *MappingRule) IsConfigured() bool {
	switch r.MappingType {
	case MappingUPCPool:
		return true
	case MappingChannelData:
		path, ok := r.Value.(string)
		return ok && strings.TrimSpace(path) != ""
	case MappingAutoGenerate:
		return r.AutoGenerateValue().RuleType != ""
	case MappingDefaultValue, MappingEnumSelect:
		return !isEmptyValue(r.Value)
	default:
		return false
	}
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []interface{}:
		return len(t) == 0
	}
	return false
}
