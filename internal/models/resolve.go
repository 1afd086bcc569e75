package models

import (
	"strconv"
	"strings"
)

// ChannelAttributes is one product's normalized channel data, as
// produced by a channel source adapter. There is no fixed schema;
// lookups tolerate missing keys at every level.
type ChannelAttributes map[string]interface{}

// CustomAttribute is a channel-specific {name, value} extension pair
// carried under the customAttributes key.
type CustomAttribute struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value,omitempty"`
}

// Lookup resolves a dotted/bracket field path ("dimensions.length",
// "images[0]", "variants[1].sku") against the channel data. Missing
// intermediate keys yield nil, never a panic.
func (ca ChannelAttributes) Lookup(path string) interface{} {
	var current interface{} = map[string]interface{}(ca)
	for _, seg := range splitPath(path) {
		if current == nil {
			return nil
		}
		if seg.index >= 0 {
			arr, ok := current.([]interface{})
			if !ok || seg.index >= len(arr) {
				return nil
			}
			current = arr[seg.index]
			continue
		}
		var m map[string]interface{}
		switch t := current.(type) {
		case map[string]interface{}:
			m = t
		case ChannelAttributes:
			m = t
		case JSONB:
			m = t
		default:
			return nil
		}
		current = m[seg.key]
	}
	return current
}

// CustomAttribute returns the value of the named entry in the
// customAttributes array, or nil when absent.
func (ca ChannelAttributes) CustomAttribute(name string) interface{} {
	raw, ok := ca["customAttributes"]
	if !ok {
		return nil
	}
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	for _, e := range entries {
		switch entry := e.(type) {
		case map[string]interface{}:
			if n, _ := entry["name"].(string); n == name {
				return entry["value"]
			}
		case CustomAttribute:
			if entry.Name == name {
				return entry.Value
			}
		}
	}
	return nil
}

type pathSegment struct {
	key   string
	index int // -1 for map keys
}

func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segs = append(segs, pathSegment{key: part, index: -1})
				}
				break
			}
			if open > 0 {
				segs = append(segs, pathSegment{key: part[:open], index: -1})
			}
			closeIdx := strings.IndexByte(part[open:], ']')
			if closeIdx < 0 {
				break
			}
			idx, err := strconv.Atoi(part[open+1 : open+closeIdx])
			if err != nil || idx < 0 {
				return append(segs, pathSegment{key: part, index: -1})
			}
			segs = append(segs, pathSegment{index: idx})
			part = part[open+closeIdx+1:]
			if part == "" {
				break
			}
		}
	}
	return segs
}

// ResolveContext carries per-invocation parameters that are not part of
// the channel data.
type ResolveContext struct {
	ProductSKU   string  `json:"productSku,omitempty"`
	ShopID       string  `json:"shopId,omitempty"`
	ProductPrice float64 `json:"productPrice,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
}

// ResolveError records one rule's resolution failure. Failures never
// abort sibling rules.
type ResolveError struct {
	AttributeID   string `json:"attributeId"`
	AttributeName string `json:"attributeName"`
	ErrorType     string `json:"errorType"`
	Message       string `json:"message"`
}

// ResolveResult is the engine's sole output contract. Success is false
// iff Errors is non-empty.
type ResolveResult struct {
	Success    bool                   `json:"success"`
	Attributes map[string]interface{} `json:"attributes"`
	Errors     []ResolveError         `json:"errors"`
	Warnings   []string               `json:"warnings"`
}

// NewResolveResult returns an empty successful result.
func NewResolveResult() *ResolveResult {
	return &ResolveResult{
		Success:    true,
		Attributes: make(map[string]interface{}),
		Errors:     []ResolveError{},
		Warnings:   []string{},
	}
}

// AddError appends a per-rule error and flips the aggregate flag.
func (r *ResolveResult) AddError(attributeID, attributeName, errorType, message string) {
	r.Errors = append(r.Errors, ResolveError{
		AttributeID:   attributeID,
		AttributeName: attributeName,
		ErrorType:     errorType,
		Message:       message,
	})
	r.Success = false
}

// AddWarning appends a non-blocking warning.
func (r *ResolveResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}
