package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// SpecSource provides the optional market attribute-spec document.
// Absence or load failure is non-fatal: the adapter falls back to the
// hardcoded default classification.
type SpecSource interface {
	Load(ctx context.Context) ([]byte, error)
}

// FieldClassification groups platform attribute names by the reshape
// each needs for non-US markets.
type FieldClassification struct {
	MultiLang      []string
	MultiLangArray []string
	Weight         []string
	Array          []string
	Deprecated     []string
}

// defaultClassification covers the known fields when no market spec
// document is available.
func defaultClassification() *FieldClassification {
	return &FieldClassification{
		MultiLang:      []string{"productName", "shortDescription", "longDescription", "mainImageAltText"},
		MultiLangArray: []string{"keyFeatures"},
		Weight:         []string{"ShippingWeight"},
		Array:          []string{"additionalImages"},
		Deprecated:     []string{"countryOfOriginTextiles"},
	}
}

// IntlService reshapes resolved attributes into the JSON shapes a
// non-US target market expects. The parsed classification is cached
// for the process lifetime after the first load; there is no
// invalidation path short of a restart.
type IntlService struct {
	source SpecSource
	logger *logrus.Entry

	mu             sync.Mutex
	classification *FieldClassification
}

// NewIntlService creates a new international spec adapter
func NewIntlService(source SpecSource, logger *logrus.Logger) *IntlService {
	return &IntlService{
		source: source,
		logger: logger.WithField("component", "intl-spec"),
	}
}

// Classification returns the cached field classification, loading and
// parsing the market spec document on first use.
func (s *IntlService) Classification(ctx context.Context) *FieldClassification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.classification != nil {
		return s.classification
	}

	s.classification = defaultClassification()
	if s.source == nil {
		return s.classification
	}

	data, err := s.source.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Market spec unavailable, using default classification")
		return s.classification
	}
	parsed, err := parseSpecClassification(data)
	if err != nil {
		s.logger.WithError(err).Warn("Market spec unparseable, using default classification")
		return s.classification
	}
	// Deprecated fields are removed regardless of what the spec lists
	parsed.Deprecated = s.classification.Deprecated
	s.classification = parsed
	return s.classification
}

// Reset clears the cached classification. Test harness use only.
func (s *IntlService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classification = nil
}

// parseSpecClassification walks a JSON-schema-shaped market spec
// document and classifies each attribute by its declared shape.
func parseSpecClassification(data []byte) (*FieldClassification, error) {
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := &FieldClassification{}
	for name, raw := range doc.Properties {
		var prop struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
			Items      *struct {
				Type       string                     `json:"type"`
				Properties map[string]json.RawMessage `json:"properties"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &prop); err != nil {
			continue
		}
		switch {
		case prop.Type == "object" && hasLanguageKeys(prop.Properties):
			out.MultiLang = append(out.MultiLang, name)
		case prop.Type == "object" && hasMeasureKeys(prop.Properties):
			out.Weight = append(out.Weight, name)
		case prop.Type == "array" && prop.Items != nil && hasLanguageKeys(prop.Items.Properties):
			out.MultiLangArray = append(out.MultiLangArray, name)
		case prop.Type == "array":
			out.Array = append(out.Array, name)
		}
	}
	return out, nil
}

func hasLanguageKeys(props map[string]json.RawMessage) bool {
	_, en := props["en"]
	_, fr := props["fr"]
	return en || fr
}

func hasMeasureKeys(props map[string]json.RawMessage) bool {
	_, measure := props["measure"]
	_, unit := props["unit"]
	return measure && unit
}

// Reshape adapts a resolved attribute map to the target market's
// expected shapes. US payloads pass through untouched. The reshape is
// idempotent: already-shaped values are left alone.
func (s *IntlService) Reshape(ctx context.Context, attributes map[string]interface{}, market string) map[string]interface{} {
	if market == "" || market == "US" || attributes == nil {
		return attributes
	}
	cls := s.Classification(ctx)

	out := make(map[string]interface{}, len(attributes))
	for k, v := range attributes {
		out[k] = v
	}

	for _, field := range cls.MultiLang {
		if v, ok := out[field]; ok {
			out[field] = wrapMultiLang(v)
		}
	}
	for _, field := range cls.MultiLangArray {
		if v, ok := out[field]; ok {
			if arr, isArr := v.([]interface{}); isArr {
				wrapped := make([]interface{}, len(arr))
				for i, el := range arr {
					wrapped[i] = wrapMultiLang(el)
				}
				out[field] = wrapped
			} else {
				out[field] = []interface{}{wrapMultiLang(v)}
			}
		}
	}
	for _, field := range cls.Weight {
		// A lower-camel-cased alias of the field is recognized and renamed
		alias := lowerCamel(field)
		if alias != field {
			if v, ok := out[alias]; ok {
				delete(out, alias)
				out[field] = v
			}
		}
		if v, ok := out[field]; ok {
			out[field] = wrapWeight(v)
		}
	}
	for _, field := range cls.Array {
		if v, ok := out[field]; ok {
			if str, isStr := v.(string); isStr {
				out[field] = []interface{}{str}
			}
		}
	}
	for _, field := range cls.Deprecated {
		delete(out, field)
	}

	return out
}

func wrapMultiLang(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return map[string]interface{}{"en": t}
	case map[string]interface{}:
		if _, en := t["en"]; en {
			return t
		}
		if _, fr := t["fr"]; fr {
			return t
		}
		return t
	default:
		return v
	}
}

func wrapWeight(v interface{}) interface{} {
	switch t := v.(type) {
	case float64:
		return map[string]interface{}{"unit": "lb", "measure": t}
	case int:
		return map[string]interface{}{"unit": "lb", "measure": float64(t)}
	case map[string]interface{}:
		return t
	default:
		return v
	}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]+32) + s[1:]
	}
	return s
}
