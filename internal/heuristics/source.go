package heuristics

import (
	"fmt"
	"strings"

	"listing-mapper-service/internal/models"
)

// Source wraps one product's channel data for extraction. Extractors
// read the lowercased title+description text and may consult specific
// channel fields as a higher-priority source.
type Source struct {
	channel models.ChannelAttributes
	title   string
	desc    string
	text    string
}

// NewSource builds an extraction source from channel data
func NewSource(channel models.ChannelAttributes) *Source {
	if channel == nil {
		channel = models.ChannelAttributes{}
	}
	title := stringValue(channel["title"])
	desc := stringValue(channel["description"])
	return &Source{
		channel: channel,
		title:   title,
		desc:    desc,
		text:    strings.ToLower(strings.TrimSpace(title + " " + desc)),
	}
}

// Title returns the raw product title
func (s *Source) Title() string { return s.title }

// Text returns the lowercased title+description haystack
func (s *Source) Text() string { return s.text }

// Field resolves a channel field path
func (s *Source) Field(path string) interface{} {
	return s.channel.Lookup(path)
}

// FirstField returns the first non-nil value among the given paths
func (s *Source) FirstField(paths ...string) interface{} {
	for _, p := range paths {
		if v := s.channel.Lookup(p); v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
