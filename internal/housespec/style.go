package housespec

import (
	"encoding/json"
	"strings"
)

// StyleName identifies an enumerated architectural style.
type StyleName string

const (
	Modern        StyleName = "Modern"
	Traditional   StyleName = "Traditional"
	Contemporary  StyleName = "Contemporary"
	Farmhouse     StyleName = "Farmhouse"
	Minimalist    StyleName = "Minimalist"
	Mediterranean StyleName = "Mediterranean"

	// CustomStyle is the sentinel that selects free-text style entry.
	CustomStyle StyleName = "Custom"
)

var StyleNames = []StyleName{Modern, Traditional, Contemporary, Farmhouse, Minimalist, Mediterranean}

// Style is either an enumerated style or a user-supplied custom description.
type Style struct {
	name   StyleName
	custom string
}

// Enumerated returns a Style for one of the named styles.
func Enumerated(name StyleName) Style {
	return Style{name: name}
}

// Custom returns a free-text Style.
func Custom(text string) Style {
	return Style{name: CustomStyle, custom: strings.TrimSpace(text)}
}

func (s Style) IsCustom() bool {
	return s.name == CustomStyle
}

// Name returns the enumerated name, or CustomStyle for free-text styles.
func (s Style) Name() StyleName {
	return s.name
}

// Display returns the resolved style in its original case.
func (s Style) Display() string {
	if s.IsCustom() {
		return s.custom
	}
	return string(s.name)
}

// PromptText returns the resolved style lower-cased for prompt interpolation.
func (s Style) PromptText() string {
	return strings.ToLower(s.Display())
}

func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   StyleName `json:"name"`
		Custom string    `json:"custom,omitempty"`
	}{s.name, s.custom})
}
