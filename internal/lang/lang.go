// Package lang provides the localized text types shared by the engine
// components. Every static table in stellar carries all three languages.
package lang

import "strings"

// Language is a supported output language.
type Language string

const (
	RU Language = "ru"
	TR Language = "tr"
	EN Language = "en"
)

// Default is used when a caller passes an unknown or empty language.
const Default = RU

// Parse resolves a language code such as "en" or "EN-us". Unknown codes
// resolve to Default.
func Parse(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch Language(code) {
	case RU, TR, EN:
		return Language(code)
	}
	return Default
}

// Text is a single string in every supported language.
type Text struct {
	RU string `json:"ru" yaml:"ru"`
	TR string `json:"tr" yaml:"tr"`
	EN string `json:"en" yaml:"en"`
}

// For returns the text for l.
func (t Text) For(l Language) string {
	switch l {
	case TR:
		return t.TR
	case EN:
		return t.EN
	}
	return t.RU
}

// TextList is a list of strings in every supported language.
type TextList struct {
	RU []string `json:"ru" yaml:"ru"`
	TR []string `json:"tr" yaml:"tr"`
	EN []string `json:"en" yaml:"en"`
}

// For returns the list for l. The returned slice is shared; callers must
// copy before modifying it.
func (t TextList) For(l Language) []string {
	switch l {
	case TR:
		return t.TR
	case EN:
		return t.EN
	}
	return t.RU
}
