package client

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language selects the site language, which is part of every URL.
type Language struct {
	tag language.Tag
}

var (
	English = Language{tag: language.English}
	French  = Language{tag: language.French}
)

// ParseLanguage accepts any BCP 47 tag whose base language is English or
// French ("en", "fr-CA", ...).
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "fr":
		return French, nil
	}
	return Language{}, fmt.Errorf("unsupported language %q", s)
}

// Tag is the language tag, usable with x/text printers.
func (l Language) Tag() language.Tag { return l.tag }

// String is the URL path segment: "en" or "fr".
func (l Language) String() string {
	base, _ := l.tag.Base()
	return base.String()
}

func (l Language) IsZero() bool { return l == Language{} }
