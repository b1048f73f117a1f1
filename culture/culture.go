// Package culture normalizes caller-supplied locale identifiers into the
// numeric conventions used when parsing JSON-adjacent number text. It is
// deliberately narrow: identifier normalization plus locale-aware int/float
// parsing, nothing else.
package culture

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Info describes the numeric conventions of a normalized locale. The zero
// value is not meaningful; obtain one via Normalize or Invariant.
type Info struct {
	tag     language.Tag
	decimal rune
	groups  string // runes accepted as digit group separators
}

// Invariant returns the culture used when no identifier is supplied:
// dot decimal separator, comma group separator.
func Invariant() Info {
	return Info{tag: language.Und, decimal: '.', groups: ","}
}

// Normalize maps a locale identifier to its numeric conventions. An empty
// or blank identifier yields Invariant(); an unrecognizable identifier is an
// error.
func Normalize(id string) (Info, error) {
	if strings.TrimSpace(id) == "" {
		return Invariant(), nil
	}
	tag, err := language.Parse(id)
	if err != nil {
		return Info{}, fmt.Errorf("culture: unrecognized identifier %q: %w", id, err)
	}
	return fromTag(tag), nil
}

// MustNormalize is Normalize for identifiers known to be valid; it panics
// otherwise. Intended for package-level defaults in calling code.
func MustNormalize(id string) Info {
	info, err := Normalize(id)
	if err != nil {
		panic(err)
	}
	return info
}

func fromTag(tag language.Tag) Info {
	base, _ := tag.Base()
	region, _ := tag.Region()
	// Swiss conventions keep the dot decimal with apostrophe grouping even
	// for comma-decimal base languages.
	if region.String() == "CH" {
		return Info{tag: tag, decimal: '.', groups: "'’"}
	}
	if commaDecimal[base.String()] {
		return Info{tag: tag, decimal: ',', groups: ".   "}
	}
	return Info{tag: tag, decimal: '.', groups: ","}
}

// commaDecimal lists base languages whose locales write decimals with a
// comma. Coarse CLDR subset; region-level exceptions beyond CH are not
// distinguished.
var commaDecimal = map[string]bool{
	"az": true, "be": true, "bg": true, "bs": true, "ca": true,
	"cs": true, "da": true, "de": true, "el": true, "es": true,
	"et": true, "fi": true, "fr": true, "gl": true, "hr": true,
	"hu": true, "id": true, "is": true, "it": true, "kk": true,
	"lt": true, "lv": true, "mk": true, "nb": true, "nl": true,
	"nn": true, "no": true, "pl": true, "pt": true, "ro": true,
	"ru": true, "sk": true, "sl": true, "sq": true, "sr": true,
	"sv": true, "tr": true, "uk": true, "vi": true,
}

// Tag returns the normalized language tag; language.Und for the invariant
// culture.
func (i Info) Tag() language.Tag { return i.tag }

// Name returns the canonical identifier, "und" for the invariant culture.
func (i Info) Name() string { return i.tag.String() }

// ParseInt parses integer text under the locale's conventions. Group
// separators are permitted between digits; a fractional part is an error.
func (i Info) ParseInt(s string) (int64, error) {
	return strconv.ParseInt(i.stripGroups(strings.TrimSpace(s)), 10, 64)
}

// ParseFloat parses floating-point text under the locale's conventions: the
// locale's group separators are dropped and its decimal separator mapped to
// the invariant dot before conversion.
func (i Info) ParseFloat(s string) (float64, error) {
	t := i.stripGroups(strings.TrimSpace(s))
	if i.decimal != '.' {
		t = strings.ReplaceAll(t, string(i.decimal), ".")
	}
	return strconv.ParseFloat(t, 64)
}

func (i Info) stripGroups(s string) string {
	if !strings.ContainsAny(s, i.groups) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(i.groups, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
