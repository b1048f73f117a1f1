package i18n

import "strings"

// Translator retrieves localized messages for issue codes. data provides
// optional values to embed in the message (for example, "expected" or
// "tag"); templates reference them as ${key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"parse_error":     "parse error",
		"invalid_type":    "expected ${expected} node, got ${actual}",
		"no_match":        "no element matched tag ${tag}",
		"ambiguous_match": "expected single-or-none, found ${count} elements for tag ${tag}",
		"unknown_tag":     "unrecognized type tag code '${code}'",
		"required":        "property '${name}' is missing or null",
		"duplicate_key":   "duplicate key",
		"truncated":       "input truncated",
		"invalid_culture": "unrecognized culture identifier '${id}'",
	},
	"ja": {
		"parse_error":     "解析エラー",
		"invalid_type":    "${expected} ノードが必要ですが ${actual} でした",
		"no_match":        "タグ ${tag} に一致する要素がありません",
		"ambiguous_match": "タグ ${tag} に一致する要素が ${count} 件あります (最大1件)",
		"unknown_tag":     "未知の型タグコード '${code}'",
		"required":        "プロパティ '${name}' がないか null です",
		"duplicate_key":   "キーが重複しています",
		"truncated":       "打ち切られました",
		"invalid_culture": "未知のカルチャ識別子 '${id}'",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := messages[t.lang]
	if !ok {
		dict = messages["en"]
	}
	tmpl, ok := dict[code]
	if !ok {
		if tmpl, ok = messages["en"][code]; !ok {
			return code
		}
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "${") {
		return tmpl
	}
	out := tmpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "${"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil value restores the default.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
