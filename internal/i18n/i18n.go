// Package i18n translates interface labels into the languages orgmine
// supports and formats numbers for them.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"

	"github.com/five82/orgmine/internal/prefs"
)

var builder = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range indonesian {
		_ = b.SetString(language.Indonesian, key, msg)
	}
	return b
}

// Tag maps a preference language to its BCP 47 tag.
func Tag(lang prefs.Language) language.Tag {
	if lang == prefs.Indonesian {
		return language.Indonesian
	}
	return language.English
}

// Translator renders catalogue messages in one language.
type Translator struct {
	lang    prefs.Language
	printer *message.Printer
}

// New returns a Translator for lang. Unsupported languages use English.
func New(lang prefs.Language) Translator {
	if !lang.Valid() {
		lang = prefs.English
	}
	return Translator{lang: lang, printer: message.NewPrinter(Tag(lang), message.Catalog(builder))}
}

// Language returns the translator's language.
func (t Translator) Language() prefs.Language { return t.lang }

// Tag returns the translator's language tag.
func (t Translator) Tag() language.Tag { return Tag(t.lang) }

// T returns the message for key formatted with args. Keys missing from the
// catalogue are returned unchanged.
func (t Translator) T(key string, args ...any) string {
	if t.printer == nil {
		return New(prefs.English).T(key, args...)
	}
	if !Has(key) {
		return key
	}
	return t.printer.Sprintf(key, args...)
}

// Int formats n with the language's digit grouping.
func (t Translator) Int(n int) string {
	if t.printer == nil {
		return New(prefs.English).Int(n)
	}
	return t.printer.Sprintf("%d", n)
}

// Float formats f with the language's separators and the given precision.
func (t Translator) Float(f float64, precision int) string {
	if t.printer == nil {
		return New(prefs.English).Float(f, precision)
	}
	return t.printer.Sprint(number.Decimal(f, number.Scale(precision)))
}

// Has reports whether key is in the catalogue.
func Has(key string) bool {
	_, ok := english[key]
	return ok
}

// Keys returns the catalogue keys for lang.
func Keys(lang prefs.Language) []string {
	src := english
	if lang == prefs.Indonesian {
		src = indonesian
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	return keys
}
