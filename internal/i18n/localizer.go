package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer resolves keys for a single locale. Unknown keys resolve to the
// key itself. A Localizer is meant for one request or session; share the
// Bundle instead of the Localizer across goroutines.
type Localizer struct {
	bundle  *Bundle
	tag     language.Tag
	printer *message.Printer
}

// Locale returns the tag this localizer resolves for.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Localize returns the message stored under key.
func (l *Localizer) Localize(key string) string {
	cacheKey := l.tag.String() + "\x00" + key
	if value, ok := l.bundle.cache.Get(cacheKey); ok {
		return value
	}

	value := key
	if l.bundle.Has(l.tag, key) {
		value = l.printer.Sprintf(message.Key(key, key))
	}
	l.bundle.cache.Add(cacheKey, value)
	return value
}

// Format resolves key and applies args to it. An unknown key is returned
// as is, without args. Results are not cached.
func (l *Localizer) Format(key string, args ...any) string {
	if !l.bundle.Has(l.tag, key) {
		return key
	}
	return l.printer.Sprintf(message.Key(key, key), args...)
}
