// Package i18n loads the item message catalogs and resolves localization
// keys for one locale at a time.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*/*.yaml
var embeddedLocales embed.FS

// Options tunes the resolved-string cache shared by every localizer of a
// bundle.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultOptions returns the cache settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		CacheSize: DefaultCacheSize,
		CacheTTL:  DefaultCacheTTL,
	}
}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale. It is safe for concurrent use.
type Bundle struct {
	builder *catalog.Builder
	keys    map[language.Tag]map[string]struct{}
	tags    []language.Tag
	matcher language.Matcher
	cache   *expirable.LRU[string, string]
}

// LoadEmbedded loads the catalogs shipped with this package.
func LoadEmbedded(opts Options) (*Bundle, error) {
	return LoadFromFS(embeddedLocales, opts)
}

// LoadFromFS loads catalogs from locales/<tag>/*.yaml in fsys. Keys missing
// from a locale fall back to the base locale.
func LoadFromFS(fsys fs.FS, opts Options) (*Bundle, error) {
	paths, err := fs.Glob(fsys, LocaleGlob)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGlobCatalogsFailed, err)
	}
	if len(paths) == 0 {
		return nil, ErrNoCatalogs
	}
	sort.Strings(paths)

	byLocale := make(map[string]map[string]string)
	for _, path := range paths {
		file, err := readCatalog(fsys, path)
		if err != nil {
			return nil, err
		}
		messages, ok := byLocale[file.Locale]
		if !ok {
			messages = make(map[string]string, len(file.Messages))
			byLocale[file.Locale] = messages
		}
		for key, value := range file.Messages {
			if _, dup := messages[key]; dup {
				return nil, fmt.Errorf("%w: %q in locale %s", ErrDuplicateKey, key, file.Locale)
			}
			messages[key] = value
		}
	}

	base, ok := byLocale[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBaseLocale, BaseLocale)
	}

	baseTag := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(baseTag))

	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	// The base locale leads so the matcher falls back to it.
	tags := []language.Tag{baseTag}
	keys := make(map[language.Tag]map[string]struct{}, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseLocaleFailed, locale, err)
		}
		if tag != baseTag {
			tags = append(tags, tag)
		}
		known := make(map[string]struct{}, len(base))
		for _, messages := range []map[string]string{base, byLocale[locale]} {
			for key, value := range messages {
				if err := builder.SetString(tag, key, value); err != nil {
					return nil, fmt.Errorf(ErrMsgSetMessageFailed, key, err)
				}
				known[key] = struct{}{}
			}
		}
		keys[tag] = known
	}

	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	return &Bundle{
		builder: builder,
		keys:    keys,
		tags:    tags,
		matcher: language.NewMatcher(tags),
		cache:   expirable.NewLRU[string, string](opts.CacheSize, nil, opts.CacheTTL),
	}, nil
}

func readCatalog(fsys fs.FS, path string) (catalogFile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return catalogFile{}, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return catalogFile{}, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
	}

	file.Locale = strings.TrimSpace(file.Locale)
	if file.Locale == "" {
		return catalogFile{}, fmt.Errorf("%w: %s", ErrMissingLocale, path)
	}
	dir := strings.Split(path, "/")
	if len(dir) >= 2 && dir[len(dir)-2] != file.Locale {
		return catalogFile{}, fmt.Errorf("%w: %s declares %q", ErrLocaleMismatch, path, file.Locale)
	}
	return file, nil
}

// Locales returns the loaded locale tags, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, tag := range b.tags {
		out[i] = tag.String()
	}
	return out
}

// Match picks the best loaded locale for an Accept-Language header value or
// a plain locale string. Unparseable input yields the base locale.
func (b *Bundle) Match(accept string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return b.tags[0]
	}
	_, index, _ := b.matcher.Match(desired...)
	return b.tags[index]
}

// Localizer returns a resolver bound to the best match for locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.Match(locale)
	return &Localizer{
		bundle:  b,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

// Has reports whether key is defined for tag, directly or through the base
// locale.
func (b *Bundle) Has(tag language.Tag, key string) bool {
	_, ok := b.keys[tag][key]
	return ok
}

// Purge drops every cached resolution.
func (b *Bundle) Purge() {
	b.cache.Purge()
}
