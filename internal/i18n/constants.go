package i18n

import (
	"errors"
	"time"
)

const (
	// BaseLocale is the canonical source locale; every other locale falls
	// back to it key by key.
	BaseLocale = "en-US"

	// LocaleGlob matches catalog files inside a catalog filesystem.
	LocaleGlob = "locales/*/*.yaml"

	DefaultCacheSize = 512
	DefaultCacheTTL  = 30 * time.Minute
)

// Sentinel errors for catalog loading
var (
	ErrNoCatalogs        = errors.New("no catalog files found")
	ErrMissingBaseLocale = errors.New("base locale is not defined in catalogs")
	ErrMissingLocale     = errors.New("catalog locale is required")
	ErrLocaleMismatch    = errors.New("catalog locale must match its directory")
	ErrDuplicateKey      = errors.New("duplicate message key")
)

// Catalog error messages
const (
	ErrMsgGlobCatalogsFailed = "failed to glob locale catalogs: %w"
	ErrMsgReadCatalogFailed  = "failed to read catalog %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog %s: %w"
	ErrMsgParseLocaleFailed  = "failed to parse locale tag %q: %w"
	ErrMsgSetMessageFailed   = "failed to register message %q: %w"
)
