package library

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadPackFileFailed = "failed to read item pack file: %w"
	ErrMsgParsePackFailed    = "failed to parse item pack: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgEncodePackFailed   = "failed to encode item pack: %w"
	ErrMsgBuildPackFailed    = "failed to build item pack: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgPackNil        = "pack is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexNoType = "%w: item at index %d has empty type"
	ErrFmtItemStrict        = "%w: item at index %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPackLoaded  = "Item pack loaded"
	LogMsgPackBuilt   = "Item pack built"
	LogMsgPackExport  = "Item pack exported"
	LogMsgStoreLoaded = "Item library loaded"
)

// ExportVersion is stamped on packs written by Export.
const ExportVersion = "1.0"
