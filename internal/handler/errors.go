package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Item operation error messages
	ErrMsgCreateItemFailed     = "Failed to create item"
	ErrMsgUseItemFailed        = "Failed to use item"
	ErrMsgUnidentifyItemFailed = "Failed to build unidentified item"
	ErrMsgSyncAbilityFailed    = "Failed to synchronize related ability"
	ErrMsgItemNotUsable        = "Item of type '%s' cannot be used"
	ErrMsgSkillRequired        = "Item must be a skill"
	ErrMsgUnknownItemType      = "Unknown item type '%s'"
	ErrMsgEmptyItemBatch       = "At least one item is required"
	ErrMsgImportPackFailed     = "Failed to import item pack"
	ErrMsgReadBodyFailed       = "Failed to read request body"
	ErrMsgLibraryItemNotFound  = "Item '%s' not found in library"
	ErrMsgGetSchemaFailed      = "Failed to retrieve schema"
	ErrMsgLibraryUnavailable   = "Item library unavailable"
)

// Success messages for API responses
const (
	MsgItemsCreated      = "Items created"
	MsgItemCreated       = "Item created"
	MsgItemUsed          = "Item used"
	MsgAbilityInSync     = "Related ability already in sync"
	MsgAbilitySynced     = "Related ability synchronized"
	MsgPackImported      = "Item pack imported"
	MsgUnidentifiedBuilt = "Unidentified artifact built"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode %s request"
	LogMsgRequestDecoded    = "%s request decoded"
	LogMsgMissingQueryParam = "Missing %s query parameter"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgServiceError      = "%s failed"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Query parameters and headers
const (
	QueryParamStrict = "strict"
	QueryParamLocale = "locale"
	QueryParamType   = "type"
	HeaderAcceptLang = "Accept-Language"
	HeaderContentLng = "Content-Language"

	// HeaderPackChecksum carries the SHA-256 of an imported pack body
	HeaderPackChecksum = "X-Pack-Checksum"
)

// JSONSchemaPathFmt maps a public schema name to its embedded path
const JSONSchemaPathFmt = "schemas/%s.schema.json"

// DefaultActorID names the throwaway sheet when the request gives no actor
const DefaultActorID = "sheet"
