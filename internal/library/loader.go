// Package library reads, checks and writes packs of stored item records,
// the bulk import and export path of the item service.
package library

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

// Sentinel errors for pack loading
var (
	ErrDuplicateID = errors.New("duplicate item id")

	ErrInvalidPack = errors.New("invalid item pack")

	ErrStoreNotLoaded = errors.New("item library not loaded")
)

// Pack is a versioned collection of stored item records.
type Pack struct {
	Version     string              `json:"version"`
	Description string              `json:"description,omitempty"`
	Items       []domain.ItemRecord `json:"items"`

	// Checksum is the SHA-256 of the file the pack was loaded from.
	Checksum string `json:"-"`
}

// BuildOptions control how a pack is turned into variants.
type BuildOptions struct {
	// Strict additionally validates every typed payload against its tables.
	Strict bool
	// Actor owns the built items. Nil builds unowned items.
	Actor item.Actor
}

// BuildResult holds the variants built from a pack, in pack order.
type BuildResult struct {
	Items  []item.Variant
	ByType map[domain.TypeTag]int
}

// Loader handles loading, validating, building and exporting item packs
type Loader interface {
	Load(path string) (*Pack, error)
	Parse(data []byte) (*Pack, error)
	Validate(pack *Pack) error
	Build(ctx context.Context, pack *Pack, opts BuildOptions) (*BuildResult, error)
	Export(ctx context.Context, w io.Writer, variants []item.Variant) error
}

type packLoader struct {
	schemaValidator validation.SchemaValidator
	factory         *item.Factory
}

// NewLoader creates a new Loader building variants through factory
func NewLoader(factory *item.Factory, schemaValidator validation.SchemaValidator) Loader {
	return &packLoader{
		schemaValidator: schemaValidator,
		factory:         factory,
	}
}

// Load reads and parses an item pack file
func (l *packLoader) Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadPackFileFailed, err)
	}

	pack, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info(LogMsgPackLoaded, "path", path, "items", len(pack.Items), "checksum", pack.Checksum)
	return pack, nil
}

// Parse validates data against the pack schema and decodes it
func (l *packLoader) Parse(data []byte) (*Pack, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.ItemPackSchema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPack, err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf(ErrMsgParsePackFailed, err)
	}

	hash := sha256.Sum256(data)
	pack.Checksum = hex.EncodeToString(hash[:])
	return &pack, nil
}

// Validate checks the pack for structural errors the schema cannot express
func (l *packLoader) Validate(pack *Pack) error {
	if pack == nil {
		return fmt.Errorf("%w: %s", ErrInvalidPack, ErrMsgPackNil)
	}

	if len(pack.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPack, ErrMsgNoItemsDefined)
	}

	ids := make(map[string]bool, len(pack.Items))
	for i := range pack.Items {
		rec := &pack.Items[i]

		if rec.Type == "" {
			return fmt.Errorf(ErrFmtItemAtIndexNoType, ErrInvalidPack, i)
		}

		// Records without ids get one at build time.
		if rec.ID == "" {
			continue
		}
		if ids[rec.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, rec.ID)
		}
		ids[rec.ID] = true
	}

	return nil
}

// Build creates every record of the pack through the factory. Any failure,
// including an unsupported type tag, aborts the whole pack.
func (l *packLoader) Build(ctx context.Context, pack *Pack, opts BuildOptions) (*BuildResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(pack); err != nil {
		return nil, err
	}

	records := make([]domain.ItemRecord, len(pack.Items))
	for i, rec := range pack.Items {
		if rec.ID == "" {
			rec.ID = item.NewRecord(rec.Type, rec.Name).ID
		}
		records[i] = rec
	}

	variants, err := l.factory.CreateMany(ctx, records, item.Options{Actor: opts.Actor})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildPackFailed, err)
	}

	result := &BuildResult{
		Items:  variants,
		ByType: make(map[domain.TypeTag]int),
	}
	for i, v := range variants {
		if opts.Strict {
			if err := item.Validate(v); err != nil {
				return nil, fmt.Errorf(ErrFmtItemStrict, ErrInvalidPack, i, err)
			}
		}
		result.ByType[v.Type()]++
	}

	log.Info(LogMsgPackBuilt, "items", len(variants), "strict", opts.Strict)
	return result, nil
}

// Export writes the normalized records of variants as an indented pack
func (l *packLoader) Export(ctx context.Context, w io.Writer, variants []item.Variant) error {
	pack := Pack{
		Version: ExportVersion,
		Items:   make([]domain.ItemRecord, len(variants)),
	}
	for i, v := range variants {
		pack.Items[i] = v.Record()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pack); err != nil {
		return fmt.Errorf(ErrMsgEncodePackFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgPackExport, "items", len(variants))
	return nil
}
