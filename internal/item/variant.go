package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// Variant is a typed item built from a stored record.
type Variant interface {
	OwnedItem

	ID() string
	Name() string
	Img() string
	Type() domain.TypeTag

	// Actor returns the owning actor, or nil when the item is unowned.
	Actor() Actor

	// Prepare normalizes the payload in place and recomputes projections.
	// It is idempotent.
	Prepare() error

	// Payload returns a copy of the canonical payload. Projections are
	// never part of it.
	Payload() map[string]any

	// Projections returns the derived display state (enum choices with the
	// current value marked), keyed by enum field name.
	Projections() map[string][]Choice
}

// Usable is a variant with a use behavior: skills, weapons and abilities.
type Usable interface {
	Variant
	Use(ctx context.Context, ev *Interaction) error
}

var (
	_ Usable = (*Skill)(nil)
	_ Usable = (*Weapon)(nil)
	_ Usable = (*Ability)(nil)
)

// Choice is one enum option with a checked flag for display.
type Choice struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// typedPayload is implemented by the typed payload struct of each variant.
type typedPayload interface {
	toMap() map[string]any
}

// base holds the record fields and collaborators common to every variant.
type base struct {
	id       string
	name     string
	img      string
	tag      domain.TypeTag
	stored   map[string]any
	prepared bool

	actor   Actor
	factory *Factory
	schema  *Schema
}

func newBase(f *Factory, rec domain.ItemRecord, schema *Schema) base {
	return base{
		id:      rec.ID,
		name:    rec.Name,
		img:     rec.Img,
		tag:     rec.Type,
		stored:  domain.CloneData(rec.Data),
		factory: f,
		schema:  schema,
	}
}

func (b *base) ID() string           { return b.id }
func (b *base) Name() string         { return b.name }
func (b *base) Img() string          { return b.img }
func (b *base) Type() domain.TypeTag { return b.tag }
func (b *base) Actor() Actor         { return b.actor }

// IsOwned reports whether the item belongs to an actor.
func (b *base) IsOwned() bool { return b.actor != nil }

func (b *base) localize(key string) string {
	return b.factory.services.Localizer.Localize(key)
}

// prepare fills the record level defaults and normalizes the payload into
// data. Once prepared, typed values win over the stored payload so that
// repeated calls never discard changes made through the typed fields.
func (b *base) prepare(data typedPayload, newNameKey string) error {
	if b.img == "" {
		b.img = tables.Icon(b.tag)
	}
	if b.name == "" {
		b.name = b.localize(newNameKey)
	}

	src := b.stored
	if b.prepared {
		src = mergePayload(b.stored, data.toMap())
	}
	normalized := b.schema.Normalize(src)
	if err := decodePayload(b.tag, normalized, data); err != nil {
		return err
	}
	b.stored = normalized
	b.prepared = true
	return nil
}

func (b *base) payload(data typedPayload) map[string]any {
	if !b.prepared {
		return domain.CloneData(b.stored)
	}
	return mergePayload(b.stored, data.toMap())
}

func (b *base) record(data typedPayload) domain.ItemRecord {
	return domain.ItemRecord{
		ID:   b.id,
		Name: b.name,
		Img:  b.img,
		Type: b.tag,
		Data: b.payload(data),
	}
}

// cloneBase copies the record state; collaborators are shared.
func (b *base) cloneBase() base {
	out := *b
	out.stored = domain.CloneData(b.stored)
	return out
}

// choices builds the checked-flag projection of an enum table.
func choices(t tables.Table, selected string) []Choice {
	out := make([]Choice, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = Choice{ID: e.ID, Label: e.Label, Checked: e.ID == selected}
	}
	return out
}

// NewRecord returns an empty record of the given kind with a fresh id.
// The payload is filled in when the record goes through Create.
func NewRecord(tag domain.TypeTag, name string) domain.ItemRecord {
	return domain.ItemRecord{
		ID:   uuid.NewString(),
		Name: name,
		Type: tag,
		Data: map[string]any{},
	}
}
