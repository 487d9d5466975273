package item

import (
	"context"
	"fmt"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// Options configure a single Create call.
type Options struct {
	// Actor attaches the created item to an owner. Nil creates an unowned item.
	Actor Actor
}

// StaticFunc is a per-variant static operation resolved through Factory.Static.
type StaticFunc func(ctx context.Context, rec domain.ItemRecord, opts Options) (Variant, error)

type constructor func(b base) Variant

type variantEntry struct {
	schema    *Schema
	construct constructor
}

// Factory dispatches stored records to their typed variants.
type Factory struct {
	services Services
	bus      event.Bus
	variants map[domain.TypeTag]variantEntry
	statics  map[domain.TypeTag]map[string]StaticFunc
}

// NewFactory builds the dispatch tables. bus may be nil, in which case no
// lifecycle events are published.
func NewFactory(svc Services, bus event.Bus) *Factory {
	if svc.Localizer == nil {
		svc.Localizer = keyLocalizer{}
	}
	if svc.Notifier == nil {
		svc.Notifier = logNotifier{}
	}

	f := &Factory{
		services: svc,
		bus:      bus,
		variants: map[domain.TypeTag]variantEntry{
			domain.TypeAbility:    {abilitySchema, func(b base) Variant { return &Ability{base: b} }},
			domain.TypeArmor:      {armorSchema, func(b base) Variant { return &Armor{base: b} }},
			domain.TypeArtifact:   {artifactSchema, func(b base) Variant { return &Artifact{base: b} }},
			domain.TypeCypher:     {cypherSchema, func(b base) Variant { return &Cypher{base: b} }},
			domain.TypeEquipment:  {equipmentSchema, func(b base) Variant { return &Equipment{base: b} }},
			domain.TypeNPCAttack:  {npcAttackSchema, func(b base) Variant { return &NPCAttack{base: b} }},
			domain.TypeOddity:     {odditySchema, func(b base) Variant { return &Oddity{base: b} }},
			domain.TypePowerShift: {powerShiftSchema, func(b base) Variant { return &PowerShift{base: b} }},
			domain.TypeRecursion:  {recursionSchema, func(b base) Variant { return &Recursion{base: b} }},
			domain.TypeSkill:      {skillSchema, func(b base) Variant { return &Skill{base: b} }},
			domain.TypeWeapon:     {weaponSchema, func(b base) Variant { return &Weapon{base: b} }},
		},
	}

	f.statics = make(map[domain.TypeTag]map[string]StaticFunc, len(f.variants))
	for tag := range f.variants {
		f.statics[tag] = map[string]StaticFunc{
			OpCreate:    f.boundCreate(tag),
			OpConstruct: f.boundConstruct(tag),
			OpFromOwned: f.boundFromOwned(tag),
		}
	}
	f.statics[domain.TypeArtifact][OpAsUnidentified] = func(ctx context.Context, rec domain.ItemRecord, _ Options) (Variant, error) {
		rec, err := bindTag(domain.TypeArtifact, rec)
		if err != nil {
			return nil, err
		}
		art, err := f.AsUnidentified(ctx, rec)
		if err != nil {
			return nil, err
		}
		return art, nil
	}

	return f
}

// Services returns the collaborators the factory hands to its variants.
func (f *Factory) Services() Services {
	return f.services
}

// Supports reports whether tag has a registered variant.
func (f *Factory) Supports(tag domain.TypeTag) bool {
	_, ok := f.variants[tag]
	return ok
}

// Schema returns the payload schema registered for tag.
func (f *Factory) Schema(tag domain.TypeTag) (*Schema, error) {
	entry, ok := f.variants[tag]
	if !ok {
		return nil, &UnsupportedVariantError{Tag: tag}
	}
	return entry.schema, nil
}

// Construct instantiates the variant for rec without applying defaults.
func (f *Factory) Construct(rec domain.ItemRecord) (Variant, error) {
	entry, ok := f.variants[rec.Type]
	if !ok {
		return nil, &UnsupportedVariantError{Tag: rec.Type}
	}
	return entry.construct(newBase(f, rec, entry.schema)), nil
}

// Create constructs and prepares the variant for rec. An unknown type tag
// fails with *UnsupportedVariantError and no instance.
func (f *Factory) Create(ctx context.Context, rec domain.ItemRecord, opts Options) (Variant, error) {
	log := logger.FromContext(ctx)

	v, err := f.Construct(rec)
	if err != nil {
		log.Error(LogMsgUnsupportedVariant, "type", rec.Type, "id", rec.ID)
		f.publish(ctx, event.NewItemUnsupportedEvent(string(rec.Type)))
		return nil, err
	}

	if opts.Actor != nil {
		attachActor(v, opts.Actor)
	}

	if err := v.Prepare(); err != nil {
		return nil, fmt.Errorf(ErrMsgPrepareFailed, rec.Type, rec.Name, err)
	}

	log.Debug(LogMsgItemCreated, "type", v.Type(), "id", v.ID(), "name", v.Name())
	f.publish(ctx, event.NewItemCreatedEvent(v.ID(), string(v.Type()), v.Name(), opts.Actor != nil))
	return v, nil
}

// CreateMany creates every record in order. The first failure aborts the
// whole batch and no partial result is returned.
func (f *Factory) CreateMany(ctx context.Context, recs []domain.ItemRecord, opts Options) ([]Variant, error) {
	out := make([]Variant, 0, len(recs))
	for i, rec := range recs {
		v, err := f.Create(ctx, rec, opts)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgBatchAborted, "index", i, "size", len(recs), "error", err)
			return nil, fmt.Errorf(ErrMsgBatchItemFailed, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FromOwned promotes a bare record held by actor into its variant.
func (f *Factory) FromOwned(ctx context.Context, rec domain.ItemRecord, actor Actor) (Variant, error) {
	return f.Create(ctx, rec, Options{Actor: actor})
}

// Static resolves a static operation of a variant by name.
func (f *Factory) Static(tag domain.TypeTag, op string) (StaticFunc, error) {
	ops, ok := f.statics[tag]
	if !ok {
		return nil, &UnsupportedVariantError{Tag: tag}
	}
	fn, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrUnsupportedOperation, tag, op)
	}
	return fn, nil
}

// AsUnidentified returns an unidentified copy of an artifact. owned may be a
// bare artifact record or an *Artifact; the input is never modified.
func (f *Factory) AsUnidentified(ctx context.Context, owned OwnedItem) (*Artifact, error) {
	if art, ok := owned.(*Artifact); ok {
		return art.AsUnidentified()
	}

	rec := owned.Record()
	if rec.Type != domain.TypeArtifact {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotArtifact, rec.Type)
	}

	v, err := f.FromOwned(ctx, rec, nil)
	if err != nil {
		return nil, err
	}
	return v.(*Artifact).AsUnidentified()
}

// IsSupportedVariant reports whether v is one of the item variants.
func IsSupportedVariant(v any) bool {
	switch v.(type) {
	case *Ability, *Armor, *Artifact, *Cypher, *Equipment, *NPCAttack,
		*Oddity, *PowerShift, *Recursion, *Skill, *Weapon:
		return true
	default:
		return false
	}
}

func (f *Factory) boundCreate(tag domain.TypeTag) StaticFunc {
	return func(ctx context.Context, rec domain.ItemRecord, opts Options) (Variant, error) {
		rec, err := bindTag(tag, rec)
		if err != nil {
			return nil, err
		}
		return f.Create(ctx, rec, opts)
	}
}

func (f *Factory) boundConstruct(tag domain.TypeTag) StaticFunc {
	return func(_ context.Context, rec domain.ItemRecord, opts Options) (Variant, error) {
		rec, err := bindTag(tag, rec)
		if err != nil {
			return nil, err
		}
		v, err := f.Construct(rec)
		if err != nil {
			return nil, err
		}
		if opts.Actor != nil {
			attachActor(v, opts.Actor)
		}
		return v, nil
	}
}

func (f *Factory) boundFromOwned(tag domain.TypeTag) StaticFunc {
	return func(ctx context.Context, rec domain.ItemRecord, opts Options) (Variant, error) {
		rec, err := bindTag(tag, rec)
		if err != nil {
			return nil, err
		}
		return f.FromOwned(ctx, rec, opts.Actor)
	}
}

// bindTag stamps an untagged record with tag and rejects records of another kind.
func bindTag(tag domain.TypeTag, rec domain.ItemRecord) (domain.ItemRecord, error) {
	switch rec.Type {
	case "":
		rec.Type = tag
	case tag:
	default:
		return rec, fmt.Errorf("%w: %s is not %s", domain.ErrWrongVariant, rec.Type, tag)
	}
	return rec, nil
}

func attachActor(v Variant, actor Actor) {
	if b, ok := v.(interface{ attach(Actor) }); ok {
		b.attach(actor)
	}
}

func (b *base) attach(actor Actor) {
	b.actor = actor
}

func (f *Factory) publish(ctx context.Context, evt event.Event) {
	if f.bus == nil {
		return
	}
	if err := f.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
