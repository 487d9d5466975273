package item

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

func TestFactory_CreateEveryKind(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	for _, tag := range domain.AllTypeTags {
		t.Run(string(tag), func(t *testing.T) {
			v, err := fx.factory.Create(ctx, domain.ItemRecord{ID: "id-" + string(tag), Type: tag}, Options{})
			require.NoError(t, err)

			assert.True(t, IsSupportedVariant(v))
			assert.Equal(t, tag, v.Type())
			assert.Equal(t, "id-"+string(tag), v.ID())
			assert.Equal(t, tables.Icon(tag), v.Img())
			assert.NotEmpty(t, v.Name())
			assert.Nil(t, v.Actor())

			payload := v.Payload()
			for _, f := range Schemas()[tag].Fields {
				assert.Contains(t, payload, f.Name)
				assert.NotNil(t, payload[f.Name], "field %s", f.Name)
			}
		})
	}
}

func TestFactory_CreateUnsupported(t *testing.T) {
	fx := newFixture()

	v, err := fx.factory.Create(context.Background(), domain.ItemRecord{Name: "Fireball", Type: "spell"}, Options{})
	require.Error(t, err)
	assert.Nil(t, v)

	var uerr *UnsupportedVariantError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, domain.TypeTag("spell"), uerr.Tag)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedVariant))
	assert.Contains(t, err.Error(), `"spell"`)
}

func TestFactory_CreateKeepsName(t *testing.T) {
	fx := newFixture()

	named, err := fx.factory.Create(context.Background(), domain.ItemRecord{Name: "Verred", Type: domain.TypeWeapon}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Verred", named.Name())

	unnamed, err := fx.factory.Create(context.Background(), domain.ItemRecord{Type: domain.TypeWeapon}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "New Weapon", unnamed.Name())
}

func TestFactory_CreateInvalidPayload(t *testing.T) {
	fx := newFixture()

	rec := domain.ItemRecord{Type: domain.TypeWeapon, Data: map[string]any{"damage": "lots"}}
	_, err := fx.factory.Create(context.Background(), rec, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecord))
}

func TestFactory_CreateMany(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	t.Run("maps in order", func(t *testing.T) {
		recs := []domain.ItemRecord{
			{Type: domain.TypeSkill, Name: "Climbing"},
			{Type: domain.TypeCypher, Name: "Detonation"},
		}
		out, err := fx.factory.CreateMany(ctx, recs, Options{})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.IsType(t, &Skill{}, out[0])
		assert.IsType(t, &Cypher{}, out[1])
	})

	t.Run("aborts on unsupported element", func(t *testing.T) {
		recs := []domain.ItemRecord{
			{Type: domain.TypeSkill},
			{Type: "spell"},
			{Type: domain.TypeWeapon},
		}
		out, err := fx.factory.CreateMany(ctx, recs, Options{})
		require.Error(t, err)
		assert.Nil(t, out)

		var uerr *UnsupportedVariantError
		assert.True(t, errors.As(err, &uerr))
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("empty batch", func(t *testing.T) {
		out, err := fx.factory.CreateMany(ctx, nil, Options{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestFactory_Construct(t *testing.T) {
	fx := newFixture()

	v, err := fx.factory.Construct(domain.ItemRecord{Type: domain.TypeArmor, Data: map[string]any{"armor": 2}})
	require.NoError(t, err)
	assert.Empty(t, v.Img(), "construct applies no defaults")
	assert.Equal(t, map[string]any{"armor": 2}, v.Payload())

	require.NoError(t, v.Prepare())
	assert.Equal(t, 2, v.(*Armor).Data.Armor)
	assert.Equal(t, "light", v.(*Armor).Data.Weight)

	_, err = fx.factory.Construct(domain.ItemRecord{Type: "spell"})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedVariant))
}

func TestFactory_FromOwned(t *testing.T) {
	fx := newFixture()
	actor := &MockActor{}

	v, err := fx.factory.FromOwned(context.Background(), domain.ItemRecord{ID: "s1", Name: "Swimming", Type: domain.TypeSkill}, actor)
	require.NoError(t, err)
	assert.Same(t, actor, v.Actor())
	assert.True(t, v.(*Skill).IsOwned())
}

func TestFactory_Static(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	t.Run("create binds the tag", func(t *testing.T) {
		create, err := fx.factory.Static(domain.TypeWeapon, OpCreate)
		require.NoError(t, err)

		v, err := create(ctx, domain.ItemRecord{Name: "Spear"}, Options{})
		require.NoError(t, err)
		assert.Equal(t, domain.TypeWeapon, v.Type())
	})

	t.Run("create rejects another kind", func(t *testing.T) {
		create, err := fx.factory.Static(domain.TypeWeapon, OpCreate)
		require.NoError(t, err)

		_, err = create(ctx, domain.ItemRecord{Type: domain.TypeSkill}, Options{})
		assert.True(t, errors.Is(err, domain.ErrWrongVariant))
	})

	t.Run("construct attaches actor", func(t *testing.T) {
		construct, err := fx.factory.Static(domain.TypeOddity, OpConstruct)
		require.NoError(t, err)

		actor := &MockActor{}
		v, err := construct(ctx, domain.ItemRecord{}, Options{Actor: actor})
		require.NoError(t, err)
		assert.Same(t, actor, v.Actor())
	})

	t.Run("fromOwned", func(t *testing.T) {
		fromOwned, err := fx.factory.Static(domain.TypeAbility, OpFromOwned)
		require.NoError(t, err)

		actor := &MockActor{}
		v, err := fromOwned(ctx, domain.ItemRecord{Name: "Bash"}, Options{Actor: actor})
		require.NoError(t, err)
		assert.IsType(t, &Ability{}, v)
		assert.Same(t, actor, v.Actor())
	})

	t.Run("artifact asUnidentified", func(t *testing.T) {
		op, err := fx.factory.Static(domain.TypeArtifact, OpAsUnidentified)
		require.NoError(t, err)

		v, err := op(ctx, domain.ItemRecord{ID: "a1", Name: "Sun Jewel", Type: domain.TypeArtifact}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "Unidentified Artifact", v.Name())
	})

	t.Run("artifact asUnidentified binds the tag", func(t *testing.T) {
		op, err := fx.factory.Static(domain.TypeArtifact, OpAsUnidentified)
		require.NoError(t, err)

		v, err := op(ctx, domain.ItemRecord{ID: "a2", Name: "Sun Jewel"}, Options{})
		require.NoError(t, err)
		assert.Equal(t, domain.TypeArtifact, v.Type())
		assert.Equal(t, "a2", v.ID())

		_, err = op(ctx, domain.ItemRecord{Type: domain.TypeCypher}, Options{})
		assert.True(t, errors.Is(err, domain.ErrWrongVariant))
	})

	t.Run("asUnidentified is artifact only", func(t *testing.T) {
		_, err := fx.factory.Static(domain.TypeCypher, OpAsUnidentified)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedOperation))
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := fx.factory.Static("spell", OpCreate)
		var uerr *UnsupportedVariantError
		assert.True(t, errors.As(err, &uerr))
	})
}

func TestIsSupportedVariant(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"weapon", &Weapon{}, true},
		{"recursion", &Recursion{}, true},
		{"bare record", domain.ItemRecord{Type: domain.TypeWeapon}, false},
		{"nil", nil, false},
		{"string", "weapon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedVariant(tt.v))
		})
	}
}

func TestFactory_PublishesEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []event.Type
	record := func(_ context.Context, evt event.Event) error {
		got = append(got, evt.Type)
		return nil
	}
	bus.Subscribe(event.ItemCreated, record)
	bus.Subscribe(event.ItemUnsupported, record)

	f := NewFactory(Services{}, bus)
	ctx := context.Background()

	_, err := f.Create(ctx, domain.ItemRecord{Type: domain.TypeEquipment}, Options{})
	require.NoError(t, err)
	_, err = f.Create(ctx, domain.ItemRecord{Type: "spell"}, Options{})
	require.Error(t, err)

	assert.Equal(t, []event.Type{event.ItemCreated, event.ItemUnsupported}, got)
}

func TestFactory_DefaultServices(t *testing.T) {
	f := NewFactory(Services{}, nil)

	v, err := f.Create(context.Background(), domain.ItemRecord{Type: domain.TypeSkill}, Options{})
	require.NoError(t, err)
	assert.Equal(t, KeyNewSkill, v.Name(), "keys resolve to themselves without a localizer")

	// Without a notifier the soft fail is only logged.
	assert.NoError(t, v.(*Skill).Use(context.Background(), nil))
}

func TestNewRecord(t *testing.T) {
	a := NewRecord(domain.TypeCypher, "Stim")
	b := NewRecord(domain.TypeCypher, "Stim")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, domain.TypeCypher, a.Type)
	assert.NotNil(t, a.Data)
}
