package sheet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/item"
)

func strPtr(s string) *string { return &s }

func TestApplyPatch(t *testing.T) {
	rec := domain.ItemRecord{
		ID:   "ab-1",
		Name: "Bash",
		Type: domain.TypeAbility,
		Data: map[string]any{"cost": map[string]any{"pool": "might", "amount": 2}},
	}

	t.Run("dotted path updates nested value", func(t *testing.T) {
		out, err := ApplyPatch(rec, domain.ItemPatch{ID: "ab-1", Data: map[string]any{"cost.pool": "speed"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"pool": "speed", "amount": 2}, out.Data["cost"])
		assert.Equal(t, "might", rec.Data["cost"].(map[string]any)["pool"], "input record is untouched")
	})

	t.Run("name and missing objects", func(t *testing.T) {
		out, err := ApplyPatch(domain.ItemRecord{ID: "x"}, domain.ItemPatch{Name: strPtr("Smash"), Data: map[string]any{"cost.pool": "intellect"}})
		require.NoError(t, err)
		assert.Equal(t, "Smash", out.Name)
		assert.Equal(t, map[string]any{"pool": "intellect"}, out.Data["cost"])
	})

	t.Run("path through scalar fails", func(t *testing.T) {
		_, err := ApplyPatch(rec, domain.ItemPatch{Data: map[string]any{"cost.pool.name": "x"}})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("empty segment fails", func(t *testing.T) {
		_, err := ApplyPatch(rec, domain.ItemPatch{Data: map[string]any{"cost..pool": "x"}})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestSheet_UpdateItem(t *testing.T) {
	ctx := context.Background()
	s := New("pc-1", []domain.ItemRecord{{ID: "ab-1", Name: "Bash", Type: domain.TypeAbility}})

	rec, err := s.UpdateItem(ctx, domain.ItemPatch{ID: "ab-1", Data: map[string]any{"cost.pool": "speed"}}, item.UpdateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "speed", rec.Data["cost"].(map[string]any)["pool"])

	assert.Equal(t, rec, s.Records()[0])
	require.Len(t, s.Transcript().Updates, 1)

	_, err = s.UpdateItem(ctx, domain.ItemPatch{ID: "missing"}, item.UpdateOptions{})
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestSheet_AsItemCollaborators(t *testing.T) {
	ctx := context.Background()
	s := New("pc-1", []domain.ItemRecord{
		{ID: "sk-1", Name: "Light Bladed", Type: domain.TypeSkill, Data: map[string]any{"stat": "speed"}},
	})
	bundle, err := i18n.LoadEmbedded(i18n.DefaultOptions())
	require.NoError(t, err)
	f := item.NewFactory(item.Services{Localizer: bundle.Localizer("en-US"), Notifier: s, Effort: s}, nil)

	v, err := f.Create(ctx, domain.ItemRecord{ID: "w", Type: domain.TypeWeapon, Data: map[string]any{"weight": "light", "weaponType": "bladed"}}, item.Options{Actor: s})
	require.NoError(t, err)
	weapon := v.(*item.Weapon)

	require.NoError(t, weapon.Use(ctx, nil))
	require.NoError(t, weapon.Use(ctx, &item.Interaction{SecondaryButton: true}))

	unowned, err := f.Create(ctx, domain.ItemRecord{Type: domain.TypeSkill}, item.Options{})
	require.NoError(t, err)
	require.NoError(t, unowned.(*item.Skill).Use(ctx, nil))

	tr := s.Transcript()
	assert.Equal(t, []Roll{{ItemID: "sk-1", ItemName: "Light Bladed", Type: domain.TypeSkill, Stat: "speed"}}, tr.Rolls)
	assert.Equal(t, []EffortPrompt{{SkillID: "sk-1", SkillName: "Light Bladed", Stat: "speed"}}, tr.EffortPrompts)
	assert.Len(t, tr.Notifications, 1)
}

func TestSheet_PromptEffortRequiresSkill(t *testing.T) {
	s := New("pc-1", nil)
	err := s.PromptEffort(context.Background(), s, item.EffortRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
