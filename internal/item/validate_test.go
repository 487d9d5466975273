package item

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
)

func TestValidate(t *testing.T) {
	fx := newFixture()

	tests := []struct {
		name    string
		rec     domain.ItemRecord
		wantErr string
	}{
		{"defaults are valid", domain.ItemRecord{Type: domain.TypeWeapon}, ""},
		{"every default is valid", domain.ItemRecord{Type: domain.TypeArtifact}, ""},
		{"unknown weight class", domain.ItemRecord{Type: domain.TypeWeapon, Data: map[string]any{"weight": "colossal"}}, "Weight"},
		{"negative damage", domain.ItemRecord{Type: domain.TypeWeapon, Data: map[string]any{"damage": -2}}, "Damage"},
		{"unknown depletion die", domain.ItemRecord{Type: domain.TypeArtifact, Data: map[string]any{"depletion": map[string]any{"die": "d7"}}}, "Die"},
		{"unknown cost pool", domain.ItemRecord{Type: domain.TypeAbility, Data: map[string]any{"cost": map[string]any{"pool": "luck"}}}, "Pool"},
		{"skill level out of range", domain.ItemRecord{Type: domain.TypeSkill, Data: map[string]any{"skillLevel": 5}}, "SkillLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := fx.factory.Create(context.Background(), tt.rec, Options{})
			require.NoError(t, err, "normalization keeps unknown values")

			err = Validate(v)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRecord))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EveryKindDefaults(t *testing.T) {
	fx := newFixture()

	for _, tag := range domain.AllTypeTags {
		v, err := fx.factory.Create(context.Background(), domain.ItemRecord{Type: tag}, Options{})
		require.NoError(t, err)
		assert.NoError(t, Validate(v), "type %s", tag)
	}
}
