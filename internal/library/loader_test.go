package library

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

const samplePack = `{
  "version": "1.0",
  "description": "starter gear",
  "items": [
    {"_id": "w1", "name": "Broadsword", "type": "weapon", "data": {"weight": "heavy", "damage": 6}},
    {"name": "Detonation", "type": "cypher", "data": {"level": 3}},
    {"_id": "a1", "type": "artifact", "data": null}
  ]
}`

func newTestLoader() Loader {
	return NewLoader(item.NewFactory(item.Services{}, nil), validation.NewSchemaValidator())
}

func TestLoader_Parse(t *testing.T) {
	l := newTestLoader()

	t.Run("valid pack", func(t *testing.T) {
		pack, err := l.Parse([]byte(samplePack))
		require.NoError(t, err)
		assert.Equal(t, "1.0", pack.Version)
		assert.Len(t, pack.Items, 3)
		assert.Len(t, pack.Checksum, 64)
	})

	t.Run("missing version fails schema", func(t *testing.T) {
		_, err := l.Parse([]byte(`{"items": []}`))
		assert.True(t, errors.Is(err, ErrInvalidPack))
	})

	t.Run("record without type fails schema", func(t *testing.T) {
		_, err := l.Parse([]byte(`{"version": "1.0", "items": [{"name": "x"}]}`))
		assert.True(t, errors.Is(err, ErrInvalidPack))
	})

	t.Run("same bytes same checksum", func(t *testing.T) {
		a, err := l.Parse([]byte(samplePack))
		require.NoError(t, err)
		b, err := l.Parse([]byte(samplePack))
		require.NoError(t, err)
		assert.Equal(t, a.Checksum, b.Checksum)
	})
}

func TestLoader_Validate(t *testing.T) {
	l := newTestLoader()

	tests := []struct {
		name    string
		pack    *Pack
		wantErr error
	}{
		{"nil pack", nil, ErrInvalidPack},
		{"no items", &Pack{Version: "1.0"}, ErrInvalidPack},
		{"empty type", &Pack{Version: "1.0", Items: []domain.ItemRecord{{ID: "x"}}}, ErrInvalidPack},
		{"duplicate id", &Pack{Version: "1.0", Items: []domain.ItemRecord{
			{ID: "x", Type: domain.TypeOddity},
			{ID: "x", Type: domain.TypeArmor},
		}}, ErrDuplicateID},
		{"missing ids are not duplicates", &Pack{Version: "1.0", Items: []domain.ItemRecord{
			{Type: domain.TypeOddity},
			{Type: domain.TypeOddity},
		}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Validate(tt.pack)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoader_Build(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader()

	t.Run("normalizes every record in order", func(t *testing.T) {
		pack, err := l.Parse([]byte(samplePack))
		require.NoError(t, err)

		result, err := l.Build(ctx, pack, BuildOptions{Strict: true})
		require.NoError(t, err)
		require.Len(t, result.Items, 3)

		weapon := result.Items[0].(*item.Weapon)
		assert.Equal(t, "w1", weapon.ID())
		assert.Equal(t, 6, weapon.Data.Damage)
		assert.Equal(t, "heavy", weapon.Data.Weight)

		assert.NotEmpty(t, result.Items[1].ID(), "records without ids get one")
		assert.Equal(t, "a1", result.Items[2].ID())
		assert.Equal(t, map[domain.TypeTag]int{domain.TypeWeapon: 1, domain.TypeCypher: 1, domain.TypeArtifact: 1}, result.ByType)
	})

	t.Run("unsupported type aborts the pack", func(t *testing.T) {
		pack := &Pack{Version: "1.0", Items: []domain.ItemRecord{
			{ID: "ok", Type: domain.TypeOddity},
			{ID: "bad", Type: "spell"},
		}}

		result, err := l.Build(ctx, pack, BuildOptions{})
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedVariant))
	})

	t.Run("strict rejects values outside the tables", func(t *testing.T) {
		pack := &Pack{Version: "1.0", Items: []domain.ItemRecord{
			{ID: "w", Type: domain.TypeWeapon, Data: map[string]any{"weight": "colossal"}},
		}}

		_, err := l.Build(ctx, pack, BuildOptions{})
		require.NoError(t, err, "lenient build keeps unknown values")

		_, err = l.Build(ctx, pack, BuildOptions{Strict: true})
		assert.True(t, errors.Is(err, ErrInvalidPack))
		assert.True(t, errors.Is(err, domain.ErrInvalidRecord))
	})
}

func TestLoader_LoadAndExport(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader()

	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, []byte(samplePack), 0o600))

	pack, err := l.Load(path)
	require.NoError(t, err)

	result, err := l.Build(ctx, pack, BuildOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.Export(ctx, &buf, result.Items))

	exported, err := l.Parse(buf.Bytes())
	require.NoError(t, err, "exported packs validate against the pack schema")
	require.Len(t, exported.Items, 3)
	assert.Equal(t, ExportVersion, exported.Version)
	assert.Equal(t, "w1", exported.Items[0].ID)
	assert.Equal(t, "immediate", exported.Items[0].Data["range"], "defaults are written out")
	assert.Equal(t, "heavy", exported.Items[0].Data["weight"])
}

func TestLoader_LoadMissingFile(t *testing.T) {
	_, err := newTestLoader().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
