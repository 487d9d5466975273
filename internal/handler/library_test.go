package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/library"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

const testPack = `{
  "version": "1.0",
  "items": [
    {"_id": "w1", "name": "Broadsword", "type": "weapon", "data": {"weight": "heavy"}},
    {"_id": "c1", "name": "Detonation", "type": "cypher"},
    {"_id": "s1", "name": "Climbing", "type": "skill", "data": {"stat": "speed"}}
  ]
}`

func newTestLibraryHandlers(t *testing.T, loaded bool) *LibraryHandlers {
	t.Helper()
	items := newTestItemHandlers(t)
	schemas := validation.NewSchemaValidator()
	store := library.NewStore()

	if loaded {
		loader := library.NewLoader(item.NewFactory(item.Services{}, nil), schemas)
		pack, err := loader.Parse([]byte(testPack))
		require.NoError(t, err)
		result, err := loader.Build(context.Background(), pack, library.BuildOptions{})
		require.NoError(t, err)
		store.Replace(result.Items, pack.Checksum)
	}

	return NewLibraryHandlers(items, schemas, store, false)
}

func TestHandleImportPack(t *testing.T) {
	h := newTestLibraryHandlers(t, false)

	t.Run("normalizes the pack", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleImportPack(w, jsonRequest(t, http.MethodPost, "/api/v1/packs/import", testPack))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Len(t, w.Header().Get(HeaderPackChecksum), 64)

		pack := decodeBody[library.Pack](t, w)
		require.Len(t, pack.Items, 3)
		assert.Equal(t, "w1", pack.Items[0].ID)
		assert.Equal(t, "heavy", pack.Items[0].Data["weight"])
		assert.Equal(t, "anoetic", pack.Items[1].Data["cypherType"])
	})

	t.Run("schema failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleImportPack(w, jsonRequest(t, http.MethodPost, "/api/v1/packs/import", `{"items":[]}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPackError)
	})

	t.Run("unsupported type aborts", func(t *testing.T) {
		body := `{"version":"1.0","items":[{"type":"weapon"},{"type":"vehicle"}]}`
		w := httptest.NewRecorder()
		h.HandleImportPack(w, jsonRequest(t, http.MethodPost, "/api/v1/packs/import", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnsupportedItemType)
	})

	t.Run("strict rejects values outside the tables", func(t *testing.T) {
		body := `{"version":"1.0","items":[{"type":"weapon","data":{"weight":"colossal"}}]}`
		w := httptest.NewRecorder()
		h.HandleImportPack(w, jsonRequest(t, http.MethodPost, "/api/v1/packs/import?strict=true", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		body := `{"version":"1.0","items":[{"_id":"x","type":"weapon"},{"_id":"x","type":"armor"}]}`
		w := httptest.NewRecorder()
		h.HandleImportPack(w, jsonRequest(t, http.MethodPost, "/api/v1/packs/import", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgDuplicateIDError)
	})
}

func TestHandleListLibrary(t *testing.T) {
	t.Run("not loaded", func(t *testing.T) {
		h := newTestLibraryHandlers(t, false)
		w := httptest.NewRecorder()
		h.HandleListLibrary(w, httptest.NewRequest(http.MethodGet, "/api/v1/library", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	h := newTestLibraryHandlers(t, true)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCount  int
	}{
		{"all", "/api/v1/library", http.StatusOK, 3},
		{"by type", "/api/v1/library?type=skill", http.StatusOK, 1},
		{"type not in library", "/api/v1/library?type=armor", http.StatusOK, 0},
		{"unknown type", "/api/v1/library?type=vehicle", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleListLibrary(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeBody[struct {
				Data []domain.ItemRecord `json:"data"`
			}](t, w)
			assert.Len(t, resp.Data, tt.wantCount)
		})
	}
}

func TestHandleGetLibraryItem(t *testing.T) {
	h := newTestLibraryHandlers(t, true)

	t.Run("found with projections", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/library/w1", nil), map[string]string{"id": "w1"})
		w := httptest.NewRecorder()
		h.HandleGetLibraryItem(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeBody[itemResponse](t, w)
		assert.Equal(t, "Broadsword", resp.Data.Name)
		heavy := resp.Data.Projections["weightClasses"][2]
		assert.Equal(t, "heavy", heavy.ID)
		assert.True(t, heavy.Checked)
	})

	t.Run("not found", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/library/nope", nil), map[string]string{"id": "nope"})
		w := httptest.NewRecorder()
		h.HandleGetLibraryItem(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "nope")
	})
}

func TestHandleLibrarySummary(t *testing.T) {
	h := newTestLibraryHandlers(t, true)

	w := httptest.NewRecorder()
	h.HandleLibrarySummary(w, httptest.NewRequest(http.MethodGet, "/api/v1/library/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[LibrarySummary](t, w)
	assert.Len(t, resp.Checksum, 64)
	assert.Equal(t, []library.TypeCount{
		{Type: domain.TypeCypher, Count: 1},
		{Type: domain.TypeSkill, Count: 1},
		{Type: domain.TypeWeapon, Count: 1},
	}, resp.Counts)
}
