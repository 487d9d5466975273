package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/library"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

// LibrarySummary describes the loaded compendium
type LibrarySummary struct {
	Checksum string              `json:"checksum"`
	Counts   []library.TypeCount `json:"counts"`
}

// LibraryHandlers serves pack import and the compendium loaded at startup
type LibraryHandlers struct {
	items   *ItemHandlers
	schemas validation.SchemaValidator
	store   *library.Store
	strict  bool
}

// NewLibraryHandlers creates the library handlers. strict is the default
// import mode when the request does not say.
func NewLibraryHandlers(items *ItemHandlers, schemas validation.SchemaValidator, store *library.Store, strict bool) *LibraryHandlers {
	return &LibraryHandlers{items: items, schemas: schemas, store: store, strict: strict}
}

// HandleImportPack validates and normalizes a whole pack and returns it in
// export form. Nothing is stored.
// @Summary Import item pack
// @Tags library
// @Accept json
// @Produce json
// @Param strict query bool false "Reject values outside the rule tables"
// @Success 200 {object} library.Pack
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/packs/import [post]
func (h *LibraryHandlers) HandleImportPack(w http.ResponseWriter, r *http.Request) {
	strict, ok := GetBoolQueryParam(r, w, QueryParamStrict, h.strict)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}

	loader := library.NewLoader(h.items.factory(w, r, nil), h.schemas)
	pack, err := loader.Parse(body)
	if err != nil {
		respondServiceError(w, r, ErrMsgImportPackFailed, err)
		return
	}

	result, err := loader.Build(r.Context(), pack, library.BuildOptions{Strict: strict})
	if err != nil {
		respondServiceError(w, r, ErrMsgImportPackFailed, err)
		return
	}

	var buf bytes.Buffer
	if err := loader.Export(r.Context(), &buf, result.Items); err != nil {
		respondServiceError(w, r, ErrMsgImportPackFailed, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderPackChecksum, pack.Checksum)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleListLibrary lists the compendium, optionally filtered by type
// @Summary List library items
// @Tags library
// @Produce json
// @Param type query string false "Item type tag"
// @Success 200 {object} DataResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/library [get]
func (h *LibraryHandlers) HandleListLibrary(w http.ResponseWriter, r *http.Request) {
	if err := h.store.CheckHealth(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgLibraryUnavailable, err)
		return
	}

	tag := GetOptionalQueryParam(r, QueryParamType, "")
	if tag != "" && !isKnownTag(tag) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownItemType, tag))
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: h.store.List(domain.TypeTag(tag))})
}

// HandleGetLibraryItem returns one compendium item localized for the request
// @Summary Get library item
// @Tags library
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/library/{id} [get]
func (h *LibraryHandlers) HandleGetLibraryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.store.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgLibraryItemNotFound, id))
		return
	}

	v, err := h.items.factory(w, r, nil).Create(r.Context(), rec, item.Options{})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: NewItemView(v)})
}

// HandleLibrarySummary reports the per-type counts of the compendium
// @Summary Library summary
// @Tags library
// @Produce json
// @Success 200 {object} LibrarySummary
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/library/summary [get]
func (h *LibraryHandlers) HandleLibrarySummary(w http.ResponseWriter, r *http.Request) {
	if err := h.store.CheckHealth(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgLibraryUnavailable, err)
		return
	}

	respondJSON(w, http.StatusOK, LibrarySummary{
		Checksum: h.store.Checksum(),
		Counts:   h.store.Counts(),
	})
}

func isKnownTag(tag string) bool {
	for _, known := range domain.AllTypeTags {
		if string(known) == tag {
			return true
		}
	}
	return false
}
