package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

// TablesResponse holds every rule table localized for the request
type TablesResponse struct {
	Locale string                    `json:"locale"`
	Tables map[string][]item.Choice  `json:"tables"`
	Icons  map[domain.TypeTag]string `json:"icons"`
}

// FieldView describes one payload field of a schema
type FieldView struct {
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Default any         `json:"default,omitempty"`
	Enum    string      `json:"enum,omitempty"`
	Fields  []FieldView `json:"fields,omitempty"`
}

// SchemaView describes the payload schema of one item type
type SchemaView struct {
	Type     domain.TypeTag `json:"type"`
	Defaults map[string]any `json:"defaults"`
	Fields   []FieldView    `json:"fields"`
}

// TableHandlers serves the rule tables and payload schemas
type TableHandlers struct {
	items   *ItemHandlers
	schemas validation.SchemaValidator
}

// NewTableHandlers creates the table handlers
func NewTableHandlers(items *ItemHandlers, schemas validation.SchemaValidator) *TableHandlers {
	return &TableHandlers{items: items, schemas: schemas}
}

// HandleGetTables returns the rule tables with localized labels
// @Summary Get rule tables
// @Tags tables
// @Produce json
// @Param locale query string false "Locale"
// @Success 200 {object} TablesResponse
// @Router /api/v1/tables [get]
func (h *TableHandlers) HandleGetTables(w http.ResponseWriter, r *http.Request) {
	loc := h.items.localizer(w, r)

	all := tables.All()
	out := make(map[string][]item.Choice, len(all))
	for name, t := range all {
		cs := make([]item.Choice, len(t.Entries))
		for i, e := range t.Entries {
			cs[i] = item.Choice{ID: e.ID, Label: loc.Localize(e.Label), Checked: i == 0}
		}
		out[name] = cs
	}

	respondJSON(w, http.StatusOK, TablesResponse{
		Locale: loc.Locale(),
		Tables: out,
		Icons:  tables.Icons,
	})
}

// HandleGetSchema describes the payload of one item type
// @Summary Get item payload schema
// @Tags tables
// @Produce json
// @Param type path string true "Item type tag"
// @Success 200 {object} SchemaView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/schemas/{type} [get]
func (h *TableHandlers) HandleGetSchema(w http.ResponseWriter, r *http.Request) {
	tag := domain.TypeTag(chi.URLParam(r, "type"))

	schema, err := h.items.factory(w, r, nil).Schema(tag)
	if err != nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownItemType, tag))
		return
	}

	respondJSON(w, http.StatusOK, SchemaView{
		Type:     schema.Tag,
		Defaults: schema.Defaults(),
		Fields:   fieldViews(schema.Fields),
	})
}

// HandleGetJSONSchema serves one of the embedded JSON schemas used to
// validate packs
// @Summary Get JSON schema
// @Tags tables
// @Produce json
// @Param name path string true "Schema name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/json-schemas/{name} [get]
func (h *TableHandlers) HandleGetJSONSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	raw, err := h.schemas.Raw(fmt.Sprintf(JSONSchemaPathFmt, name))
	if err != nil {
		respondError(w, http.StatusNotFound, ErrMsgGetSchemaFailed)
		return
	}

	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func fieldViews(fields []item.Field) []FieldView {
	out := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		fv := FieldView{Name: f.Name, Kind: f.Kind.String(), Default: f.Default}
		if f.Enum != nil {
			fv.Enum = f.Enum.Name
			fv.Default = f.Enum.First()
		}
		if len(f.Fields) > 0 {
			fv.Fields = fieldViews(f.Fields)
		}
		out = append(out, fv)
	}
	return out
}
