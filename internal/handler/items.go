package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/sheet"
)

// ItemView is a normalized record with its display projections
type ItemView struct {
	domain.ItemRecord
	Projections map[string][]item.Choice `json:"projections,omitempty"`
}

// NewItemView renders v for a response
func NewItemView(v item.Variant) ItemView {
	return ItemView{
		ItemRecord:  v.Record(),
		Projections: v.Projections(),
	}
}

// NewItemRequest asks for a fresh record of one type
type NewItemRequest struct {
	Type string `json:"type" validate:"required,typetag"`
	Name string `json:"name" validate:"max=100,excludesall=\x00\n\r\t"`
}

// UseItemRequest uses an item owned by a throwaway sheet
type UseItemRequest struct {
	ActorID     string              `json:"actorId" validate:"max=100"`
	Item        domain.ItemRecord   `json:"item"`
	Sheet       []domain.ItemRecord `json:"sheet" validate:"max=500"`
	Interaction *item.Interaction   `json:"interaction"`
	// Unowned uses the item without an owner, which only notifies.
	Unowned bool `json:"unowned"`
}

// UseItemResponse reports what the use asked of the sheet
type UseItemResponse struct {
	Item       ItemView            `json:"item"`
	Transcript sheet.Transcript    `json:"transcript"`
	Sheet      []domain.ItemRecord `json:"sheet"`
}

// SyncAbilityRequest pushes a skill's name and stat onto its related ability
type SyncAbilityRequest struct {
	ActorID string              `json:"actorId" validate:"max=100"`
	Skill   domain.ItemRecord   `json:"skill"`
	Sheet   []domain.ItemRecord `json:"sheet" validate:"max=500"`
}

// SyncAbilityResponse holds the updated ability, or none when already in sync
type SyncAbilityResponse struct {
	Message string              `json:"message"`
	Synced  bool                `json:"synced"`
	Ability *ItemView           `json:"ability,omitempty"`
	Sheet   []domain.ItemRecord `json:"sheet"`
}

// ItemHandlers serves the item endpoints. Each request gets its own factory
// bound to the request locale and, for behaviors, to a throwaway sheet.
type ItemHandlers struct {
	bundle        *i18n.Bundle
	bus           event.Bus
	defaultLocale string
}

// NewItemHandlers creates the item handlers. bus may be nil.
func NewItemHandlers(bundle *i18n.Bundle, bus event.Bus, defaultLocale string) *ItemHandlers {
	return &ItemHandlers{bundle: bundle, bus: bus, defaultLocale: defaultLocale}
}

// localizer resolves the request locale: the locale query parameter, then
// Accept-Language, then the configured default.
func (h *ItemHandlers) localizer(w http.ResponseWriter, r *http.Request) *i18n.Localizer {
	locale := GetOptionalQueryParam(r, QueryParamLocale, r.Header.Get(HeaderAcceptLang))
	if locale == "" {
		locale = h.defaultLocale
	}
	loc := h.bundle.Localizer(locale)
	w.Header().Set(HeaderContentLng, loc.Locale())
	return loc
}

func (h *ItemHandlers) factory(w http.ResponseWriter, r *http.Request, s *sheet.Sheet) *item.Factory {
	svc := item.Services{Localizer: h.localizer(w, r)}
	if s != nil {
		svc.Notifier = s
		svc.Effort = s
	}
	return item.NewFactory(svc, h.bus)
}

// HandleCreateItems normalizes one record or an array of records
// @Summary Create items
// @Description Dispatches each record to its variant and returns the normalized records. An unsupported type aborts the whole batch.
// @Tags items
// @Accept json
// @Produce json
// @Param strict query bool false "Reject values outside the rule tables"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [post]
func (h *ItemHandlers) HandleCreateItems(w http.ResponseWriter, r *http.Request) {
	strict, ok := GetBoolQueryParam(r, w, QueryParamStrict, false)
	if !ok {
		return
	}

	records, single, err := DecodeRecords(r, w, "Create items")
	if err != nil {
		return
	}

	variants, err := h.factory(w, r, nil).CreateMany(r.Context(), records, item.Options{})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateItemFailed, err)
		return
	}

	views := make([]ItemView, len(variants))
	for i, v := range variants {
		if strict {
			if err := item.Validate(v); err != nil {
				respondServiceError(w, r, ErrMsgCreateItemFailed, err)
				return
			}
		}
		views[i] = NewItemView(v)
	}

	if single {
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemCreated, Data: views[0]})
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemsCreated, Data: views})
}

// HandleNewItem builds a fresh record with a new id and every default
// @Summary New item
// @Tags items
// @Accept json
// @Produce json
// @Param request body NewItemRequest true "Item type and optional name"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/new [post]
func (h *ItemHandlers) HandleNewItem(w http.ResponseWriter, r *http.Request) {
	var req NewItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "New item"); err != nil {
		return
	}

	rec := item.NewRecord(domain.TypeTag(req.Type), req.Name)
	v, err := h.factory(w, r, nil).Create(r.Context(), rec, item.Options{})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateItemFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemCreated, Data: NewItemView(v)})
}

// HandleUnidentified returns the unidentified view of an artifact
// @Summary Unidentified artifact
// @Description Masks name, level and effect and drops the depletion. The id is kept.
// @Tags items
// @Accept json
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/unidentified [post]
func (h *ItemHandlers) HandleUnidentified(w http.ResponseWriter, r *http.Request) {
	var rec domain.ItemRecord
	if err := DecodeAndValidateRequest(r, w, &rec, "Unidentified artifact"); err != nil {
		return
	}

	art, err := h.factory(w, r, nil).AsUnidentified(r.Context(), rec)
	if err != nil {
		respondServiceError(w, r, ErrMsgUnidentifyItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgUnidentifiedBuilt, Data: NewItemView(art)})
}

// HandleUseItem uses a skill, weapon or ability owned by the request's sheet
// and reports the rolls, effort prompts and notifications it produced
// @Summary Use item
// @Tags items
// @Accept json
// @Produce json
// @Param request body UseItemRequest true "Item, owning sheet and gesture"
// @Success 200 {object} UseItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/use [post]
func (h *ItemHandlers) HandleUseItem(w http.ResponseWriter, r *http.Request) {
	var req UseItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
		return
	}

	s := sheet.New(actorID(req.ActorID), req.Sheet)
	opts := item.Options{Actor: s}
	if req.Unowned {
		opts.Actor = nil
	}

	v, err := h.factory(w, r, s).Create(r.Context(), req.Item, opts)
	if err != nil {
		respondServiceError(w, r, ErrMsgUseItemFailed, err)
		return
	}

	usable, ok := v.(item.Usable)
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgItemNotUsable, v.Type()))
		return
	}

	if err := usable.Use(r.Context(), req.Interaction); err != nil {
		respondServiceError(w, r, ErrMsgUseItemFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgItemUsed, "type", v.Type(), "name", v.Name())
	respondJSON(w, http.StatusOK, UseItemResponse{
		Item:       NewItemView(v),
		Transcript: s.Transcript(),
		Sheet:      s.Records(),
	})
}

// HandleSyncAbility pushes a skill's name and stat onto its related ability
// @Summary Sync related ability
// @Tags items
// @Accept json
// @Produce json
// @Param request body SyncAbilityRequest true "Skill and owning sheet"
// @Success 200 {object} SyncAbilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/sync-ability [post]
func (h *ItemHandlers) HandleSyncAbility(w http.ResponseWriter, r *http.Request) {
	var req SyncAbilityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sync ability"); err != nil {
		return
	}

	s := sheet.New(actorID(req.ActorID), req.Sheet)
	v, err := h.factory(w, r, s).Create(r.Context(), req.Skill, item.Options{Actor: s})
	if err != nil {
		respondServiceError(w, r, ErrMsgSyncAbilityFailed, err)
		return
	}

	skill, ok := v.(*item.Skill)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgSkillRequired)
		return
	}

	ability, err := skill.SyncRelatedAbility(r.Context(), item.UpdateOptions{})
	if err != nil {
		respondServiceError(w, r, ErrMsgSyncAbilityFailed, err)
		return
	}

	resp := SyncAbilityResponse{Message: MsgAbilityInSync, Sheet: s.Records()}
	if ability != nil {
		view := NewItemView(ability)
		resp.Message = MsgAbilitySynced
		resp.Synced = true
		resp.Ability = &view
	}
	respondJSON(w, http.StatusOK, resp)
}

func actorID(id string) string {
	if id == "" {
		return DefaultActorID
	}
	return id
}
