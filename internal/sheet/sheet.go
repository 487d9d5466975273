// Package sheet is an in-memory character sheet. It plays the host side of
// the item collaborators (owner, roll engine, notifications, effort prompt)
// and records every call so one request can report what a use did.
package sheet

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// Roll is one roll request received from an item.
type Roll struct {
	ItemID   string         `json:"itemId"`
	ItemName string         `json:"itemName"`
	Type     domain.TypeTag `json:"type"`
	Stat     string         `json:"stat"`
}

// EffortPrompt is one effort interaction opened by a skill.
type EffortPrompt struct {
	SkillID   string `json:"skillId"`
	SkillName string `json:"skillName"`
	Stat      string `json:"stat"`
}

// Transcript is everything the sheet was asked to do, in call order per kind.
type Transcript struct {
	Rolls         []Roll              `json:"rolls"`
	EffortPrompts []EffortPrompt      `json:"effortPrompts"`
	Notifications []string            `json:"notifications"`
	Updates       []domain.ItemRecord `json:"updates"`
}

// Sheet owns a list of stored records. It is safe for concurrent use.
type Sheet struct {
	mu    sync.Mutex
	id    string
	items []domain.ItemRecord
	log   Transcript
}

var (
	_ item.Actor          = (*Sheet)(nil)
	_ item.Notifier       = (*Sheet)(nil)
	_ item.EffortPrompter = (*Sheet)(nil)
)

// New creates a sheet holding copies of items
func New(id string, items []domain.ItemRecord) *Sheet {
	owned := make([]domain.ItemRecord, len(items))
	for i, rec := range items {
		owned[i] = rec.Clone()
	}
	return &Sheet{id: id, items: owned}
}

func (s *Sheet) ID() string { return s.id }

// Items returns the owned records in sheet order
func (s *Sheet) Items() []item.OwnedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]item.OwnedItem, len(s.items))
	for i, rec := range s.items {
		out[i] = rec
	}
	return out
}

// Records returns a copy of the current records
func (s *Sheet) Records() []domain.ItemRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ItemRecord, len(s.items))
	for i, rec := range s.items {
		out[i] = rec.Clone()
	}
	return out
}

// RequestRoll records the roll; resolving dice is left to the client.
func (s *Sheet) RequestRoll(ctx context.Context, r item.Rollable) error {
	s.mu.Lock()
	s.log.Rolls = append(s.log.Rolls, Roll{
		ItemID:   r.ID(),
		ItemName: r.Name(),
		Type:     r.Type(),
		Stat:     r.RollStat(),
	})
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgRollRequested, "sheet", s.id, "item", r.Name(), "stat", r.RollStat())
	return nil
}

// UpdateItem applies patch to the owned record with the same id
func (s *Sheet) UpdateItem(ctx context.Context, patch domain.ItemPatch, opts item.UpdateOptions) (domain.ItemRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := FindItem(s.items, patch.ID)
	if idx < 0 {
		return domain.ItemRecord{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, patch.ID)
	}

	rec, err := ApplyPatch(s.items[idx], patch)
	if err != nil {
		return domain.ItemRecord{}, err
	}
	s.items[idx] = rec
	s.log.Updates = append(s.log.Updates, rec.Clone())

	logger.FromContext(ctx).Debug(LogMsgItemUpdated, "sheet", s.id, "item_id", rec.ID, "render", opts.Render)
	return rec.Clone(), nil
}

// Error records a user-visible notification
func (s *Sheet) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Notifications = append(s.log.Notifications, message)
}

// PromptEffort records the effort interaction. The stat is the one the
// skill would roll once the player confirms.
func (s *Sheet) PromptEffort(ctx context.Context, actor item.Actor, req item.EffortRequest) error {
	if req.Skill == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEffortWithoutSkill)
	}

	s.mu.Lock()
	s.log.EffortPrompts = append(s.log.EffortPrompts, EffortPrompt{
		SkillID:   req.Skill.ID(),
		SkillName: req.Skill.Name(),
		Stat:      req.Skill.RollStat(),
	})
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgEffortPrompted, "sheet", s.id, "actor", actor.ID(), "skill", req.Skill.Name())
	return nil
}

// Transcript returns a copy of everything recorded so far
func (s *Sheet) Transcript() Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Transcript{
		Rolls:         append([]Roll{}, s.log.Rolls...),
		EffortPrompts: append([]EffortPrompt{}, s.log.EffortPrompts...),
		Notifications: append([]string{}, s.log.Notifications...),
		Updates:       make([]domain.ItemRecord, len(s.log.Updates)),
	}
	for i, rec := range s.log.Updates {
		t.Updates[i] = rec.Clone()
	}
	return t
}

// FindItem returns the index of the record with id, or -1.
func FindItem(items []domain.ItemRecord, id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// ApplyPatch returns a copy of rec with patch applied. Data keys are dotted
// paths; intermediate objects are created as needed.
func ApplyPatch(rec domain.ItemRecord, patch domain.ItemPatch) (domain.ItemRecord, error) {
	out := rec.Clone()
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if len(patch.Data) == 0 {
		return out, nil
	}
	if out.Data == nil {
		out.Data = make(map[string]any, len(patch.Data))
	}

	for path, value := range patch.Data {
		if err := setPath(out.Data, path, value); err != nil {
			return domain.ItemRecord{}, err
		}
	}
	return out, nil
}

func setPath(data map[string]any, path string, value any) error {
	keys := strings.Split(path, ".")
	m := data
	for i, key := range keys {
		if key == "" {
			return fmt.Errorf(ErrFmtInvalidPath, domain.ErrInvalidInput, path)
		}
		if i == len(keys)-1 {
			m[key] = value
			return nil
		}
		next, ok := m[key].(map[string]any)
		if !ok {
			if m[key] != nil {
				return fmt.Errorf(ErrFmtPathNotObject, domain.ErrInvalidInput, path, key)
			}
			next = make(map[string]any)
			m[key] = next
		}
		m = next
	}
	return nil
}
