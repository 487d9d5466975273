package item

import (
	"context"
	"fmt"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// SkillData is the typed skill payload.
type SkillData struct {
	Notes            string `mapstructure:"notes"`
	RelatedAbilityID string `mapstructure:"relatedAbilityId"`
	Stat             string `mapstructure:"stat" validate:"enum=stats"`
	Inability        bool   `mapstructure:"inability"`
	SkillLevel       int    `mapstructure:"skillLevel" validate:"gte=0,lte=2"`
}

func (d SkillData) toMap() map[string]any {
	return map[string]any{
		"notes":            d.Notes,
		"relatedAbilityId": d.RelatedAbilityID,
		"stat":             d.Stat,
		"inability":        d.Inability,
		"skillLevel":       d.SkillLevel,
	}
}

// Skill is a trained task. Using it rolls against its stat.
type Skill struct {
	base
	Data SkillData

	stats []Choice
}

func (s *Skill) Prepare() error {
	if err := s.prepare(&s.Data, KeyNewSkill); err != nil {
		return err
	}
	s.stats = choices(tables.Stats, s.Data.Stat)
	return nil
}

func (s *Skill) Payload() map[string]any { return s.payload(&s.Data) }

func (s *Skill) Record() domain.ItemRecord { return s.record(&s.Data) }

func (s *Skill) Projections() map[string][]Choice {
	return map[string][]Choice{tables.TableStats: s.stats}
}

// RollStat is the pool the roll engine rolls against.
func (s *Skill) RollStat() string { return s.Data.Stat }

// Use rolls the skill for its owner, or opens the effort prompt when the
// interaction asks for the alternate behavior. Without an owner it only
// notifies the user.
func (s *Skill) Use(ctx context.Context, ev *Interaction) error {
	log := logger.FromContext(ctx)

	if s.actor == nil {
		log.Warn(LogMsgUseWithoutActor, "type", s.tag, "id", s.id, "name", s.name)
		s.factory.services.Notifier.Error(s.localize(KeySkillUseNotLinked))
		s.factory.publish(ctx, event.NewItemUsedEvent(s.id, string(s.tag), s.name, OutcomeRefused))
		return nil
	}

	if ev.Alternate() && s.factory.services.Effort != nil {
		if err := s.factory.services.Effort.PromptEffort(ctx, s.actor, EffortRequest{Skill: s}); err != nil {
			s.factory.publish(ctx, event.NewItemUsedEvent(s.id, string(s.tag), s.name, OutcomeFailed))
			return fmt.Errorf(ErrMsgEffortFailed, s.name, err)
		}
		log.Debug(LogMsgEffortPrompted, "skill", s.name, "actor", s.actor.ID())
		s.factory.publish(ctx, event.NewItemUsedEvent(s.id, string(s.tag), s.name, OutcomeEffort))
		return nil
	}

	if err := s.actor.RequestRoll(ctx, s); err != nil {
		s.factory.publish(ctx, event.NewItemUsedEvent(s.id, string(s.tag), s.name, OutcomeFailed))
		return fmt.Errorf(ErrMsgRollFailed, s.name, err)
	}
	log.Debug(LogMsgRollRequested, "skill", s.name, "stat", s.Data.Stat, "actor", s.actor.ID())
	s.factory.publish(ctx, event.NewItemUsedEvent(s.id, string(s.tag), s.name, OutcomeRolled))
	return nil
}

// RelatedAbility finds the owner's ability linked to this skill, first by
// relatedAbilityId and then by a matching name.
func (s *Skill) RelatedAbility(ctx context.Context) (*Ability, error) {
	if s.actor == nil {
		return nil, fmt.Errorf("%w: skill %q has no owner", domain.ErrItemNotFound, s.name)
	}

	var byName OwnedItem
	for _, owned := range s.actor.Items() {
		rec := owned.Record()
		if rec.Type != domain.TypeAbility {
			continue
		}
		if s.Data.RelatedAbilityID != "" && rec.ID == s.Data.RelatedAbilityID {
			return s.promoteAbility(ctx, owned)
		}
		if byName == nil && rec.Name == s.name {
			byName = owned
		}
	}
	if byName != nil {
		return s.promoteAbility(ctx, byName)
	}
	return nil, fmt.Errorf("%w: no ability related to skill %q", domain.ErrItemNotFound, s.name)
}

func (s *Skill) promoteAbility(ctx context.Context, owned OwnedItem) (*Ability, error) {
	if ability, ok := owned.(*Ability); ok {
		return ability, nil
	}
	v, err := s.factory.FromOwned(ctx, owned.Record(), s.actor)
	if err != nil {
		return nil, err
	}
	ability, ok := v.(*Ability)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWrongVariant, v.Type())
	}
	return ability, nil
}

// UpdateRelatedAbility pushes the skill's name and stat onto ability through
// the owning actor. It returns the updated ability, or nil when there is no
// owner, no ability, or nothing to change.
func (s *Skill) UpdateRelatedAbility(ctx context.Context, ability *Ability, opts UpdateOptions) (*Ability, error) {
	log := logger.FromContext(ctx)

	if s.actor == nil || ability == nil {
		return nil, nil
	}
	if ability.Data.Cost.Pool == s.Data.Stat && ability.Name() == s.name {
		log.Debug(LogMsgAbilityInSync, "skill", s.name, "ability", ability.ID())
		return nil, nil
	}

	name := s.name
	patch := domain.ItemPatch{
		ID:   ability.ID(),
		Name: &name,
		Data: map[string]any{PathCostPool: s.Data.Stat},
	}
	rec, err := s.actor.UpdateItem(ctx, patch, opts)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateAbilityFailed, ability.ID(), err)
	}

	updated, err := s.promoteAbility(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateAbilityFailed, ability.ID(), err)
	}

	log.Info(LogMsgAbilitySynced, "skill", s.name, "ability", updated.ID(), "pool", s.Data.Stat)
	s.factory.publish(ctx, event.NewItemAbilitySyncedEvent(s.id, updated.ID(), s.Data.Stat))
	return updated, nil
}

// SyncRelatedAbility resolves the related ability and updates it.
func (s *Skill) SyncRelatedAbility(ctx context.Context, opts UpdateOptions) (*Ability, error) {
	ability, err := s.RelatedAbility(ctx)
	if err != nil {
		return nil, err
	}
	return s.UpdateRelatedAbility(ctx, ability, opts)
}

func (s *Skill) typed() any { return &s.Data }

// resolveSkill finds actor's skill called name, promoting a bare record when
// needed. When the actor holds none, a fresh skill attached to the actor is
// built; it is not added to the actor's items.
func (f *Factory) resolveSkill(ctx context.Context, actor Actor, name string) (*Skill, error) {
	log := logger.FromContext(ctx)

	for _, owned := range actor.Items() {
		rec := owned.Record()
		if rec.Type != domain.TypeSkill || rec.Name != name {
			continue
		}
		if skill, ok := owned.(*Skill); ok {
			return skill, nil
		}
		v, err := f.FromOwned(ctx, rec, actor)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgResolveSkillFailed, name, err)
		}
		log.Debug(LogMsgSkillPromoted, "skill", name, "actor", actor.ID())
		return v.(*Skill), nil
	}

	v, err := f.Create(ctx, NewRecord(domain.TypeSkill, name), Options{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveSkillFailed, name, err)
	}
	log.Debug(LogMsgSkillCreated, "skill", name, "actor", actor.ID())
	return v.(*Skill), nil
}
