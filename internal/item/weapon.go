package item

import (
	"context"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// WeaponData is the typed weapon payload.
type WeaponData struct {
	Ammo       int    `mapstructure:"ammo" validate:"gte=0"`
	Damage     int    `mapstructure:"damage" validate:"gte=0"`
	Range      string `mapstructure:"range" validate:"enum=ranges"`
	WeaponType string `mapstructure:"weaponType" validate:"enum=weaponTypes"`
	Weight     string `mapstructure:"weight" validate:"enum=weightClasses"`
	Notes      string `mapstructure:"notes"`
}

func (d WeaponData) toMap() map[string]any {
	return map[string]any{
		"ammo":       d.Ammo,
		"damage":     d.Damage,
		"range":      d.Range,
		"weaponType": d.WeaponType,
		"weight":     d.Weight,
		"notes":      d.Notes,
	}
}

// Weapon attacks by rolling the owner's matching weapon skill.
type Weapon struct {
	base
	Data WeaponData

	ranges        []Choice
	weaponTypes   []Choice
	weightClasses []Choice
}

func (w *Weapon) Prepare() error {
	if err := w.prepare(&w.Data, KeyNewWeapon); err != nil {
		return err
	}
	w.ranges = choices(tables.Ranges, w.Data.Range)
	w.weaponTypes = choices(tables.WeaponTypes, w.Data.WeaponType)
	w.weightClasses = choices(tables.WeightClasses, w.Data.Weight)
	return nil
}

func (w *Weapon) Payload() map[string]any { return w.payload(&w.Data) }

func (w *Weapon) Record() domain.ItemRecord { return w.record(&w.Data) }

func (w *Weapon) Projections() map[string][]Choice {
	return map[string][]Choice{
		tables.TableRanges:        w.ranges,
		tables.TableWeaponTypes:   w.weaponTypes,
		tables.TableWeightClasses: w.weightClasses,
	}
}

// SkillName is the localized name of the skill that governs the weapon,
// e.g. "Light Bladed".
func (w *Weapon) SkillName() string {
	return w.localize(tables.WeightClasses.Label(w.Data.Weight)) + " " +
		w.localize(tables.WeaponTypes.Label(w.Data.WeaponType))
}

// Use finds or builds the owner's weapon skill and uses it. Without an owner
// it only notifies the user.
func (w *Weapon) Use(ctx context.Context, ev *Interaction) error {
	if w.actor == nil {
		logger.FromContext(ctx).Warn(LogMsgUseWithoutActor, "type", w.tag, "id", w.id, "name", w.name)
		w.factory.services.Notifier.Error(w.localize(KeyAbilityUseNotLinked))
		w.factory.publish(ctx, event.NewItemUsedEvent(w.id, string(w.tag), w.name, OutcomeRefused))
		return nil
	}

	skill, err := w.factory.resolveSkill(ctx, w.actor, w.SkillName())
	if err != nil {
		return err
	}
	w.factory.publish(ctx, event.NewItemUsedEvent(w.id, string(w.tag), w.name, OutcomeDelegated))
	return skill.Use(ctx, ev)
}

func (w *Weapon) typed() any { return &w.Data }
