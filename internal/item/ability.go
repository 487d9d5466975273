package item

import (
	"context"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/event"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// Cost is the stat pool expense of an ability.
type Cost struct {
	Amount int    `mapstructure:"amount" validate:"gte=0"`
	Pool   string `mapstructure:"pool" validate:"enum=stats"`
}

// AbilityData is the typed ability payload.
type AbilityData struct {
	Notes     string `mapstructure:"notes"`
	Cost      Cost   `mapstructure:"cost"`
	IsEnabler bool   `mapstructure:"isEnabler"`
	Range     string `mapstructure:"range"`
	Tier      int    `mapstructure:"tier" validate:"gte=1,lte=6"`
}

func (d AbilityData) toMap() map[string]any {
	return map[string]any{
		"notes": d.Notes,
		"cost": map[string]any{
			"amount": d.Cost.Amount,
			"pool":   d.Cost.Pool,
		},
		"isEnabler": d.IsEnabler,
		"range":     d.Range,
		"tier":      d.Tier,
	}
}

// Ability is a special ability; using it uses the skill of the same name.
type Ability struct {
	base
	Data AbilityData

	pools []Choice
}

func (a *Ability) Prepare() error {
	if err := a.prepare(&a.Data, KeyNewAbility); err != nil {
		return err
	}
	a.pools = choices(tables.Stats, a.Data.Cost.Pool)
	return nil
}

func (a *Ability) Payload() map[string]any { return a.payload(&a.Data) }

func (a *Ability) Record() domain.ItemRecord { return a.record(&a.Data) }

func (a *Ability) Projections() map[string][]Choice {
	return map[string][]Choice{tables.TableStats: a.pools}
}

// RollStat is the pool the ability draws from.
func (a *Ability) RollStat() string { return a.Data.Cost.Pool }

// Use finds or builds the owner's skill named after the ability and uses it.
// Without an owner it only notifies the user.
func (a *Ability) Use(ctx context.Context, ev *Interaction) error {
	if a.actor == nil {
		logger.FromContext(ctx).Warn(LogMsgUseWithoutActor, "type", a.tag, "id", a.id, "name", a.name)
		a.factory.services.Notifier.Error(a.localize(KeyAbilityUseNotLinked))
		a.factory.publish(ctx, event.NewItemUsedEvent(a.id, string(a.tag), a.name, OutcomeRefused))
		return nil
	}

	skill, err := a.factory.resolveSkill(ctx, a.actor, a.name)
	if err != nil {
		return err
	}
	a.factory.publish(ctx, event.NewItemUsedEvent(a.id, string(a.tag), a.name, OutcomeDelegated))
	return skill.Use(ctx, ev)
}

func (a *Ability) typed() any { return &a.Data }
