package item

import (
	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// ArmorData is the typed armor payload.
type ArmorData struct {
	Notes                     string `mapstructure:"notes"`
	Price                     int    `mapstructure:"price" validate:"gte=0"`
	Armor                     int    `mapstructure:"armor" validate:"gte=0"`
	AdditionalSpeedEffortCost int    `mapstructure:"additionalSpeedEffortCost" validate:"gte=0"`
	Weight                    string `mapstructure:"weight" validate:"enum=weightClasses"`
}

func (d ArmorData) toMap() map[string]any {
	return map[string]any{
		"notes":                     d.Notes,
		"price":                     d.Price,
		"armor":                     d.Armor,
		"additionalSpeedEffortCost": d.AdditionalSpeedEffortCost,
		"weight":                    d.Weight,
	}
}

// Armor is worn protection.
type Armor struct {
	base
	Data ArmorData

	weightClasses []Choice
}

func (a *Armor) Prepare() error {
	if err := a.prepare(&a.Data, KeyNewArmor); err != nil {
		return err
	}
	a.weightClasses = choices(tables.WeightClasses, a.Data.Weight)
	return nil
}

func (a *Armor) Payload() map[string]any { return a.payload(&a.Data) }

func (a *Armor) Record() domain.ItemRecord { return a.record(&a.Data) }

func (a *Armor) Projections() map[string][]Choice {
	return map[string][]Choice{tables.TableWeightClasses: a.weightClasses}
}

func (a *Armor) typed() any { return &a.Data }
