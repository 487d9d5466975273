package item

import (
	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// CypherData is the typed cypher payload.
type CypherData struct {
	Level      string `mapstructure:"level"`
	LevelDie   string `mapstructure:"levelDie"`
	Effect     string `mapstructure:"effect"`
	Form       string `mapstructure:"form"`
	CypherType string `mapstructure:"cypherType" validate:"enum=cypherTypes"`
	Notes      string `mapstructure:"notes"`
	Price      int    `mapstructure:"price" validate:"gte=0"`
}

func (d CypherData) toMap() map[string]any {
	return map[string]any{
		"level":      d.Level,
		"levelDie":   d.LevelDie,
		"effect":     d.Effect,
		"form":       d.Form,
		"cypherType": d.CypherType,
		"notes":      d.Notes,
		"price":      d.Price,
	}
}

// Cypher is a single-use device.
type Cypher struct {
	base
	Data CypherData

	cypherTypes []Choice
}

func (c *Cypher) Prepare() error {
	if err := c.prepare(&c.Data, KeyNewCypher); err != nil {
		return err
	}
	c.cypherTypes = choices(tables.CypherTypes, c.Data.CypherType)
	return nil
}

func (c *Cypher) Payload() map[string]any { return c.payload(&c.Data) }

func (c *Cypher) Record() domain.ItemRecord { return c.record(&c.Data) }

func (c *Cypher) Projections() map[string][]Choice {
	return map[string][]Choice{tables.TableCypherTypes: c.cypherTypes}
}

func (c *Cypher) typed() any { return &c.Data }
