package item

import "github.com/osse101/NumeneraItems_Go/internal/domain"

// EquipmentData is the typed equipment payload.
type EquipmentData struct {
	Notes    string `mapstructure:"notes"`
	Price    int    `mapstructure:"price" validate:"gte=0"`
	Quantity int    `mapstructure:"quantity" validate:"gte=0"`
}

func (d EquipmentData) toMap() map[string]any {
	return map[string]any{
		"notes":    d.Notes,
		"price":    d.Price,
		"quantity": d.Quantity,
	}
}

// Equipment is mundane gear.
type Equipment struct {
	base
	Data EquipmentData
}

func (e *Equipment) Prepare() error { return e.prepare(&e.Data, KeyNewEquipment) }

func (e *Equipment) Payload() map[string]any { return e.payload(&e.Data) }

func (e *Equipment) Record() domain.ItemRecord { return e.record(&e.Data) }

func (e *Equipment) Projections() map[string][]Choice { return nil }

func (e *Equipment) typed() any { return &e.Data }

// OddityData is the typed oddity payload.
type OddityData struct {
	Notes string `mapstructure:"notes"`
	Price int    `mapstructure:"price" validate:"gte=0"`
}

func (d OddityData) toMap() map[string]any {
	return map[string]any{
		"notes": d.Notes,
		"price": d.Price,
	}
}

// Oddity is a curiosity with no practical use.
type Oddity struct {
	base
	Data OddityData
}

func (o *Oddity) Prepare() error { return o.prepare(&o.Data, KeyNewOddity) }

func (o *Oddity) Payload() map[string]any { return o.payload(&o.Data) }

func (o *Oddity) Record() domain.ItemRecord { return o.record(&o.Data) }

func (o *Oddity) Projections() map[string][]Choice { return nil }

func (o *Oddity) typed() any { return &o.Data }
