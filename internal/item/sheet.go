package item

import "github.com/osse101/NumeneraItems_Go/internal/domain"

// NPCAttackData is the typed NPC attack payload.
type NPCAttackData struct {
	Notes string `mapstructure:"notes"`
	Info  string `mapstructure:"info"`
}

func (d NPCAttackData) toMap() map[string]any {
	return map[string]any{
		"notes": d.Notes,
		"info":  d.Info,
	}
}

// NPCAttack is a free-form attack line on an NPC sheet.
type NPCAttack struct {
	base
	Data NPCAttackData
}

func (n *NPCAttack) Prepare() error { return n.prepare(&n.Data, KeyNewNPCAttack) }

func (n *NPCAttack) Payload() map[string]any { return n.payload(&n.Data) }

func (n *NPCAttack) Record() domain.ItemRecord { return n.record(&n.Data) }

func (n *NPCAttack) Projections() map[string][]Choice { return nil }

func (n *NPCAttack) typed() any { return &n.Data }

// PowerShiftData is the typed power shift payload.
type PowerShiftData struct {
	Effect string `mapstructure:"effect"`
	Level  int    `mapstructure:"level" validate:"gte=0"`
	Notes  string `mapstructure:"notes"`
}

func (d PowerShiftData) toMap() map[string]any {
	return map[string]any{
		"effect": d.Effect,
		"level":  d.Level,
		"notes":  d.Notes,
	}
}

// PowerShift is a permanent stat-like bonus.
type PowerShift struct {
	base
	Data PowerShiftData
}

func (p *PowerShift) Prepare() error { return p.prepare(&p.Data, KeyNewPowerShift) }

func (p *PowerShift) Payload() map[string]any { return p.payload(&p.Data) }

func (p *PowerShift) Record() domain.ItemRecord { return p.record(&p.Data) }

func (p *PowerShift) Projections() map[string][]Choice { return nil }

func (p *PowerShift) typed() any { return &p.Data }

// RecursionData is the typed recursion payload.
type RecursionData struct {
	Focus string `mapstructure:"focus"`
	Laws  string `mapstructure:"laws"`
	Notes string `mapstructure:"notes"`
}

func (d RecursionData) toMap() map[string]any {
	return map[string]any{
		"focus": d.Focus,
		"laws":  d.Laws,
		"notes": d.Notes,
	}
}

// Recursion is a world a character has visited.
type Recursion struct {
	base
	Data RecursionData
}

func (r *Recursion) Prepare() error { return r.prepare(&r.Data, KeyNewRecursion) }

func (r *Recursion) Payload() map[string]any { return r.payload(&r.Data) }

func (r *Recursion) Record() domain.ItemRecord { return r.record(&r.Data) }

func (r *Recursion) Projections() map[string][]Choice { return nil }

func (r *Recursion) typed() any { return &r.Data }
