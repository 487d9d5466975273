package item

import (
	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// Depletion is the chance an artifact burns out on use.
type Depletion struct {
	IsDepleting bool   `mapstructure:"isDepleting"`
	Die         string `mapstructure:"die" validate:"enum=depletionDice"`
	Threshold   int    `mapstructure:"threshold" validate:"gte=0"`
}

// ArtifactData is the typed artifact payload.
type ArtifactData struct {
	Price     int        `mapstructure:"price" validate:"gte=0"`
	Notes     string     `mapstructure:"notes"`
	Form      string     `mapstructure:"form"`
	Laws      string     `mapstructure:"laws"`
	Effect    string     `mapstructure:"effect"`
	Range     string     `mapstructure:"range"`
	Depletion *Depletion `mapstructure:"depletion"`
	LevelDie  string     `mapstructure:"levelDie"`
	Level     string     `mapstructure:"level"`
}

func (d ArtifactData) toMap() map[string]any {
	var depletion any
	if d.Depletion != nil {
		depletion = map[string]any{
			"isDepleting": d.Depletion.IsDepleting,
			"die":         d.Depletion.Die,
			"threshold":   d.Depletion.Threshold,
		}
	}
	return map[string]any{
		"price":     d.Price,
		"notes":     d.Notes,
		"form":      d.Form,
		"laws":      d.Laws,
		"effect":    d.Effect,
		"range":     d.Range,
		"depletion": depletion,
		"levelDie":  d.LevelDie,
		"level":     d.Level,
	}
}

// Artifact is a reusable numenera device.
type Artifact struct {
	base
	Data ArtifactData

	dice         []Choice
	unidentified bool
}

func (a *Artifact) Prepare() error {
	if err := a.prepare(&a.Data, KeyNewArtifact); err != nil {
		return err
	}
	if a.unidentified {
		a.conceal()
	}
	a.project()
	return nil
}

func (a *Artifact) project() {
	die := ""
	if a.Data.Depletion != nil {
		die = a.Data.Depletion.Die
	}
	a.dice = choices(tables.DepletionDice, die)
}

func (a *Artifact) Payload() map[string]any { return a.payload(&a.Data) }

func (a *Artifact) Record() domain.ItemRecord { return a.record(&a.Data) }

func (a *Artifact) Projections() map[string][]Choice {
	return map[string][]Choice{tables.TableDepletionDice: a.dice}
}

// IsUnidentified reports whether the artifact is an unidentified view.
func (a *Artifact) IsUnidentified() bool {
	return a.unidentified
}

// AsUnidentified returns a copy showing what a character who has not
// identified the artifact may know: localized placeholders for name, level
// and effect, and no depletion. The receiver is not modified and the copy
// keeps the same id.
func (a *Artifact) AsUnidentified() (*Artifact, error) {
	out := a.clone()
	if !out.prepared {
		if err := out.Prepare(); err != nil {
			return nil, err
		}
	}

	out.unidentified = true
	out.conceal()
	out.project()
	return out, nil
}

// conceal replaces what an unidentified artifact hides. Normalization
// fills in a default depletion, so it runs after every Prepare.
func (a *Artifact) conceal() {
	a.name = a.localize(KeyUnidentifiedArtifact)
	a.Data.Level = a.localize(KeyUnknown)
	a.Data.Effect = a.localize(KeyUnknown)
	a.Data.Depletion = nil
	a.stored["depletion"] = nil
	a.stored["level"] = a.Data.Level
	a.stored["effect"] = a.Data.Effect
}

func (a *Artifact) clone() *Artifact {
	out := &Artifact{
		base: a.cloneBase(),
		Data: a.Data,
	}
	if a.Data.Depletion != nil {
		d := *a.Data.Depletion
		out.Data.Depletion = &d
	}
	out.dice = append([]Choice(nil), a.dice...)
	out.unidentified = a.unidentified
	return out
}

func (a *Artifact) typed() any { return &a.Data }
