// Package tables holds the static Numenera vocabularies (stats, ranges,
// weapon types, weight classes, dice) that item normalization consults for
// defaults. Tables are ordered: the first entry is always the default, so
// appending new entries never changes how old records normalize.
package tables

import "github.com/osse101/NumeneraItems_Go/internal/domain"

// Entry is one option of an enum table. Label is a localization key.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Table is an ordered enum vocabulary.
type Table struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// First returns the default entry id of the table.
func (t Table) First() string {
	if len(t.Entries) == 0 {
		return ""
	}
	return t.Entries[0].ID
}

// Has reports whether id is a member of the table.
func (t Table) Has(id string) bool {
	for _, e := range t.Entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Label returns the localization key for id. Unknown ids are returned as-is
// so that callers can still localize free-form values.
func (t Table) Label(id string) string {
	for _, e := range t.Entries {
		if e.ID == id {
			return e.Label
		}
	}
	return id
}

// IDs returns the entry ids in table order.
func (t Table) IDs() []string {
	ids := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		ids[i] = e.ID
	}
	return ids
}

var (
	// Stats are the three pools abilities draw from and skills roll against.
	Stats = Table{Name: TableStats, Entries: []Entry{
		{ID: "might", Label: "NUMENERA.stats.might"},
		{ID: "speed", Label: "NUMENERA.stats.speed"},
		{ID: "intellect", Label: "NUMENERA.stats.intellect"},
	}}

	// Ranges are the distance bands.
	Ranges = Table{Name: TableRanges, Entries: []Entry{
		{ID: "immediate", Label: "NUMENERA.range.immediate"},
		{ID: "short", Label: "NUMENERA.range.short"},
		{ID: "long", Label: "NUMENERA.range.long"},
		{ID: "veryLong", Label: "NUMENERA.range.veryLong"},
	}}

	// WeaponTypes are the weapon families used to build weapon skill names.
	WeaponTypes = Table{Name: TableWeaponTypes, Entries: []Entry{
		{ID: "bashing", Label: "NUMENERA.weaponTypes.bashing"},
		{ID: "bladed", Label: "NUMENERA.weaponTypes.bladed"},
		{ID: "ranged", Label: "NUMENERA.weaponTypes.ranged"},
	}}

	// WeightClasses apply to weapons and armor.
	WeightClasses = Table{Name: TableWeightClasses, Entries: []Entry{
		{ID: "light", Label: "NUMENERA.weightClasses.light"},
		{ID: "medium", Label: "NUMENERA.weightClasses.medium"},
		{ID: "heavy", Label: "NUMENERA.weightClasses.heavy"},
	}}

	// DepletionDice are the dice an artifact depletion roll can use.
	// d6 is listed first: it is the default depletion die.
	DepletionDice = Table{Name: TableDepletionDice, Entries: []Entry{
		{ID: "d6", Label: "d6"},
		{ID: "d4", Label: "d4"},
		{ID: "d8", Label: "d8"},
		{ID: "d10", Label: "d10"},
		{ID: "d12", Label: "d12"},
		{ID: "d20", Label: "d20"},
		{ID: "d100", Label: "d100"},
	}}

	// CypherTypes distinguish anoetic and occultic cyphers.
	CypherTypes = Table{Name: TableCypherTypes, Entries: []Entry{
		{ID: "anoetic", Label: "NUMENERA.cypherTypes.anoetic"},
		{ID: "occultic", Label: "NUMENERA.cypherTypes.occultic"},
	}}

	// SkillLevels index the training level of a skill (0 = practiced).
	SkillLevels = Table{Name: TableSkillLevels, Entries: []Entry{
		{ID: "0", Label: "NUMENERA.skillLevels.practiced"},
		{ID: "1", Label: "NUMENERA.skillLevels.trained"},
		{ID: "2", Label: "NUMENERA.skillLevels.specialized"},
	}}
)

// All returns every table keyed by name.
func All() map[string]Table {
	return map[string]Table{
		Stats.Name:         Stats,
		Ranges.Name:        Ranges,
		WeaponTypes.Name:   WeaponTypes,
		WeightClasses.Name: WeightClasses,
		DepletionDice.Name: DepletionDice,
		CypherTypes.Name:   CypherTypes,
		SkillLevels.Name:   SkillLevels,
	}
}

// Icons are the default image paths assigned to records with no image.
var Icons = map[domain.TypeTag]string{
	domain.TypeAbility:    "icons/svg/aura.svg",
	domain.TypeArmor:      "icons/svg/shield.svg",
	domain.TypeArtifact:   "icons/svg/mage-shield.svg",
	domain.TypeCypher:     "icons/svg/daze.svg",
	domain.TypeEquipment:  "icons/svg/item-bag.svg",
	domain.TypeNPCAttack:  "icons/svg/combat.svg",
	domain.TypeOddity:     "icons/svg/mystery-man.svg",
	domain.TypePowerShift: "icons/svg/lightning.svg",
	domain.TypeSkill:      "icons/svg/book.svg",
	domain.TypeWeapon:     "icons/svg/sword.svg",
	domain.TypeRecursion:  "icons/svg/door-exit.svg",
}

// Icon returns the default icon for a type tag, or DefaultIcon when the tag
// has none.
func Icon(tag domain.TypeTag) string {
	if icon, ok := Icons[tag]; ok {
		return icon
	}
	return DefaultIcon
}
