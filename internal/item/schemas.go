package item

import (
	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

var notesField = Field{Name: "notes", Kind: KindString}

var priceField = Field{Name: "price", Kind: KindInt}

var abilitySchema = &Schema{
	Tag: domain.TypeAbility,
	Fields: []Field{
		notesField,
		{Name: "cost", Kind: KindObject, Fields: []Field{
			{Name: "amount", Kind: KindInt},
			{Name: "pool", Kind: KindString, Enum: &tables.Stats},
		}},
		{Name: "isEnabler", Kind: KindBool},
		{Name: "range", Kind: KindString},
		{Name: "tier", Kind: KindInt, Default: 1},
	},
}

var armorSchema = &Schema{
	Tag: domain.TypeArmor,
	Fields: []Field{
		notesField,
		priceField,
		{Name: "armor", Kind: KindInt, Default: 1},
		{Name: "additionalSpeedEffortCost", Kind: KindInt},
		{Name: "weight", Kind: KindString, Enum: &tables.WeightClasses},
	},
}

var artifactSchema = &Schema{
	Tag: domain.TypeArtifact,
	Fields: []Field{
		priceField,
		notesField,
		{Name: "form", Kind: KindString},
		{Name: "laws", Kind: KindString},
		{Name: "effect", Kind: KindString},
		{Name: "range", Kind: KindString},
		{Name: "depletion", Kind: KindObject, Fields: []Field{
			{Name: "isDepleting", Kind: KindBool, Default: true},
			{Name: "die", Kind: KindString, Enum: &tables.DepletionDice},
			{Name: "threshold", Kind: KindInt, Default: 1},
		}},
		{Name: "levelDie", Kind: KindString},
		{Name: "level", Kind: KindString},
	},
}

var cypherSchema = &Schema{
	Tag: domain.TypeCypher,
	Fields: []Field{
		{Name: "level", Kind: KindString},
		{Name: "levelDie", Kind: KindString},
		{Name: "effect", Kind: KindString},
		{Name: "form", Kind: KindString},
		{Name: "cypherType", Kind: KindString, Enum: &tables.CypherTypes},
		notesField,
		priceField,
	},
}

var equipmentSchema = &Schema{
	Tag: domain.TypeEquipment,
	Fields: []Field{
		notesField,
		priceField,
		{Name: "quantity", Kind: KindInt, Default: 1},
	},
}

var npcAttackSchema = &Schema{
	Tag: domain.TypeNPCAttack,
	Fields: []Field{
		notesField,
		{Name: "info", Kind: KindString},
	},
}

var odditySchema = &Schema{
	Tag: domain.TypeOddity,
	Fields: []Field{
		notesField,
		priceField,
	},
}

var powerShiftSchema = &Schema{
	Tag: domain.TypePowerShift,
	Fields: []Field{
		{Name: "effect", Kind: KindString},
		{Name: "level", Kind: KindInt, Default: 1},
		notesField,
	},
}

var recursionSchema = &Schema{
	Tag: domain.TypeRecursion,
	Fields: []Field{
		{Name: "focus", Kind: KindString},
		{Name: "laws", Kind: KindString},
		notesField,
	},
}

var skillSchema = &Schema{
	Tag: domain.TypeSkill,
	Fields: []Field{
		notesField,
		{Name: "relatedAbilityId", Kind: KindString},
		{Name: "stat", Kind: KindString, Enum: &tables.Stats},
		{Name: "inability", Kind: KindBool},
		{Name: "skillLevel", Kind: KindInt},
	},
}

var weaponSchema = &Schema{
	Tag: domain.TypeWeapon,
	Fields: []Field{
		{Name: "ammo", Kind: KindInt},
		{Name: "damage", Kind: KindInt, Default: 1},
		{Name: "range", Kind: KindString, Enum: &tables.Ranges},
		{Name: "weaponType", Kind: KindString, Enum: &tables.WeaponTypes},
		{Name: "weight", Kind: KindString, Enum: &tables.WeightClasses},
		notesField,
	},
}

// Schemas returns the payload schema of every supported variant.
func Schemas() map[domain.TypeTag]*Schema {
	return map[domain.TypeTag]*Schema{
		domain.TypeAbility:    abilitySchema,
		domain.TypeArmor:      armorSchema,
		domain.TypeArtifact:   artifactSchema,
		domain.TypeCypher:     cypherSchema,
		domain.TypeEquipment:  equipmentSchema,
		domain.TypeNPCAttack:  npcAttackSchema,
		domain.TypeOddity:     odditySchema,
		domain.TypePowerShift: powerShiftSchema,
		domain.TypeRecursion:  recursionSchema,
		domain.TypeSkill:      skillSchema,
		domain.TypeWeapon:     weaponSchema,
	}
}
