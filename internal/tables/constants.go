package tables

// Table names, used as keys by the HTTP tables endpoint.
const (
	TableStats         = "stats"
	TableRanges        = "ranges"
	TableWeaponTypes   = "weaponTypes"
	TableWeightClasses = "weightClasses"
	TableDepletionDice = "depletionDice"
	TableCypherTypes   = "cypherTypes"
	TableSkillLevels   = "skillLevels"
)

// DefaultIcon is the host's generic item image.
const DefaultIcon = "icons/svg/item-bag.svg"
