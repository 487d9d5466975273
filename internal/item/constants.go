package item

// ==================== Localization Keys ====================

// Placeholder keys used when an artifact is displayed unidentified
const (
	KeyUnknown              = "NUMENERA.unknown"
	KeyUnidentifiedArtifact = "NUMENERA.pc.numenera.artifact.unidentified"
)

// Soft-fail notification keys
const (
	KeyAbilityUseNotLinked = "NUMENERA.item.ability.useNotLinkedToActor"
	KeySkillUseNotLinked   = "NUMENERA.item.skill.useNotLinkedToActor"
)

// Default name keys, one per variant
const (
	KeyNewAbility    = "NUMENERA.item.ability.newAbility"
	KeyNewArmor      = "NUMENERA.item.armor.newArmor"
	KeyNewArtifact   = "NUMENERA.item.artifact.newArtifact"
	KeyNewCypher     = "NUMENERA.item.cypher.newCypher"
	KeyNewEquipment  = "NUMENERA.item.equipment.newEquipment"
	KeyNewNPCAttack  = "NUMENERA.item.npcAttack.newNpcAttack"
	KeyNewOddity     = "NUMENERA.item.oddity.newOddity"
	KeyNewPowerShift = "NUMENERA.item.powerShift.newPowerShift"
	KeyNewSkill      = "NUMENERA.item.skill.newSkill"
	KeyNewWeapon     = "NUMENERA.item.weapon.newWeapon"
	KeyNewRecursion  = "NUMENERA.item.recursion.newRecursion"
)

// ==================== Static Operations ====================

// Names accepted by Factory.Static
const (
	OpCreate         = "create"
	OpConstruct      = "construct"
	OpFromOwned      = "fromOwned"
	OpAsUnidentified = "asUnidentified"
)

// ==================== Payload Paths ====================

// PathCostPool is the dotted payload path of an ability's cost pool.
const PathCostPool = "cost.pool"

// ==================== Error Messages ====================

const (
	ErrMsgDecodePayloadFailed = "failed to decode %s payload: %w"
	ErrMsgPrepareFailed       = "failed to prepare %s %q: %w"
	ErrMsgBatchItemFailed     = "item at index %d: %w"
	ErrMsgUpdateAbilityFailed = "failed to update related ability %q: %w"
	ErrMsgRollFailed          = "failed to request roll for %q: %w"
	ErrMsgEffortFailed        = "failed to prompt effort for %q: %w"
	ErrMsgResolveSkillFailed  = "failed to resolve skill %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgUnsupportedVariant = "Unsupported item type"
	LogMsgItemCreated        = "Item created"
	LogMsgBatchAborted       = "Batch item creation aborted"
	LogMsgUseWithoutActor    = "Item used without an owning actor"
	LogMsgRollRequested      = "Roll requested"
	LogMsgEffortPrompted     = "Effort prompt opened"
	LogMsgSkillCreated       = "Created transient skill for item use"
	LogMsgSkillPromoted      = "Promoted owned skill record"
	LogMsgAbilitySynced      = "Related ability synchronized"
	LogMsgAbilityInSync      = "Related ability already in sync"
	LogMsgNotification       = "User notification"
	LogMsgPublishFailed      = "Failed to publish item event"
)

// ==================== Metric Outcomes ====================

const (
	OutcomeRolled    = "rolled"
	OutcomeEffort    = "effort"
	OutcomeDelegated = "delegated"
	OutcomeRefused   = "refused"
	OutcomeFailed    = "failed"
)
