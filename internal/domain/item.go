package domain

// TypeTag is the stable, serializable discriminator that decides which item
// variant owns a record. It is assigned once when the record is created.
type TypeTag string

// Known item type tags, as stored by the host.
const (
	TypeAbility    TypeTag = "ability"
	TypeArmor      TypeTag = "armor"
	TypeArtifact   TypeTag = "artifact"
	TypeCypher     TypeTag = "cypher"
	TypeEquipment  TypeTag = "equipment"
	TypeNPCAttack  TypeTag = "npcAttack"
	TypeOddity     TypeTag = "oddity"
	TypePowerShift TypeTag = "powerShift"
	TypeSkill      TypeTag = "skill"
	TypeWeapon     TypeTag = "weapon"
	TypeRecursion  TypeTag = "recursion"
)

// AllTypeTags lists every supported tag in a stable order.
var AllTypeTags = []TypeTag{
	TypeAbility,
	TypeArmor,
	TypeArtifact,
	TypeCypher,
	TypeEquipment,
	TypeNPCAttack,
	TypeOddity,
	TypePowerShift,
	TypeSkill,
	TypeWeapon,
	TypeRecursion,
}

// ItemRecord is the loosely-typed stored form of one inventory or ability
// entry. Data may be partially or entirely absent before normalization.
type ItemRecord struct {
	ID   string         `json:"_id"`
	Name string         `json:"name"`
	Img  string         `json:"img,omitempty"`
	Type TypeTag        `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Record returns the record itself, letting bare records and constructed
// variants sit side by side in an actor's item collection.
func (r ItemRecord) Record() ItemRecord {
	return r
}

// Clone returns a deep copy of the record so callers can mutate it freely.
func (r ItemRecord) Clone() ItemRecord {
	out := r
	out.Data = CloneData(r.Data)
	return out
}

// CloneData deep-copies a payload map. Nested maps and slices are copied;
// scalar values are shared.
func CloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneData(t)
	case []any:
		s := make([]any, len(t))
		for i := range t {
			s[i] = cloneValue(t[i])
		}
		return s
	default:
		return v
	}
}

// ItemPatch is a partial update issued to the owning actor. Data keys use
// dotted paths into the payload (e.g. "cost.pool").
type ItemPatch struct {
	ID   string         `json:"_id"`
	Name *string        `json:"name,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}
