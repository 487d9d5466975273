package sheet

// Error messages
const (
	ErrMsgEffortWithoutSkill = "effort prompt requires a skill"

	ErrFmtInvalidPath   = "%w: invalid patch path %q"
	ErrFmtPathNotObject = "%w: patch path %q crosses non-object %q"
)

// Log messages
const (
	LogMsgRollRequested  = "Roll requested"
	LogMsgItemUpdated    = "Sheet item updated"
	LogMsgEffortPrompted = "Effort prompt opened"
)
