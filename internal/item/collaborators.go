package item

import (
	"context"
	"log/slog"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
)

// OwnedItem is anything an actor can hold: a bare stored record or an
// already constructed variant.
type OwnedItem interface {
	Record() domain.ItemRecord
}

// Actor is the host-side owner of items. Variants keep a weak reference to it;
// a nil Actor means the item is unowned (library or compendium browsing).
type Actor interface {
	ID() string

	// Items returns the owned items in sheet order.
	Items() []OwnedItem

	// RequestRoll asks the host roll engine to resolve a roll for r.
	RequestRoll(ctx context.Context, r Rollable) error

	// UpdateItem applies patch to an owned item and returns the stored result.
	UpdateItem(ctx context.Context, patch domain.ItemPatch, opts UpdateOptions) (domain.ItemRecord, error)
}

// Rollable is a variant the roll engine can resolve against a stat pool.
type Rollable interface {
	Variant
	RollStat() string
}

// UpdateOptions is forwarded untouched to Actor.UpdateItem.
type UpdateOptions struct {
	Render bool
}

// Notifier surfaces user-visible messages. Calls are fire-and-forget.
type Notifier interface {
	Error(message string)
}

// Localizer resolves localization keys; unknown keys resolve to themselves.
type Localizer interface {
	Localize(key string) string
}

// EffortPrompter opens the host's effort-adjustment interaction.
type EffortPrompter interface {
	PromptEffort(ctx context.Context, actor Actor, req EffortRequest) error
}

// EffortRequest scopes an effort interaction to the item that triggered it.
type EffortRequest struct {
	Skill *Skill
}

// Interaction describes the gesture that triggered a Use call.
type Interaction struct {
	SecondaryButton bool `json:"secondaryButton"`
	ModifierKey     bool `json:"modifierKey"`
}

// Alternate reports whether the gesture asks for the alternate behavior
// (effort prompt instead of a direct roll). A nil interaction never does.
func (ev *Interaction) Alternate() bool {
	return ev != nil && (ev.SecondaryButton || ev.ModifierKey)
}

// Services bundles the host collaborators every variant may call into.
// Nil members are replaced by inert defaults in NewFactory.
type Services struct {
	Localizer Localizer
	Notifier  Notifier
	Effort    EffortPrompter
}

type keyLocalizer struct{}

func (keyLocalizer) Localize(key string) string { return key }

// logNotifier is the fallback when the host wires no notifier.
type logNotifier struct{}

func (logNotifier) Error(message string) {
	slog.Default().Warn(LogMsgNotification, "message", message)
}
