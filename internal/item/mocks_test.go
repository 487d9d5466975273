package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
)

// MockActor mocks the Actor interface
type MockActor struct {
	mock.Mock
	items []OwnedItem
}

func (m *MockActor) ID() string {
	return "actor-1"
}

func (m *MockActor) Items() []OwnedItem {
	return m.items
}

func (m *MockActor) RequestRoll(ctx context.Context, r Rollable) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockActor) UpdateItem(ctx context.Context, patch domain.ItemPatch, opts UpdateOptions) (domain.ItemRecord, error) {
	args := m.Called(ctx, patch, opts)
	return args.Get(0).(domain.ItemRecord), args.Error(1)
}

// MockNotifier mocks the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Error(message string) {
	m.Called(message)
}

// MockEffortPrompter mocks the EffortPrompter interface
type MockEffortPrompter struct {
	mock.Mock
}

func (m *MockEffortPrompter) PromptEffort(ctx context.Context, actor Actor, req EffortRequest) error {
	args := m.Called(ctx, actor, req)
	return args.Error(0)
}

// mapLocalizer resolves keys from a fixed table, falling back to the key.
type mapLocalizer map[string]string

func (l mapLocalizer) Localize(key string) string {
	if s, ok := l[key]; ok {
		return s
	}
	return key
}

func testLocalizer() mapLocalizer {
	return mapLocalizer{
		KeyUnknown:                     "Unknown",
		KeyUnidentifiedArtifact:        "Unidentified Artifact",
		KeySkillUseNotLinked:           "This skill is not linked to an actor",
		KeyAbilityUseNotLinked:         "This ability is not linked to an actor",
		KeyNewWeapon:                   "New Weapon",
		KeyNewSkill:                    "New Skill",
		"NUMENERA.weightClasses.light":  "Light",
		"NUMENERA.weightClasses.medium": "Medium",
		"NUMENERA.weightClasses.heavy":  "Heavy",
		"NUMENERA.weaponTypes.bashing":  "Bashing",
		"NUMENERA.weaponTypes.bladed":   "Bladed",
		"NUMENERA.weaponTypes.ranged":   "Ranged",
	}
}

type fixture struct {
	factory  *Factory
	notifier *MockNotifier
	effort   *MockEffortPrompter
}

func newFixture() *fixture {
	fx := &fixture{
		notifier: &MockNotifier{},
		effort:   &MockEffortPrompter{},
	}
	fx.factory = NewFactory(Services{
		Localizer: testLocalizer(),
		Notifier:  fx.notifier,
		Effort:    fx.effort,
	}, nil)
	return fx
}
