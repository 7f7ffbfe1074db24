package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clinicquest/internal/infrastructure/config"
)

func TestAction_StringAndParse(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		parsed, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	assert.Equal(t, "unknown", Action(-1).String())
	assert.Equal(t, "unknown", actionCount.String())

	_, err := ParseAction("jump")
	assert.ErrorContains(t, err, "jump")
}

func TestSnapshot_PressRelease(t *testing.T) {
	s := NewSnapshot()
	assert.False(t, s.IsHeld(ActionUp))

	s.Press(ActionUp)
	assert.True(t, s.IsHeld(ActionUp))
	assert.True(t, s.IsHeld(ActionUp), "reads are idempotent")

	s.Release(ActionUp)
	assert.False(t, s.IsHeld(ActionUp))

	s.Press(Action(99))
	assert.False(t, s.IsHeld(Action(99)))
}

func TestSnapshot_ConsumeLatchesUntilRelease(t *testing.T) {
	s := NewSnapshot()
	enter := Frame{Held: []Action{ActionConfirm}}

	s.Apply(enter)
	require.True(t, s.Consume(ActionConfirm))
	assert.False(t, s.Consume(ActionConfirm), "second consume in the same tick")

	// key still physically down on the next ticks
	s.Apply(enter)
	assert.False(t, s.IsHeld(ActionConfirm))
	s.Apply(enter)
	assert.False(t, s.Consume(ActionConfirm))

	// release, then press again
	s.Apply(Frame{})
	s.Apply(enter)
	assert.True(t, s.Consume(ActionConfirm))
}

func TestSnapshot_ApplyPointerAndAxis(t *testing.T) {
	s := NewSnapshot()

	s.Apply(Frame{
		Held:        []Action{ActionLeft, ActionRight, ActionDown},
		PointerX:    12,
		PointerY:    34,
		PointerDown: true,
	})

	assert.Equal(t, 0.0, s.Axis(ActionLeft, ActionRight))
	assert.Equal(t, 1.0, s.Axis(ActionUp, ActionDown))
	assert.Equal(t, 12, s.PointerX)
	assert.Equal(t, 34, s.PointerY)
	assert.True(t, s.PointerDown)

	s.Apply(Frame{Held: []Action{ActionUp}})
	assert.Equal(t, -1.0, s.Axis(ActionUp, ActionDown))
	assert.False(t, s.IsHeld(ActionLeft))
	assert.False(t, s.PointerDown)
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, km.Keys(ActionInteract))
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, km.Keys(ActionMenu))
	assert.Equal(t, []ebiten.Key{ebiten.KeyDigit9}, km.Keys(ActionSlot9))
	assert.Nil(t, km.Keys(actionCount))
}

func TestNewKeyMap(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.KeymapConfig
		wantErr string
		check   func(t *testing.T, km *KeyMap)
	}{
		{
			name: "nil config uses defaults",
			cfg:  nil,
			check: func(t *testing.T, km *KeyMap) {
				assert.Equal(t, []ebiten.Key{ebiten.KeyI}, km.Keys(ActionInventory))
			},
		},
		{
			name: "rebinds and keeps the rest",
			cfg: &config.KeymapConfig{Bindings: map[string][]string{
				"interact":  {"Z", "Space"},
				"inventory": {"Tab"},
			}},
			check: func(t *testing.T, km *KeyMap) {
				assert.Equal(t, []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace}, km.Keys(ActionInteract))
				assert.Equal(t, "Z/Space", km.Describe(ActionInteract))
				assert.Equal(t, "Tab", km.Describe(ActionInventory))
				assert.Equal(t, []ebiten.Key{ebiten.KeyArrowUp}, km.Keys(ActionUp))
			},
		},
		{
			name:    "unknown action",
			cfg:     &config.KeymapConfig{Bindings: map[string][]string{"fly": {"F"}}},
			wantErr: `unknown action "fly"`,
		},
		{
			name:    "unknown key",
			cfg:     &config.KeymapConfig{Bindings: map[string][]string{"up": {"Upwards"}}},
			wantErr: `unknown key "Upwards"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := NewKeyMap(tt.cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, km)
		})
	}
}

func TestNewKeyMap_ShippedConfig(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadKeymap()
	require.NoError(t, err)

	km, err := NewKeyMap(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Space", km.Describe(ActionInteract))
	assert.Equal(t, "1", km.Describe(ActionSlot1))
	assert.Equal(t, "Escape", km.Describe(ActionMenu))
}
