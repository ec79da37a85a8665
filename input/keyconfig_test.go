package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyBindings(t *testing.T) {
	kt, err := ParseKeyBindings(map[string]string{
		"j":     "move_left",
		"space": "none",
		"Enter": "shoot",
		"5":     "camera_2",
	})
	require.NoError(t, err)

	assert.Equal(t, DirLeft, kt.Runes['j'].Direction)
	assert.Equal(t, BehaviorNone, kt.Runes[' '].Behavior)
	assert.Equal(t, IntentShoot, kt.SpecialKeys[tcell.KeyEnter].Intent)
	assert.Equal(t, 2, kt.Runes['5'].Preset)
}

func TestParseKeyBindingsErrors(t *testing.T) {
	_, err := ParseKeyBindings(map[string]string{"x": "dunk"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = ParseKeyBindings(map[string]string{"NotAKey": "shoot"})
	assert.ErrorContains(t, err, "unknown key name")
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := ParseKeyBindings(map[string]string{
		"space": "none",
		"Enter": "shoot",
	})
	require.NoError(t, err)

	merged := MergeKeyTable(base, override)

	_, ok := merged.Runes[' ']
	assert.False(t, ok, "none unbinds the key")
	assert.Equal(t, IntentShoot, merged.SpecialKeys[tcell.KeyEnter].Intent)
	assert.Equal(t, IntentReset, merged.Runes['r'].Intent)

	// Base is untouched
	assert.Equal(t, IntentShoot, base.Runes[' '].Intent)
	_, ok = base.SpecialKeys[tcell.KeyEnter]
	assert.False(t, ok)
}

func TestActionRegistryCoversDefaults(t *testing.T) {
	intents := make(map[IntentType]bool)
	for _, name := range ActionNames() {
		e, ok := ActionEntry(name)
		require.True(t, ok)
		intents[e.Intent] = true
	}
	for _, e := range DefaultKeyTable().Runes {
		assert.True(t, intents[e.Intent], "intent %s has no action name", e.Intent)
	}
}
