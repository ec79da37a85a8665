package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        {BehaviorSystem, 0, IntentQuit, 0},
		"toggle_mute": {BehaviorSystem, 0, IntentToggleMute, 0},
		"toggle_help": {BehaviorSystem, 0, IntentToggleHelp, 0},

		// Movement
		"move_left":    {BehaviorMove, DirLeft, IntentNone, 0},
		"move_right":   {BehaviorMove, DirRight, IntentNone, 0},
		"move_forward": {BehaviorMove, DirForward, IntentNone, 0},
		"move_back":    {BehaviorMove, DirBack, IntentNone, 0},

		// Shot
		"power_up":   {BehaviorAction, 0, IntentPowerUp, 0},
		"power_down": {BehaviorAction, 0, IntentPowerDown, 0},
		"shoot":      {BehaviorAction, 0, IntentShoot, 0},
		"reset":      {BehaviorAction, 0, IntentReset, 0},
		"new_game":   {BehaviorAction, 0, IntentNewGame, 0},

		// Camera
		"toggle_orbit": {BehaviorAction, 0, IntentToggleOrbit, 0},
		"camera_1":     {BehaviorAction, 0, IntentCameraPreset, 1},
		"camera_2":     {BehaviorAction, 0, IntentCameraPreset, 2},
		"camera_3":     {BehaviorAction, 0, IntentCameraPreset, 3},
		"camera_4":     {BehaviorAction, 0, IntentCameraPreset, 4},
	}
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns the registered action names, unsorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
