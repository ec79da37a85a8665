package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
}

// specialKeysByName is the lowercase reverse of tcell.KeyNames
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyBindings converts key → action name bindings into a sparse override KeyTable
// Keys are single characters, rune aliases, or tcell key names ("Up", "Ctrl-C", "Esc")
// Returns error on unknown action names or invalid key names
func ParseKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for keyStr, actionName := range bindings {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", keyStr)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = entry
			continue
		}

		k, ok := specialKeysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, errors.Errorf("unknown key name: %q", keyStr)
		}
		kt.SpecialKeys[k] = entry
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, errors.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Behavior == BehaviorNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
