// Package moods holds the vocabulary of known moods, split into the five
// Daylio mood groups. The group a mood belongs to drives the optional
// colour-coding of rendered entries.
package moods

import (
	"encoding/json"
	"fmt"
	"os"
)

// GroupNames lists the Daylio mood groups, best to worst. A custom mood
// file must provide every one of these keys.
var GroupNames = []string{"rad", "good", "neutral", "bad", "awful"}

// groupColours maps a group index to its colour emoji, best to worst.
var groupColours = []string{"🟣", "🟢", "🔵", "🟠", "🔴"}

// Set maps each mood group to the moods belonging to it.
type Set map[string][]string

// Standard returns the fallback vocabulary: each group containing
// exactly its own name.
func Standard() Set {
	set := make(Set, len(GroupNames))
	for _, name := range GroupNames {
		set[name] = []string{name}
	}
	return set
}

// Load reads a custom mood set from a JSON file shaped like
// {"rad": ["rad", "amazing"], "good": [...], ...}. Every group key must
// be present; extra keys are rejected to keep the set Daylio-compliant.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read moods file: %w", err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to decode moods file %s: %w", path, err)
	}

	for _, name := range GroupNames {
		if len(set[name]) == 0 {
			return nil, fmt.Errorf("moods file %s is incomplete: missing group %q", path, name)
		}
	}
	if len(set) != len(GroupNames) {
		return nil, fmt.Errorf("moods file %s contains unknown mood groups", path)
	}

	return set, nil
}

// IsStandard reports whether the set equals the fallback vocabulary.
func (s Set) IsStandard() bool {
	if len(s) != len(GroupNames) {
		return false
	}
	for _, name := range GroupNames {
		group := s[name]
		if len(group) != 1 || group[0] != name {
			return false
		}
	}
	return true
}

// Contains reports whether the mood belongs to any group of the set.
func (s Set) Contains(mood string) bool {
	return s.GroupIndex(mood) >= 0
}

// GroupIndex returns the index of the group the mood belongs to
// (0 = best, 4 = worst), or -1 when the mood is unknown.
func (s Set) GroupIndex(mood string) int {
	for i, name := range GroupNames {
		for _, known := range s[name] {
			if known == mood {
				return i
			}
		}
	}
	return -1
}

// Colour returns the colour emoji for the mood's group, or the empty
// string when the mood is not in the set.
func (s Set) Colour(mood string) string {
	idx := s.GroupIndex(mood)
	if idx < 0 {
		return ""
	}
	return groupColours[idx]
}
