package moods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMoodsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moods.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStandard(t *testing.T) {
	set := Standard()

	assert.True(t, set.IsStandard())
	for _, name := range GroupNames {
		assert.True(t, set.Contains(name))
	}
	assert.False(t, set.Contains("amazing"))
}

func TestLoad(t *testing.T) {
	t.Run("loads a complete custom set", func(t *testing.T) {
		path := writeMoodsFile(t, `{
			"rad": ["rad", "amazing"],
			"good": ["good", "relaxed"],
			"neutral": ["neutral", "meh"],
			"bad": ["bad", "tired"],
			"awful": ["awful", "sick"]
		}`)

		set, err := Load(path)
		require.NoError(t, err)

		assert.False(t, set.IsStandard())
		assert.True(t, set.Contains("amazing"))
		assert.True(t, set.Contains("meh"))
		assert.False(t, set.Contains("flabbergasted"))
	})

	t.Run("rejects a set missing a group", func(t *testing.T) {
		path := writeMoodsFile(t, `{"rad": ["rad"], "good": ["good"]}`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incomplete")
	})

	t.Run("rejects unknown groups", func(t *testing.T) {
		path := writeMoodsFile(t, `{
			"rad": ["rad"], "good": ["good"], "neutral": ["neutral"],
			"bad": ["bad"], "awful": ["awful"], "ecstatic": ["ecstatic"]
		}`)

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		path := writeMoodsFile(t, `{"rad": [`)

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestGroupLookups(t *testing.T) {
	set := Set{
		"rad":     {"rad", "amazing"},
		"good":    {"good"},
		"neutral": {"neutral"},
		"bad":     {"bad"},
		"awful":   {"awful", "sick"},
	}

	assert.Equal(t, 0, set.GroupIndex("amazing"))
	assert.Equal(t, 4, set.GroupIndex("sick"))
	assert.Equal(t, -1, set.GroupIndex("flabbergasted"))

	assert.Equal(t, "🟣", set.Colour("rad"))
	assert.Equal(t, "🟢", set.Colour("good"))
	assert.Equal(t, "🔴", set.Colour("sick"))
	assert.Empty(t, set.Colour("flabbergasted"))
}
