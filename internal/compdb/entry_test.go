package compdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCommandEntryString(t *testing.T) {
	t.Run("full entry", func(t *testing.T) {
		entry := NewCommandEntry("/repo", []string{"clang++", "-c", "a.cc"}, "a.cc")
		assert.Equal(t,
			`{"directory":"/repo","arguments":["clang++","-c","a.cc"],"file":"a.cc"}`,
			entry.String())
	})

	t.Run("absent fields are omitted", func(t *testing.T) {
		entry := CommandEntry{Arguments: []string{"clang++"}}
		assert.Equal(t, `{"arguments":["clang++"]}`, entry.String())
	})
}

func TestCommandEntriesMarshal(t *testing.T) {
	t.Run("stable field order with trailing newline", func(t *testing.T) {
		entries := CommandEntries{
			NewCommandEntry("/repo", []string{"clang++", "-c", "a.cc", "-o", "a.o"}, "a.cc"),
		}
		data, err := entries.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `[
  {
    "directory": "/repo",
    "arguments": [
      "clang++",
      "-c",
      "a.cc",
      "-o",
      "a.o"
    ],
    "file": "a.cc"
  }
]
`, string(data))
	})

	t.Run("nil collection marshals as empty array", func(t *testing.T) {
		var entries CommandEntries
		data, err := entries.Marshal()
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})
}

func TestNewCommandEntryCopiesArguments(t *testing.T) {
	arguments := []string{"clang++", "-c", "a.cc"}
	entry := NewCommandEntry("/repo", arguments, "a.cc")
	arguments[1] = "-S"
	require.NotNil(t, entry.File)
	assert.Equal(t, []string{"clang++", "-c", "a.cc"}, entry.Arguments)
}
