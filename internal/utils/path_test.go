package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinPath(t *testing.T) {
	t.Run("absolute name is returned unchanged", func(t *testing.T) {
		assert.Equal(t, "/a/b.cc", JoinPath("", "/a/b.cc"))
		assert.Equal(t, "/a/b.cc", JoinPath("/work", "/a/b.cc"))
	})

	t.Run("empty base returns name unchanged", func(t *testing.T) {
		assert.Equal(t, "b.cc", JoinPath("", "b.cc"))
	})

	t.Run("relative name is joined with one separator", func(t *testing.T) {
		assert.Equal(t, "/work/b.cc", JoinPath("/work", "b.cc"))
	})

	t.Run("trailing separator is not doubled", func(t *testing.T) {
		assert.Equal(t, "/work/b.cc", JoinPath("/work/", "b.cc"))
	})

	t.Run("nested relative name", func(t *testing.T) {
		assert.Equal(t, "/repo/src/lib/b.cc", JoinPath("/repo", "src/lib/b.cc"))
	})
}
