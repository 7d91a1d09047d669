package glob

import (
	"testing"

	"github.com/ImSingee/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	t.Run("base name", func(t *testing.T) {
		m, err := Compile("*.apk")
		require.NoError(t, err)
		tt.AssertEqual(t, "*.apk", m.Pattern())

		assert.True(t, m.Match("repo/apk/dokusho-v1.4.1.apk"))
		assert.True(t, m.Match(".dokusho-v1.4.1.apk"))
		assert.False(t, m.Match("repo/apk/readme.txt"))
		assert.False(t, m.Match("dokusho.APK"))
	})

	t.Run("with separator", func(t *testing.T) {
		m, err := Compile("apk/*.apk")
		require.NoError(t, err)

		assert.True(t, m.Match("apk/a.apk"))
		assert.False(t, m.Match("apk/nested/a.apk"))
		assert.False(t, m.Match("a.apk"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Compile("[a-")
		require.Error(t, err)
	})
}
