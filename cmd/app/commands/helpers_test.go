package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadArgs(t *testing.T) {
	t.Run("args-passthrough", func(t *testing.T) {
		args, err := ReadArgs([]string{"1", "2"}, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, args)
	})

	t.Run("stdin", func(t *testing.T) {
		args, err := ReadArgs([]string{"-"}, strings.NewReader("42\n12345  0\r\n\n7"))
		require.NoError(t, err)
		assert.Equal(t, []string{"42", "12345", "0", "7"}, args)
	})

	t.Run("empty-stdin", func(t *testing.T) {
		args, err := ReadArgs([]string{"-"}, strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, args)
	})
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("json"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}
