package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteCommand(t *testing.T) {
	t.Run("command exists and has correct structure", func(t *testing.T) {
		cmd := newCompleteCmd()
		assert.Equal(t, "complete <id>", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
	})

	t.Run("completes a pending todo", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := runInDir(t, tmpDir, "add", "Task")
		require.NoError(t, err)

		out, err := runInDir(t, tmpDir, "complete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ Completed todo #1")

		out, err = runInDir(t, tmpDir, "list", "--completed", "true")
		require.NoError(t, err)
		assert.Contains(t, out, "Task")
	})

	t.Run("reports not found", func(t *testing.T) {
		tmpDir := t.TempDir()

		_, err := runInDir(t, tmpDir, "complete", "999")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("reports already completed", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := runInDir(t, tmpDir, "add", "Task")
		require.NoError(t, err)
		_, err = runInDir(t, tmpDir, "complete", "1")
		require.NoError(t, err)

		_, err = runInDir(t, tmpDir, "complete", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already completed")
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		_, err := runInDir(t, t.TempDir(), "complete", "abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid todo id")
	})
}
