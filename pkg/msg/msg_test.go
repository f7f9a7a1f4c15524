package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "messages.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
todo:
  error:
    not-found: "Todo {0} not found"
  count: "User {0} has {1} items"
`), 0o600))

	Init(file)

	assert.Equal(t, "Todo abc-123 not found", GetMessage("todo.error.not-found", "abc-123"))
	assert.Equal(t, "User u1 has 3 items", GetMessage("todo.count", "u1", 3))
	assert.Equal(t, "Message not found: todo.missing", GetMessage("todo.missing"))
}
