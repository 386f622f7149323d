package iocli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapStdin redirects os.Stdin to the given content for one test.
func swapStdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	go func() {
		_, _ = w.Write([]byte(content))
		_ = w.Close()
	}()

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = old })
}

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestReadInput_TrimsLine(t *testing.T) {
	swapStdin(t, "  reader@listenup.example  \n")

	got, err := NewStdio().ReadInput("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "reader@listenup.example", got)
}

func TestReadPassword_FallsBackWhenNotATerminal(t *testing.T) {
	swapStdin(t, "hunter2hunter2\n")

	got, err := NewStdio().ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2hunter2", got)
}

func TestWrite(t *testing.T) {
	n, err := NewStdio().Write([]byte("progress\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}
