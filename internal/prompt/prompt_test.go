package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var credentialFields = []Field{
	{Name: "username", Description: "Hecate username"},
	{Name: "password", Description: "Hecate password", Secret: true},
}

func TestTerminalGet(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminal(strings.NewReader("ingalls\r\nyeaheh\n"))
	require.NoError(t, p.Start(&out, "$"))
	defer p.Stop()

	values, err := p.Get(credentialFields)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"username": "ingalls", "password": "yeaheh"}, values)
	assert.Equal(t, "$ username (Hecate username): $ password (Hecate password): ", out.String())
}

func TestTerminalEmptyAnswers(t *testing.T) {
	p := NewTerminal(strings.NewReader("\n\n"))
	require.NoError(t, p.Start(&bytes.Buffer{}, ""))
	values, err := p.Get(credentialFields)
	require.NoError(t, err)
	assert.Equal(t, "", values["username"])
	assert.Equal(t, "", values["password"])
}

func TestTerminalLastLineWithoutNewline(t *testing.T) {
	p := NewTerminal(strings.NewReader("only"))
	require.NoError(t, p.Start(&bytes.Buffer{}, "$"))
	values, err := p.Get(credentialFields[:1])
	require.NoError(t, err)
	assert.Equal(t, "only", values["username"])
}

func TestTerminalUnavailable(t *testing.T) {
	t.Run("closed input", func(t *testing.T) {
		p := NewTerminal(strings.NewReader(""))
		require.NoError(t, p.Start(&bytes.Buffer{}, "$"))
		_, err := p.Get(credentialFields)
		assert.ErrorIs(t, err, ErrPromptUnavailable)
		p.Stop()
		p.Stop()
	})

	t.Run("no input", func(t *testing.T) {
		p := NewTerminal(nil)
		assert.ErrorIs(t, p.Start(&bytes.Buffer{}, "$"), ErrPromptUnavailable)
		p.Stop()
	})

	t.Run("not started", func(t *testing.T) {
		p := NewTerminal(strings.NewReader("x\n"))
		_, err := p.Get(credentialFields)
		assert.ErrorIs(t, err, ErrPromptUnavailable)
	})
}
