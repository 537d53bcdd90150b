package accessor

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansive/hecate/internal/authrules"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Options
		expected strategy
	}{
		{name: "nil options", opts: nil, expected: strategy{mode: ModeProgrammatic}},
		{name: "zero options", opts: &Options{}, expected: strategy{mode: ModeProgrammatic}},
		{name: "unknown mode", opts: &Options{Mode: Mode(7)}, expected: strategy{mode: ModeProgrammatic}},
		{name: "scripted", opts: &Options{Mode: ModeScripted}, expected: strategy{mode: ModeScripted, console: true}},
		{name: "interactive", opts: &Options{Mode: ModeInteractive}, expected: strategy{mode: ModeInteractive, prompt: true, console: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selectStrategy(tt.opts))
		})
	}
	assert.Equal(t, "programmatic", Mode(7).String())
}

func TestCallHonorsInteractiveMode(t *testing.T) {
	h := newHarness(t, http.StatusOK, `{"ok":true}`, restrictedRules)
	h.prompter.answers = map[string]string{
		authrules.FieldUsername: "ingalls",
		authrules.FieldPassword: "yeaheh",
	}

	result, err := h.acc.Call(context.Background(), MetaEndpoint, &Options{Mode: ModeInteractive})
	require.NoError(t, err)
	assert.True(t, result.Get("ok").Bool())
	assert.Equal(t, 1, h.prompter.started)
	assert.Equal(t, 1, h.prompter.stopped)
	assert.Equal(t, "ingalls", h.server.authUser)
	assert.Empty(t, h.stdout.String(), "Call never prints")
}
