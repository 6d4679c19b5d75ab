package termgfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// graphicsEnvVars are every variable the detector looks at; tests clear
// them all before setting their own combination.
var graphicsEnvVars = []string{"TERM", "KITTY_WINDOW_ID", "WEZTERM_EXECUTABLE", "TERM_PROGRAM"}

func setTestEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for _, name := range graphicsEnvVars {
		t.Setenv(name, "")
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected Capability
	}{
		{
			name:     "kitty via TERM",
			envVars:  map[string]string{"TERM": "xterm-kitty"},
			expected: Kitty,
		},
		{
			name:     "kitty via KITTY_WINDOW_ID",
			envVars:  map[string]string{"KITTY_WINDOW_ID": "1"},
			expected: Kitty,
		},
		{
			name:     "wezterm via executable path",
			envVars:  map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui"},
			expected: ITerm2,
		},
		{
			name:     "iTerm2 via TERM_PROGRAM",
			envVars:  map[string]string{"TERM_PROGRAM": "iTerm.app"},
			expected: ITerm2,
		},
		{
			name: "kitty wins over wezterm",
			envVars: map[string]string{
				"TERM":               "xterm-kitty",
				"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
			},
			expected: Kitty,
		},
		{
			name:     "plain xterm is unsupported",
			envVars:  map[string]string{"TERM": "xterm-256color"},
			expected: Unsupported,
		},
		{
			name:     "empty environment is unsupported",
			envVars:  map[string]string{},
			expected: Unsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t, tt.envVars)
			ResetDetection()
			assert.Equal(t, tt.expected, Detect())
		})
	}
}

func TestDetectIsMemoized(t *testing.T) {
	setTestEnv(t, map[string]string{"TERM": "xterm-kitty"})
	ResetDetection()
	t.Cleanup(ResetDetection)

	assert.Equal(t, Kitty, Detect())

	// Later environment changes must not affect the cached result.
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "iTerm.app")
	assert.Equal(t, Kitty, Detect())
}

func TestCapabilityStrings(t *testing.T) {
	assert.Equal(t, "kitty", Kitty.String())
	assert.Equal(t, "iterm2", ITerm2.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}

func TestEncoderFor(t *testing.T) {
	assert.IsType(t, &KittyEncoder{}, EncoderFor(Kitty))
	assert.IsType(t, &ITerm2Encoder{}, EncoderFor(ITerm2))
	assert.Nil(t, EncoderFor(Unsupported))
}
