//go:build !integration

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		patterns  string
		component string
		expected  bool
	}{
		{
			name:      "empty patterns match nothing",
			patterns:  "",
			component: "cli:init_command",
			expected:  false,
		},
		{
			name:      "star matches everything",
			patterns:  "*",
			component: "cli:init_command",
			expected:  true,
		},
		{
			name:      "exact component match",
			patterns:  "host:probe",
			component: "host:probe",
			expected:  true,
		},
		{
			name:      "prefix wildcard matches package",
			patterns:  "cli:*",
			component: "cli:list_command",
			expected:  true,
		},
		{
			name:      "prefix wildcard rejects other package",
			patterns:  "cli:*",
			component: "installer:invoke",
			expected:  false,
		},
		{
			name:      "comma separated list",
			patterns:  "host:detect, installer:*",
			component: "installer:invoke",
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matches(tt.patterns, tt.component)
			assert.Equal(t, tt.expected, result, "pattern match result should agree")
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	t.Run("disabled logger writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		log := &Logger{component: "test:off", enabled: false, out: &buf}
		log.Printf("value=%d", 42)
		log.Print("plain")
		assert.Empty(t, buf.String(), "disabled logger should produce no output")
	})

	t.Run("enabled logger prefixes component", func(t *testing.T) {
		var buf bytes.Buffer
		log := &Logger{component: "test:on", enabled: true, out: &buf}
		log.Printf("value=%d", 42)
		assert.Equal(t, "[test:on] value=42\n", buf.String(), "output should carry the component prefix")
	})
}
