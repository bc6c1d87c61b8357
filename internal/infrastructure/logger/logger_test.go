package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		env   string
		want  logrus.Level
	}{
		{"explicit", "debug", "", logrus.DebugLevel},
		{"explicit wins over env", "warn", "debug", logrus.WarnLevel},
		{"from env", "", "error", logrus.ErrorLevel},
		{"default", "", "", logrus.InfoLevel},
		{"invalid", "loud", "", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)

			log := New(tt.level, "text", &bytes.Buffer{})

			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "JSON", &buf)

	log.WithField("scene", "demo").Info("scene loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scene loaded", entry["msg"])
	assert.Equal(t, "demo", entry["scene"])
}

func TestNew_FormatFromEnv(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")

	log := New("", "", &bytes.Buffer{})

	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "text", &buf)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
