package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json формат", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newWithOutput("debug", "json", &buf)
		require.NoError(t, err)

		Component(log, "draft").WithField("team_id", 3).Info("player drafted")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "draft", entry["component"])
		assert.Equal(t, float64(3), entry["team_id"])
		assert.Equal(t, "player drafted", entry["msg"])
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	})

	t.Run("уровень фильтрует записи", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newWithOutput("warn", "text", &buf)
		require.NoError(t, err)

		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("неизвестный уровень", func(t *testing.T) {
		_, err := New("loud", "text")
		assert.Error(t, err)
	})

	t.Run("неизвестный формат", func(t *testing.T) {
		_, err := New("info", "xml")
		assert.Error(t, err)
	})
}
