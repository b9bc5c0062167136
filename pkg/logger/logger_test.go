package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.WithField("issue_id", "101").Debug("Fetching issue details")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fetching issue details", entry["message"])
	assert.Equal(t, "101", entry["issue_id"])
	assert.Equal(t, "debug", entry["level"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
