package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewLogger(WARNING)
	l.Debugf("hidden %d", 1)
	l.Infof("also hidden")
	l.Warnf("shown %s", "once")
	l.Errorf("and this")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "WARNING | shown once")
	require.Contains(t, out, "ERROR | and this")
}

func TestLoggerSilence(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewLogger(SILENCE)
	l.Errorf("nothing at all")

	require.Empty(t, buf.String())
}

func TestLevelFor(t *testing.T) {
	require.Equal(t, DEBUG, LevelFor("local"))
	require.Equal(t, INFO, LevelFor("production"))
	require.Equal(t, INFO, LevelFor(""))
}
