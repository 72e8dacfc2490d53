package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogConsoleOutput(t *testing.T) {
	splog := NewSplog()
	var out bytes.Buffer
	splog.SetWriter(&out)

	splog.Info("pushed %d branches", 3)
	splog.Warn("branch %s has fallen behind", "demo-1")
	splog.Error("push failed")

	s := out.String()
	require.Contains(t, s, "pushed 3 branches")
	require.Contains(t, s, "⚠️  branch demo-1 has fallen behind")
	require.Contains(t, s, "❌ push failed")
}

func TestSplogQuietSuppressesConsole(t *testing.T) {
	splog := NewSplog()
	var out bytes.Buffer
	splog.SetWriter(&out)

	splog.SetQuiet(true)
	splog.Info("hidden")
	require.Empty(t, out.String())

	splog.SetQuiet(false)
	splog.Info("visible")
	require.Contains(t, out.String(), "visible")
}

func TestSplogDebugHiddenByDefault(t *testing.T) {
	t.Setenv("DEBUG", "")

	splog := NewSplog()
	var out bytes.Buffer
	splog.SetWriter(&out)

	splog.Debug("tracing rebase plan")
	require.Empty(t, out.String())
}

func TestSplogDebugShownWithEnv(t *testing.T) {
	t.Setenv("DEBUG", "1")

	splog := NewSplog()
	var out bytes.Buffer
	splog.SetWriter(&out)

	splog.Debug("tracing rebase plan")
	require.Contains(t, out.String(), "tracing rebase plan")
}
