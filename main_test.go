package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

func TestVersionCmd(t *testing.T) {
	// Given: the root command asked for its version
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	// When: executing it
	err := root.Execute()

	// Then: the version is printed
	require.NoError(t, err)
	assert.Equal(t, "tictactoe dev\n", out.String())
}

func TestPlayCmd(t *testing.T) {
	// Given: a scripted game on stdin and no config file
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader("0\n3\n1\n4\n2\nq\n"))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"play", "--config", filepath.Join(t.TempDir(), "missing.yml")})

	// When: executing the play command
	err := root.Execute()

	// Then: X wins and the board went to stdout only
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Winner: X")
	assert.NotContains(t, errOut.String(), "---+---+---")
}

func TestPlayCmd_RejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"play", "extra"})

	assert.Error(t, root.Execute())
}

func TestInitLogger(t *testing.T) {
	// Given: a warn-level config
	var out bytes.Buffer
	logger := initLogger(&config.Config{LogLevel: "warn"}, &out)

	// When: logging below and at the level
	logger.Info("hidden")
	logger.Warn("shown")

	// Then: only the warning is written, as JSON
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"msg":"shown"`)
}
