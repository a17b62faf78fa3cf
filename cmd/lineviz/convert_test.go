package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		convertCmd.Flags().Set("trace", "false")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "A+B*C")
	require.NoError(t, err)
	assert.Equal(t, "ABC*+\n", out)
}

func TestConvertCommand_Trace(t *testing.T) {
	out, err := execute(t, "convert", "--trace", "(A+B)")
	require.NoError(t, err)
	assert.Contains(t, out, "Pushed opening parenthesis onto stack")
	assert.Contains(t, out, "AB+\n")
}

func TestConvertCommand_Malformed(t *testing.T) {
	_, err := execute(t, "convert", "A+B)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion failed")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lineviz version")
}
