package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_RejectsPortOutOfRange(t *testing.T) {
	t.Cleanup(func() { serveCmd.Flags().Set("port", "8080") })

	for _, port := range []string{"0", "70000"} {
		t.Run(port, func(t *testing.T) {
			_, err := execute(t, "serve", "--port", port)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "http.port out of range")
		})
	}
}

func TestMCPCommand_RejectsInvalidOverrides(t *testing.T) {
	t.Cleanup(func() {
		mcpCmd.Flags().Set("transport", "stdio")
		mcpCmd.Flags().Set("port", "8080")
	})

	_, err := execute(t, "mcp", "--transport", "sse", "--port", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mcp.port out of range")

	_, err = execute(t, "mcp", "--transport", "tcp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mcp.transport must be stdio or sse")
}
