package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDigestCommandPrintsReport(t *testing.T) {
	out, err := runCLI(t, "digest", "--format", "pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "# MVP90 LP Digest - Week of ")
	assert.Contains(t, out, "## Market Insights")
}

func TestDigestCommandRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "digest", "--format", "docx")
	assert.Error(t, err)
}
