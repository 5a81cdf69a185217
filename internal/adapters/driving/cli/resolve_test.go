package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenmin92/JsonPathNavigator/internal/core/domain"
)

func TestResolveCmd_Use(t *testing.T) {
	assert.Equal(t, "resolve [path]", resolveCmd.Use)
}

func TestResolveCmd_Short(t *testing.T) {
	assert.Equal(t, "Resolve a dotted path across the corpus", resolveCmd.Short)
}

func TestResolveCmd_Long(t *testing.T) {
	assert.Contains(t, resolveCmd.Long, "dotted key path")
	assert.Contains(t, resolveCmd.Long, "1-based line")
	assert.Contains(t, resolveCmd.Long, "preview")
}

func TestResolveCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"resolve"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestResolveCmd_HasJSONFlag(t *testing.T) {
	flag := resolveCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestResolveCmd_ExecutesWithPath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resolve", "a.b.c"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "one.json:2: c: 1")
}

func TestResolveCmd_MatchesAcrossDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resolve", "a.b"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "one.json:2: b: { ... }")
	assert.Contains(t, buf.String(), "two.json:1: b: 2")
}

func TestResolveCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resolve", "no.such.path"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestResolveCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"resolve", "--json", "a.b.c"})
	defer func() {
		rootCmd.SetArgs(nil)
		resolveJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"document_id\": \"doc-1\"")
	assert.Contains(t, buf.String(), "\"path\": \"a.b.c\"")
	assert.Contains(t, buf.String(), "\"line\": 2")
}

func TestResolveCmd_ServiceError(t *testing.T) {
	oldService := searchService
	searchService = &mockSearchServiceError{}
	defer func() {
		searchService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"resolve", "a.b"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resolve failed")
}

func TestOutputResultsTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputResultsTable(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestOutputResultsTable_WithResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	results := []domain.SearchResult{
		{
			DocumentID: "doc-1",
			URI:        "config/app.json",
			Path:       "server.port",
			Preview:    "port: 8080",
			Line:       12,
		},
	}

	err := outputResultsTable(rootCmd, results)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "[1] config/app.json:12")
	assert.Contains(t, buf.String(), "port: 8080")
}

func TestOutputResultsPlain_WithResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	results := []domain.SearchResult{
		{URI: "a.json", Path: "x.y", Preview: "y: true", Line: 3},
		{URI: "b.json", Path: "x.y", Preview: "y: false", Line: 7},
	}

	err := outputResultsPlain(rootCmd, results)

	assert.NoError(t, err)
	assert.Equal(t, "a.json:3: y: true\nb.json:7: y: false\n", buf.String())
}
