package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/track-server/internal/service"
)

type testCLI struct {
	dbPath string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	return &testCLI{dbPath: filepath.Join(t.TempDir(), "tracks.db")}
}

func (tc *testCLI) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"tracker", "--db", tc.dbPath}, args...))
	return stdout.String(), stderr.String(), err
}

func TestCLI_AddListShowDelete(t *testing.T) {
	tc := newTestCLI(t)

	out, _, err := tc.run(t, "add", "--title", "Groceries", "--amount", "12.50", "--category", "food")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, _, err = tc.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "Food")

	out, _, err = tc.run(t, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "title:    Groceries")
	assert.Contains(t, out, "date:     -")

	out, _, err = tc.run(t, "show", "--raw", id)
	require.NoError(t, err)
	assert.Contains(t, out, "service.Track")

	_, _, err = tc.run(t, "delete", id)
	require.NoError(t, err)

	out, _, err = tc.run(t, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, id)
}

func TestCLI_AddRejectedKeystrokesWarn(t *testing.T) {
	tc := newTestCLI(t)

	out, stderr, err := tc.run(t, "add", "--title", "Groceries", "--amount", "12.555")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Amount keystrokes rejected")

	out, _, err = tc.run(t, "show", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, out, "amount:   12.55")
	assert.Contains(t, out, "category: Personal")
}

func TestCLI_AddBlankTitle(t *testing.T) {
	tc := newTestCLI(t)

	_, _, err := tc.run(t, "add", "--title", "   ", "--amount", "4")

	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCLI_Update(t *testing.T) {
	tc := newTestCLI(t)

	out, _, err := tc.run(t, "add", "--title", "Bus", "--amount", "2.80", "--date", "2025-01-10")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	out, _, err = tc.run(t, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "date:     2025-01-10")

	_, _, err = tc.run(t, "update", "--amount", "3.10", "--category", "Transport", "--clear-date", id)
	require.NoError(t, err)

	out, _, err = tc.run(t, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "title:    Bus")
	assert.Contains(t, out, "amount:   3.10")
	assert.Contains(t, out, "category: Transport")
	assert.Contains(t, out, "date:     -")
}

func TestCLI_UpdateMissingTrack(t *testing.T) {
	tc := newTestCLI(t)

	_, _, err := tc.run(t, "update", "--title", "Ghost", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	var notFound *service.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCLI_SeparatorOfOtherLocaleIsDropped(t *testing.T) {
	tc := newTestCLI(t)

	out, stderr, err := tc.run(t, "add", "--title", "Bus", "--amount", "2,80")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Amount keystrokes rejected")

	out, _, err = tc.run(t, "show", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, out, "amount:   280.00")
}

func TestCLI_CommaLocale(t *testing.T) {
	tc := newTestCLI(t)

	out, _, err := tc.run(t, "--locale", "de-DE", "add", "--title", "Kaffee", "--amount", "3,20")
	require.NoError(t, err)

	out, _, err = tc.run(t, "--locale", "de-DE", "show", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, out, "amount:   3,20")
}

func TestCLI_Categories(t *testing.T) {
	tc := newTestCLI(t)

	out, _, err := tc.run(t, "categories")
	require.NoError(t, err)
	assert.Equal(t, "Personal\nHobby\nTransport\nFood\nInsurance\nSavings\n", out)
}

func TestCLI_CommandsWithoutTracksLeaveDatabaseAlone(t *testing.T) {
	tc := newTestCLI(t)

	_, _, err := tc.run(t, "categories")
	require.NoError(t, err)
	_, _, err = tc.run(t, "--help")
	require.NoError(t, err)

	assert.NoFileExists(t, tc.dbPath)
}

func TestCLI_ListPaging(t *testing.T) {
	tc := newTestCLI(t)

	for _, title := range []string{"Rent", "Bus", "Lunch"} {
		_, _, err := tc.run(t, "add", "--title", title, "--amount", "1")
		require.NoError(t, err)
	}

	out, _, err := tc.run(t, "list", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "Bus")
	assert.NotContains(t, out, "Lunch")
	assert.Contains(t, out, "more: --position 2 --limit 2")

	out, _, err = tc.run(t, "list", "--position", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch")
	assert.NotContains(t, out, "Rent")

	_, _, err = tc.run(t, "list", "--limit", "10", "--position=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position")
}
