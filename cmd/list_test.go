package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runList(t *testing.T, exclude string, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, RunList(&out, &errOut, args, exclude))
	return out.String(), errOut.String()
}

func TestList_FeaturesAndScenarios(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/login.feature", `@auth
Feature: Login
  @smoke
  Scenario: User logs in
    Given a user

  Scenario: User fails login
    Given a bad password
`)

	out, _ := runList(t, "", "features/*.feature")

	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "@auth")
	assert.Contains(t, out, "features/login.feature:4")
	assert.Contains(t, out, "User logs in")
	assert.Contains(t, out, "@smoke")
	assert.Contains(t, out, "features/login.feature:7")
}

func TestList_AlignsColumns(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/a.feature", `Feature: A
  Scenario: Short
  @x
  Scenario: A much longer name
`)

	out, _ := runList(t, "", "features/a.feature")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  features/a.feature:2  Short", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  features/a.feature:4  A much longer name"))
}

func TestList_HonorsExclude(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/a.feature", `Feature: A
  Scenario: Kept
  @wip
  Scenario: Hidden
`)
	writeFeature(t, "features/b.feature", "@wip\nFeature: B\n  Scenario: Also hidden\n")

	out, _ := runList(t, "wip", "features/*.feature")

	assert.Contains(t, out, "Kept")
	assert.NotContains(t, out, "Hidden")
	assert.NotContains(t, out, "Also hidden")
}

func TestList_ReportsSkippedFiles(t *testing.T) {
	inTempDir(t)
	writeFeature(t, "features/bad.feature", "not gherkin\n")

	out, errOut := runList(t, "", "features/bad.feature")

	assert.Empty(t, out)
	assert.Contains(t, errOut, "features/bad.feature")
}

func TestList_RequiresFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	err := RunList(&out, &errOut, nil, "")
	require.Error(t, err)
}
