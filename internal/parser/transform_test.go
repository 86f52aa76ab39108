package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gherkin-report/internal/feature"
)

func transform(t *testing.T, content string) *feature.Feature {
	t.Helper()
	doc, err := Parse([]byte(content))
	require.NoError(t, err)
	return Transform(doc, "login.feature")
}

func TestTransform_FeatureFields(t *testing.T) {
	doc, err := Parse([]byte(`@billing
Feature: Login
  Lets users in.
  Scenario: User logs in
    Given a user
`))
	require.NoError(t, err)
	f := Transform(doc, "features/login.feature")

	assert.Equal(t, "Login", f.Name)
	assert.Equal(t, "  Lets users in.", f.Description)
	assert.Equal(t, "features/login.feature", f.Path)
	assert.True(t, f.Tags.Has("@billing"))
}

func TestTransform_ScenarioTagsAndLine(t *testing.T) {
	f := transform(t, `Feature: Login

  @smoke @regression
  Scenario: User logs in
    Given a user
`)

	require.Len(t, f.Scenarios, 1)
	assert.Equal(t, "User logs in", f.Scenarios[0].Name)
	assert.Equal(t, []string{"@smoke", "@regression"}, f.Scenarios[0].Tags.Names())
	assert.Equal(t, 4, f.Scenarios[0].Line)
}

func TestTransform_FeatureTagsNotInherited(t *testing.T) {
	f := transform(t, `@billing
Feature: Login
  Scenario: User logs in
`)

	require.Len(t, f.Scenarios, 1)
	assert.False(t, f.Scenarios[0].Tags.Has("@billing"))
}

func TestTransform_BackgroundIsNotAScenario(t *testing.T) {
	f := transform(t, `Feature: Login
  Background:
    Given a registered user

  Scenario Outline: Log in as <role>
    Given a <role>

    Examples:
      | role  |
      | admin |
`)

	require.Len(t, f.Scenarios, 1)
	assert.Equal(t, "Log in as <role>", f.Scenarios[0].Name)
	assert.Equal(t, 5, f.Scenarios[0].Line)
}

func TestTransform_RulesFlattenedWithInheritedTags(t *testing.T) {
	f := transform(t, `Feature: Login
  Scenario: First

  @excludeFromReport
  Rule: Legacy
    Background:
      Given a legacy account

    Scenario: Second

    @smoke
    Scenario: Third
`)

	require.Len(t, f.Scenarios, 3)
	assert.Equal(t, "First", f.Scenarios[0].Name)
	assert.Equal(t, 0, f.Scenarios[0].Tags.Len())
	assert.Equal(t, []string{"@excludeFromReport"}, f.Scenarios[1].Tags.Names())
	assert.Equal(t, []string{"@excludeFromReport", "@smoke"}, f.Scenarios[2].Tags.Names())
	assert.Equal(t, 12, f.Scenarios[2].Line)
}

func TestTransform_OtherDialect(t *testing.T) {
	f := transform(t, `# language: fr
@interne
Fonctionnalité: Connexion
  Scénario: Un utilisateur se connecte
`)

	assert.Equal(t, "Connexion", f.Name)
	assert.True(t, f.Tags.Has("@interne"))
	require.Len(t, f.Scenarios, 1)
	assert.Equal(t, 4, f.Scenarios[0].Line)
}

func TestTransform_NoScenarios(t *testing.T) {
	f := transform(t, "Feature: Empty\n")

	require.NotNil(t, f)
	assert.NotNil(t, f.Scenarios)
	assert.Empty(t, f.Scenarios)
}

func TestTransform_NilDocument(t *testing.T) {
	assert.Nil(t, Transform(nil, "missing.feature"))
}
