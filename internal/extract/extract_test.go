package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFenced_LanguageTagged(t *testing.T) {
	in := "Here:\n```hcl\nresource \"x\" {}\n```\nThanks"
	got := Fenced(in, "terraform", "hcl")
	assert.Equal(t, `resource "x" {}`, got)
}

func TestFenced_TaggedFenceWinsOverProse(t *testing.T) {
	in := "Sure! The file you asked for is below.\n\n```terraform\nprovider \"aws\" {\n  region = \"us-east-1\"\n}\n```\n\nLet me know if you need changes."
	got := Terraform(in)
	assert.Equal(t, "provider \"aws\" {\n  region = \"us-east-1\"\n}", got)
}

func TestFenced_GenericFence(t *testing.T) {
	in := "```\nFROM node:18-slim\n```"
	got := Fenced(in)
	assert.Equal(t, "FROM node:18-slim", got)
}

func TestFenced_UntaggedFenceWithLangHints(t *testing.T) {
	// The language tag is optional in the tagged pattern, so a bare fence
	// still matches when hints are supplied.
	in := "```\n#!/bin/bash\nset -e\n```"
	got := Script(in)
	assert.Equal(t, "#!/bin/bash\nset -e", got)
}

func TestFenced_InlineFence(t *testing.T) {
	in := "```echo hi```"
	got := Fenced(in)
	assert.Equal(t, "echo hi", got)
}

func TestFenced_NoFenceReturnsTrimmedInput(t *testing.T) {
	got := Fenced("  plain text  ")
	assert.Equal(t, "plain text", got)
}

func TestFenced_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Fenced(""))
	assert.Equal(t, "", Fenced("", "yaml"))
}

func TestFenced_Idempotent(t *testing.T) {
	in := "Prose before.\n```yaml\nkind: Service\n```\n"
	once := YAML(in)
	twice := YAML(once)
	assert.Equal(t, once, twice)
}

func TestFenced_FirstBlockWins(t *testing.T) {
	in := "```hcl\nfirst\n```\nsome prose\n```hcl\nsecond\n```"
	assert.Equal(t, "first", Terraform(in))
}

func TestSplitManifests_ThreeKinds(t *testing.T) {
	in := "kind: Deployment\nmetadata:\n  name: node-app\n---\nkind: Service\nmetadata:\n  name: node-app-service\n---\nkind: Ingress\nmetadata:\n  name: node-app-ingress"

	got, dropped := SplitManifests(in)
	require.Len(t, got, 3)
	assert.Zero(t, dropped)
	assert.Contains(t, got, "deployment")
	assert.Contains(t, got, "service")
	assert.Contains(t, got, "ingress")
	assert.Contains(t, got["service"], "node-app-service")
}

func TestSplitManifests_KindIsCaseFolded(t *testing.T) {
	got, _ := SplitManifests("kind: ConfigMap\ndata: {}")
	require.Len(t, got, 1)
	assert.Contains(t, got, "configmap")
}

func TestSplitManifests_DuplicateKindLastWriteWins(t *testing.T) {
	in := "kind: Service\nmetadata:\n  name: first\n---\nkind: Service\nmetadata:\n  name: second"

	got, dropped := SplitManifests(in)
	require.Len(t, got, 1)
	assert.Zero(t, dropped)
	assert.Contains(t, got["service"], "name: second")
}

func TestSplitManifests_MarkerFallbackOnUnparsableFragment(t *testing.T) {
	// Not valid YAML, but mentions Deployment: the literal marker assigns
	// the key.
	in := "here is your Deployment: {{{"

	got, dropped := SplitManifests(in)
	require.Len(t, got, 1)
	assert.Zero(t, dropped)
	assert.Contains(t, got, "deployment")
}

func TestSplitManifests_UnrecognizableFragmentDropped(t *testing.T) {
	in := "kind: Service\nmetadata: {}\n---\ntotally unrelated: prose {{{"

	got, dropped := SplitManifests(in)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, dropped)
}

func TestSplitManifests_BlankFragmentsIgnored(t *testing.T) {
	in := "---\n\n---\nkind: Ingress\nmetadata: {}\n---\n   \n"

	got, dropped := SplitManifests(in)
	assert.Len(t, got, 1)
	assert.Zero(t, dropped)
}

func TestSplitManifests_EmptyInput(t *testing.T) {
	got, dropped := SplitManifests("")
	assert.Empty(t, got)
	assert.Zero(t, dropped)
}
