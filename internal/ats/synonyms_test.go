package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexFor(cv string) cvIndex {
	return newCVIndex(cv, extractKeywords(cv, stopSet{}))
}

func TestKeywordMatchIsSymmetricForAbbreviations(t *testing.T) {
	t.Parallel()

	assert.True(t, indexFor("Senior javascript engineer").matches("JS"))
	assert.True(t, indexFor("Senior JS engineer").matches("JavaScript"))
	assert.True(t, indexFor("Ran workloads on k8s").matches("Kubernetes"))
	assert.True(t, indexFor("Ran workloads on Kubernetes").matches("k8s"))
}

func TestKeywordMatchRoleVariants(t *testing.T) {
	t.Parallel()

	ix := indexFor("Led project management for three delivery teams")
	assert.True(t, ix.matches("project manager"))
	assert.True(t, ix.matches("Management"))
	assert.False(t, ix.matches("kotlin"))
}

func TestKeywordMatchNormalizedTokens(t *testing.T) {
	t.Parallel()

	ix := indexFor("Modern C++ and .NET developer")
	assert.True(t, ix.matches("C++"))
	assert.True(t, ix.matches(".NET"))
	assert.False(t, ix.matches("C#"))
}

func TestExpansions(t *testing.T) {
	t.Parallel()

	assert.Contains(t, expansions("k8s"), "kubernetes")
	assert.Contains(t, expansions("kubernetes"), "k8s")
	assert.Contains(t, expansions("manager"), "management")
	assert.Contains(t, expansions("engineering manager"), "engineer manager")
	assert.Contains(t, expansions("engineering manager"), "engineering management")
}
