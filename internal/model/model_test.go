package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "octocat", NormalizeUsername("OctoCat"))
	assert.Equal(t, "octocat", NormalizeUsername("  octocat  "))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestUserSet(t *testing.T) {
	set := NewUserSet("Alice", "BOB")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("alice"))
	assert.True(t, set.Contains("Bob"))
	assert.False(t, set.Contains("carol"))

	set.Add("alice")
	assert.Equal(t, 2, set.Len())

	set.Add("Carol")
	assert.True(t, set.Contains("carol"))
	assert.Equal(t, 3, set.Len())
}

func TestActionKind_IsValid(t *testing.T) {
	assert.True(t, ActionKindFollow.IsValid())
	assert.True(t, ActionKindUnfollow.IsValid())
	assert.False(t, ActionKind("block").IsValid())
}

func TestRunSummary_HasChanges(t *testing.T) {
	summary := &RunSummary{}
	assert.False(t, summary.HasChanges())

	summary.Followed = []string{"alice"}
	assert.True(t, summary.HasChanges())

	summary = &RunSummary{Failed: []string{"ghost"}}
	assert.True(t, summary.HasChanges())
}
