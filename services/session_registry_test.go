package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistryIssueAndValidate(t *testing.T) {
	reg := NewSessionRegistry()

	token, err := reg.Issue()
	require.NoError(t, err)
	assert.Len(t, token, 64, "256-bit token hex-encoded")
	assert.True(t, reg.Valid(token))

	other, err := reg.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
	assert.True(t, reg.Valid(other))
}

func TestSessionRegistryRevoke(t *testing.T) {
	reg := NewSessionRegistry()

	token, err := reg.Issue()
	require.NoError(t, err)

	reg.Revoke(token)
	assert.False(t, reg.Valid(token))

	// idempotent
	reg.Revoke(token)
	assert.False(t, reg.Valid(token))
}

func TestSessionRegistryRejectsUnknownTokens(t *testing.T) {
	reg := NewSessionRegistry()
	assert.False(t, reg.Valid(""))
	assert.False(t, reg.Valid("deadbeef"))
}
