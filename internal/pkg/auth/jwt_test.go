package auth_test

import (
	"testing"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, time.Hour)

	token, err := manager.Issue("user-123", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestTokenManager_Verify_ExpiredToken(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, -time.Minute)

	token, err := manager.Issue("user-123", "manager")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrTokenIsExpired)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager(testSecret, time.Hour)
	verifier := auth.NewTokenManager("another-secret", time.Hour)

	token, err := issuer.Issue("user-123", "manager")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrTokenIsInvalid)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	manager := auth.NewTokenManager(testSecret, time.Hour)

	_, err := manager.Verify("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrTokenIsInvalid)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Verify(hash, "secret123"))
	assert.Error(t, hasher.Verify(hash, "wrong-password"))
}

func TestPasswordHasher_HashesDiffer(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
