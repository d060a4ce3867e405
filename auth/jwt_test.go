package auth

import (
	"strings"
	"testing"
	"time"

	"Prescryber/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUser() models.User {
	return models.User{
		ID:          primitive.NewObjectID(),
		Name:        "Ada",
		Email:       "ada@x.com",
		AccountType: models.AccountTypePrescriber,
	}
}

func clockedService(t *testing.T) (*TokenService, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret")
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestVerifyWithinSessionWindow(t *testing.T) {
	svc, now := clockedService(t)
	user := testUser()

	token, err := svc.Issue(user, PurposeSession)
	require.NoError(t, err)

	for _, offset := range []time.Duration{0, time.Minute, 29 * time.Minute} {
		*now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(offset)
		identity, err := svc.Verify(token)
		require.NoError(t, err, "offset %s", offset)
		assert.Equal(t, user.Email, identity.Email)
		assert.Equal(t, user.Name, identity.Name)
		assert.Equal(t, user.AccountType, identity.AccountType)
		assert.Equal(t, user.ID.Hex(), identity.ID)
	}
}

func TestVerifyExpiredSession(t *testing.T) {
	svc, now := clockedService(t)

	token, err := svc.Issue(testUser(), PurposeSession)
	require.NoError(t, err)

	for _, offset := range []time.Duration{30 * time.Minute, time.Hour, 24 * time.Hour} {
		*now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(offset)
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired, "offset %s", offset)
	}
}

func TestResetTokenShortLifetime(t *testing.T) {
	svc, now := clockedService(t)

	token, err := svc.Issue(testUser(), PurposeReset)
	require.NoError(t, err)

	*now = now.Add(11 * time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	*now = now.Add(time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc, now := clockedService(t)

	token, err := svc.Issue(testUser(), PurposeSession)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// tampering wins over expiry, a forged token is never just "expired"
	*now = now.Add(48 * time.Hour)
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc, _ := clockedService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	svc, _ := clockedService(t)
	other := NewTokenService("different-secret")

	token, err := other.Issue(testUser(), PurposeSession)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssueIndependentTokens(t *testing.T) {
	svc, now := clockedService(t)
	user := testUser()

	first, err := svc.Issue(user, PurposeSession)
	require.NoError(t, err)

	*now = now.Add(time.Second)
	second, err := svc.Issue(user, PurposeSession)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// both remain valid on their own expiry clocks
	_, err = svc.Verify(first)
	assert.NoError(t, err)
	_, err = svc.Verify(second)
	assert.NoError(t, err)

	*now = now.Add(30*time.Minute - time.Second)
	_, err = svc.Verify(first)
	assert.ErrorIs(t, err, ErrTokenExpired)
	_, err = svc.Verify(second)
	assert.NoError(t, err)
}
