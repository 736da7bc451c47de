package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
)

func newSessionService(expiration time.Duration) *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "test-secret",
		Expiration: expiration,
		CookieName: "session",
		Issuer:     "faculty-locator-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "jdoe",
		FullName: "John Doe",
		Role:     models.RoleInstructor,
	}
}

func TestSessionIssueAndValidate(t *testing.T) {
	sessions := newSessionService(time.Hour)

	token, err := sessions.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "John Doe", claims.FullName)
	assert.Equal(t, models.RoleInstructor, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestSessionValidateWrongSecret(t *testing.T) {
	token, err := newSessionService(time.Hour).Issue(testUser())
	require.NoError(t, err)

	other := auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "different-secret",
		Expiration: time.Hour,
		CookieName: "session",
		Issuer:     "faculty-locator-test",
	})

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestSessionValidateExpired(t *testing.T) {
	sessions := newSessionService(-time.Minute)

	token, err := sessions.Issue(testUser())
	require.NoError(t, err)

	_, err = sessions.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestSessionValidateGarbage(t *testing.T) {
	sessions := newSessionService(time.Hour)

	_, err := sessions.Validate("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}
