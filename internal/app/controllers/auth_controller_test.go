package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

func postForm(router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	deps := setupRouter(t)
	user := instructorUser()
	deps.authSvc.On("Login", mock.Anything, "jdoe", "password").Return(user, nil)

	rec := postForm(deps.router, "/login", url.Values{
		"username": {"jdoe"},
		"password": {"password"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/select", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == deps.sessions.CookieName() {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Positive(t, session.MaxAge)

	claims, err := deps.sessions.Validate(session.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleInstructor, claims.Role)

	deps.authSvc.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	deps := setupRouter(t)
	deps.authSvc.On("Login", mock.Anything, "jdoe", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials)

	rec := postForm(deps.router, "/login", url.Values{
		"username": {"jdoe"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	msg := flashFrom(t, rec.Result().Cookies())
	require.NotNil(t, msg)
	assert.Equal(t, flash.CategoryError, msg.Category)
	assert.Equal(t, "Invalid username or password.", msg.Text)
}

func TestLogin_MissingFields(t *testing.T) {
	deps := setupRouter(t)

	rec := postForm(deps.router, "/login", url.Values{"username": {"jdoe"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	msg := flashFrom(t, rec.Result().Cookies())
	require.NotNil(t, msg)
	assert.Equal(t, "Invalid username or password.", msg.Text)

	deps.authSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout_ClearsSession(t *testing.T) {
	deps := setupRouter(t)

	rec := get(deps.router, "/logout", sessionCookie(t, deps.sessions, instructorUser()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == deps.sessions.CookieName() {
			session = cookie
		}
	}
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}

func TestIndex_Routing(t *testing.T) {
	deps := setupRouter(t)

	rec := get(deps.router, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = get(deps.router, "/", sessionCookie(t, deps.sessions, studentUser()))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/select", rec.Header().Get("Location"))

	rec = get(deps.router, "/", &http.Cookie{Name: deps.sessions.CookieName(), Value: "garbage"})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRoleSelect_RequiresSession(t *testing.T) {
	deps := setupRouter(t)

	rec := get(deps.router, "/select")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRoleSelect_ReturnsSessionInfo(t *testing.T) {
	deps := setupRouter(t)
	user := instructorUser()

	rec := get(deps.router, "/select", sessionCookie(t, deps.sessions, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullName":"John Doe"`)
	assert.Contains(t, rec.Body.String(), `"role":"instructor"`)
}
