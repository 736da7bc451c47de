package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFlashRoundTrip(t *testing.T) {
	// First request sets the message
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/instructor/status", nil)

	flash.Success(c, "Status updated to Out.")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Second request carries the cookie and pops the message
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/instructor", nil)
	for _, cookie := range cookies {
		c2.Request.AddCookie(cookie)
	}

	msg := flash.Pop(c2)
	require.NotNil(t, msg)
	assert.Equal(t, flash.CategorySuccess, msg.Category)
	assert.Equal(t, "Status updated to Out.", msg.Text)

	// Pop clears the cookie
	cleared := false
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestFlashPopWithoutCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/login", nil)

	assert.Nil(t, flash.Pop(c))
}

func TestFlashPopGarbageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/login", nil)
	c.Request.AddCookie(&http.Cookie{Name: "flash", Value: "%%%not-base64%%%"})

	assert.Nil(t, flash.Pop(c))
}
