package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := NewAuthorizer(secret)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/guarded", a.Middleware(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpenModeWhenUnconfigured(t *testing.T) {
	r := newRouter(t, "")
	w := do(r, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRejectsMissingOrWrongKey(t *testing.T) {
	r := newRouter(t, "s3cret")

	w := do(r, httptest.NewRequest(http.MethodPost, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAPIKey, "wrong")
	assert.Equal(t, http.StatusForbidden, do(r, req).Code)
}

func TestAcceptsKeyFromEverySource(t *testing.T) {
	r := newRouter(t, "s3cret")

	body := `{"apiKey":"s3cret","discordId":"1"}`
	w := do(r, httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String(), "body must be restored for the handler")

	w = do(r, httptest.NewRequest(http.MethodPost, "/guarded?apiKey=s3cret", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader("not json"))
	req.Header.Set(HeaderAPIKey, "s3cret")
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "not json", w.Body.String())
}

func TestAllow(t *testing.T) {
	a, err := NewAuthorizer("k")
	require.NoError(t, err)
	assert.True(t, a.Configured())
	assert.True(t, a.Allow("k"))
	assert.False(t, a.Allow(""))
	assert.False(t, a.Allow("K"))
}

func TestLongSecret(t *testing.T) {
	secret := strings.Repeat("k", 80)
	a, err := NewAuthorizer(secret)
	require.NoError(t, err)

	assert.True(t, a.Allow(secret))
	// Differs only after byte 72, which raw bcrypt would ignore.
	assert.False(t, a.Allow(strings.Repeat("k", 79)+"x"))
}

func TestZeroValueIsOpen(t *testing.T) {
	var a Authorizer
	assert.False(t, a.Configured())
	assert.True(t, a.Allow(""))
}

func TestLargeBodyIsNotBufferedForKey(t *testing.T) {
	r := newRouter(t, "s3cret")
	body := `{"apiKey":"s3cret","pad":"` + strings.Repeat("x", maxKeyScanBytes) + `"}`

	w := do(r, httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, "s3cret")
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String(), "oversized body must reach the handler intact")
}
