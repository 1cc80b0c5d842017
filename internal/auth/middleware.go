package auth

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"io"
	"net/http"

	"sab_waitlist/internal/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// HeaderAPIKey is the header callers may use to present the shared secret.
const HeaderAPIKey = "X-API-Key"

// maxKeyScanBytes caps how much of a request body is buffered to look for
// apiKey. Larger bodies are passed on untouched and must use the query or header.
const maxKeyScanBytes = 8 << 10

// Authorizer checks the shared secret. Only a bcrypt hash of the secret's
// SHA-256 digest is kept in memory; the digest keeps bcrypt's 72-byte input
// limit from rejecting long secrets. The zero value is open mode.
type Authorizer struct {
	hash []byte
}

// NewAuthorizer hashes secret. An empty secret yields open mode, where every
// request passes.
func NewAuthorizer(secret string) (*Authorizer, error) {
	if secret == "" {
		return &Authorizer{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword(digest(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Authorizer{hash: hash}, nil
}

func digest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// Configured reports whether a secret is set.
func (a *Authorizer) Configured() bool {
	return len(a.hash) > 0
}

// Allow reports whether presented matches the configured secret.
func (a *Authorizer) Allow(presented string) bool {
	if !a.Configured() {
		return true
	}
	if presented == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, digest(presented)) == nil
}

// Middleware rejects requests whose secret does not match. The secret is read
// from the JSON body field apiKey, then the apiKey query parameter, then the
// X-API-Key header.
func (a *Authorizer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Configured() {
			c.Next()
			return
		}

		if !a.Allow(presentedKey(c)) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Invalid or missing API key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func presentedKey(c *gin.Context) string {
	if key := bodyKey(c); key != "" {
		return key
	}
	if key := c.Query("apiKey"); key != "" {
		return key
	}
	return c.GetHeader(HeaderAPIKey)
}

// bodyKey peeks at the JSON body and restores it for the handler. At most
// maxKeyScanBytes are buffered.
func bodyKey(c *gin.Context) string {
	body := c.Request.Body
	if body == nil || body == http.NoBody {
		return ""
	}
	raw, err := io.ReadAll(io.LimitReader(body, maxKeyScanBytes+1))
	if len(raw) > maxKeyScanBytes {
		c.Request.Body = readCloser{io.MultiReader(bytes.NewReader(raw), body), body}
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var peek struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return ""
	}
	return peek.APIKey
}

type readCloser struct {
	io.Reader
	io.Closer
}
