package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid session cookie")

// Session is what login stores client-side: the backend's bearer token
// plus a display snapshot of the user. The token is the only authority;
// the backend re-checks it on every authenticated call.
type Session struct {
	Token    string    `json:"token"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
	IssuedAt time.Time `json:"iat"`
}

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func NewCodec(secret []byte, cookieName string, secure bool, ttl time.Duration) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure, TTL: ttl}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(s Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*Session, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrInvalid
	}
	if s.Token == "" {
		return nil, ErrInvalid
	}
	if c.TTL > 0 && !s.IssuedAt.IsZero() && time.Since(s.IssuedAt) > c.TTL {
		return nil, ErrInvalid
	}
	return &s, nil
}

// Get reads and verifies the session cookie. A tampered or expired
// cookie is cleared and reads as "not logged in".
func (c *Codec) Get(ctx *gin.Context) (*Session, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return nil, false
	}
	s, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return nil, false
	}
	return s, true
}

func (c *Codec) Set(ctx *gin.Context, s Session) error {
	if s.IssuedAt.IsZero() {
		s.IssuedAt = time.Now()
	}
	val, err := c.Encode(s)
	if err != nil {
		return err
	}
	maxAge := int(c.TTL.Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
