package cartcookie

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

var ErrInvalid = errors.New("invalid cart cookie")

// Item is a denormalized snapshot of a product captured when it was
// added to the cart. Later product edits don't touch it; checkout sends
// these fields verbatim as order lines.
type Item struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

// Cart is the ordered list of items riding in the cookie.
type Cart struct {
	Items []Item `json:"items"`
}

func NewCart() *Cart { return &Cart{} }

// AddItem merges by product id: adding the same product bumps its
// quantity, keeping the original position.
func (c *Cart) AddItem(it Item) {
	if it.Qty <= 0 {
		it.Qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == it.ProductID {
			c.Items[i].Qty += it.Qty
			return
		}
	}
	c.Items = append(c.Items, it)
}

// UpdateQuantity sets qty for a product; qty <= 0 removes it.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Subtotal is Σ price × qty. Display rounding happens at the view edge.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Qty)
	}
	return sum
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(cart *Cart) (string, error) {
	b, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*Cart, error) {
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
	var cart Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, ErrInvalid
	}
	return &cart, nil
}

// Get reads the cart from the cookie. Missing, tampered or malformed
// cookies read as an empty cart (and the bad cookie is cleared).
func (c *Codec) Get(ctx *gin.Context) *Cart {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return NewCart()
	}
	cart, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return NewCart()
	}
	return cart
}

func (c *Codec) Set(ctx *gin.Context, cart *Cart) error {
	val, err := c.Encode(cart)
	if err != nil {
		return err
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
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
