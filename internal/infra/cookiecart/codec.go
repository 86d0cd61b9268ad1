// Package cookiecart implements the ephemeral cart backend for anonymous
// shoppers: the cart lines live in a signed cookie held by the client, not in
// the database.
package cookiecart

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

// codec signs and verifies the cookie payload. The value format is
// base64url(JSON) + "." + base64url(HMAC-SHA256). A payload whose signature
// does not verify is treated as absent, never trusted.
type codec struct {
	secret []byte
}

func newCodec(secret string) *codec {
	return &codec{secret: []byte(secret)}
}

// Encode serializes and signs the payload into a cookie-safe string.
func (c *codec) Encode(payload *cartPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal cart payload")
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)

	return encoded + "." + c.sign(encoded), nil
}

// Decode verifies the signature and deserializes the payload.
func (c *codec) Decode(value string) (*cartPayload, error) {
	encoded, signature, found := strings.Cut(value, ".")
	if !found {
		return nil, domainerrors.ErrCartCookieInvalid
	}

	if !hmac.Equal([]byte(c.sign(encoded)), []byte(signature)) {
		return nil, domainerrors.ErrCartCookieInvalid
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, domainerrors.ErrCartCookieInvalid
	}

	payload := new(cartPayload)
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, domainerrors.ErrCartCookieInvalid
	}

	return payload, nil
}

func (c *codec) sign(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
