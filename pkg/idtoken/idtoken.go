// Package idtoken encodes internal numeric ids into opaque url-safe
// tokens. Tokens are deterministic for a given deployment key, decode
// back to the exact id and cannot be forged or altered without the key.
package idtoken

import (
	"crypto/aes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid token")

const blockSize = aes.BlockSize

type Codec struct {
	block  cipherBlock
	macKey []byte
}

type cipherBlock interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
	BlockSize() int
}

// New derives the cipher and mac keys from a deployment secret.
// The secret must be non-empty; rotating it invalidates every token
// issued before the rotation.
func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("idtoken: empty secret")
	}
	sum := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(sum[:16])
	if err != nil {
		return nil, err
	}
	return &Codec{
		block:  block,
		macKey: sum[16:],
	}, nil
}

// Encode maps a positive id to a 22-char url-safe token.
func (c *Codec) Encode(id int) string {
	var plain [blockSize]byte
	binary.BigEndian.PutUint64(plain[:8], uint64(id))
	copy(plain[8:], c.check(plain[:8]))

	var out [blockSize]byte
	c.block.Encrypt(out[:], plain[:])
	return base64.RawURLEncoding.EncodeToString(out[:])
}

// Decode reverses Encode. Malformed, forged and non-positive tokens
// all fail with ErrInvalidToken so callers cannot distinguish
// tampering from garbage.
func (c *Codec) Decode(token string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != blockSize {
		return 0, ErrInvalidToken
	}

	var plain [blockSize]byte
	c.block.Decrypt(plain[:], raw)

	if !hmac.Equal(plain[8:], c.check(plain[:8])) {
		return 0, ErrInvalidToken
	}
	id := binary.BigEndian.Uint64(plain[:8])
	if id == 0 || id > math.MaxInt32 {
		return 0, ErrInvalidToken
	}
	return int(id), nil
}

// check is the first 8 bytes of HMAC-SHA256 over the id bytes.
func (c *Codec) check(idBytes []byte) []byte {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write(idBytes)
	return mac.Sum(nil)[:8]
}
