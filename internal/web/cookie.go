package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// cookieSigner authenticates session IDs with a keyed BLAKE2b-256 MAC.
type cookieSigner struct {
	key []byte
}

// newCookieSigner decodes a hex secret, or draws a random key when secret is
// empty (sessions then do not survive a restart).
func newCookieSigner(secret string) (*cookieSigner, error) {
	if secret == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "generate cookie key")
		}
		return &cookieSigner{key: key}, nil
	}
	key, err := hex.DecodeString(secret)
	if err != nil {
		return nil, errors.Wrap(err, "decode cookie secret")
	}
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, errors.Errorf("cookie secret must be 1..%d bytes", blake2b.Size)
	}
	return &cookieSigner{key: key}, nil
}

func (s *cookieSigner) mac(id string) []byte {
	h, err := blake2b.New256(s.key)
	if err != nil {
		// Key length is checked in newCookieSigner.
		panic(err)
	}
	h.Write([]byte(id))
	return h.Sum(nil)
}

// Sign returns "<id>.<hex mac>".
func (s *cookieSigner) Sign(id string) string {
	return id + "." + hex.EncodeToString(s.mac(id))
}

// Verify returns the ID from a value produced by Sign with the same key.
func (s *cookieSigner) Verify(value string) (string, bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 {
		return "", false
	}
	id, sig := value[:i], value[i+1:]
	got, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare(got, s.mac(id)) != 1 {
		return "", false
	}
	return id, true
}
