package persist

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Cipher is the optional at-rest encryption capability. The synchronizer
// calls it before writing and after reading; identity is a valid
// implementation and the default.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// NopCipher passes data through unchanged.
type NopCipher struct{}

func (NopCipher) Encrypt(p []byte) ([]byte, error) { return p, nil }
func (NopCipher) Decrypt(c []byte) ([]byte, error) { return c, nil }

// encPrefix marks an encrypted blob so plaintext and ciphertext cannot be
// confused on read.
const encPrefix = "wp1:"

const (
	pbkdf2Iterations = 250_000
	keyLength        = 32
	nonceLength      = 12
)

// ErrNotEncrypted is returned when an AES cipher reads a blob without the
// encryption marker.
var ErrNotEncrypted = errors.New("blob is not encrypted")

// AESCipher is AES-256-GCM with a PBKDF2-SHA512 derived key.
type AESCipher struct {
	aead cipher.AEAD
}

// NewAESCipher derives a key from the passphrase and salt.
func NewAESCipher(passphrase string, salt []byte) (*AESCipher, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, keyLength, sha512.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESCipher{aead: aead}, nil
}

// Encrypt seals the plaintext under a fresh nonce.
func (c *AESCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	out := append([]byte(encPrefix), nonce...)
	return c.aead.Seal(out, nonce, plaintext, nil), nil
}

// Decrypt opens a sealed blob.
func (c *AESCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < len(encPrefix)+nonceLength || string(ciphertext[:len(encPrefix)]) != encPrefix {
		return nil, ErrNotEncrypted
	}
	body := ciphertext[len(encPrefix):]
	nonce, sealed := body[:nonceLength], body[nonceLength:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting blob: %w", err)
	}
	return plaintext, nil
}
