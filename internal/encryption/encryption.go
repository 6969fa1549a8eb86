// Package encryption protects sensitive property fields, the wifi
// password in particular, with AES-256-GCM. An empty key degrades to a
// pass-through service so encryption stays opt-in.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Service encrypts and decrypts strings. Ciphertext is hex encoded.
type Service interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// NewService returns an AES-GCM service derived from the key, or a noop
// service when the key is empty.
func NewService(key string) (Service, error) {
	if key == "" {
		return &noopService{}, nil
	}
	return newAESService(key)
}

// noopService passes values through unchanged.
type noopService struct{}

func (s *noopService) Encrypt(plaintext string) (string, error)  { return plaintext, nil }
func (s *noopService) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }

// keySalt is fixed so the same passphrase always derives the same key.
// Uniqueness per message comes from the GCM nonce, not the salt.
var keySalt = []byte("sitterdesk-field-encryption-v1")

type aesService struct {
	gcm cipher.AEAD
}

func newAESService(key string) (*aesService, error) {
	derived := pbkdf2.Key([]byte(key), keySalt, 10000, 32, sha256.New)
	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &aesService{gcm: gcm}, nil
}

func (s *aesService) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

func (s *aesService) Decrypt(ciphertext string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(raw) < s.gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, sealed := raw[:s.gcm.NonceSize()], raw[s.gcm.NonceSize():]
	plain, err := s.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plain), nil
}
