package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GenerateEd25519Key generates a new Ed25519 private key.
// Returns the private key in PEM format (PKCS8).
func GenerateEd25519Key() ([]byte, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}

	privateKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: privateKeyBytes,
	}), nil
}

// LoadOrCreateEd25519Key reads a PEM encoded key from path. When the file does
// not exist a fresh key is generated and written with 0600 permissions so
// cookies signed before a restart stay valid. An empty path yields an
// in-memory key.
//
// With a non-empty secret the file holds the key sealed by SealPrivateKey.
func LoadOrCreateEd25519Key(path string, secret []byte) ([]byte, error) {
	if path == "" {
		return GenerateEd25519Key()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		pemBytes := data
		if len(secret) > 0 {
			if pemBytes, err = OpenPrivateKey(data, secret); err != nil {
				return nil, fmt.Errorf("cryptox: %s: %w", path, err)
			}
		}
		if block, _ := pem.Decode(pemBytes); block == nil || block.Type != "PRIVATE KEY" {
			return nil, fmt.Errorf("cryptox: %s does not contain a PKCS8 private key", path)
		}
		return pemBytes, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cryptox: read key file: %w", err)
	}

	pemBytes, err := GenerateEd25519Key()
	if err != nil {
		return nil, err
	}

	data = pemBytes
	if len(secret) > 0 {
		if data, err = SealPrivateKey(pemBytes, secret); err != nil {
			return nil, err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("cryptox: create key dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("cryptox: write key file: %w", err)
	}

	return pemBytes, nil
}
