package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// LoadOrGenerateKey resolves the PASETO v4 symmetric key for access tokens.
// A configured hex key wins; otherwise the key is loaded from keyPath,
// generating and saving a fresh one on first run.
func LoadOrGenerateKey(configuredHex, keyPath string) (string, error) {
	if configuredHex != "" {
		if len(configuredHex) != keyHexSize {
			return "", fmt.Errorf("invalid auth key length: expected %d hex chars, got %d", keyHexSize, len(configuredHex))
		}
		if _, err := hex.DecodeString(configuredHex); err != nil {
			return "", fmt.Errorf("invalid auth key format: not valid hex: %w", err)
		}
		return configuredHex, nil
	}

	//#nosec G304 -- Key path comes from operator configuration
	if keyBytes, err := os.ReadFile(keyPath); err == nil {
		keyHex := strings.TrimSpace(string(keyBytes))
		if len(keyHex) != keyHexSize {
			return "", fmt.Errorf("invalid auth key length in %s: expected %d hex chars, got %d", keyPath, keyHexSize, len(keyHex))
		}
		if _, err := hex.DecodeString(keyHex); err != nil {
			return "", fmt.Errorf("invalid auth key format in %s: %w", keyPath, err)
		}
		return keyHex, nil
	}

	key := make([]byte, keyBytesSize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate auth key: %w", err)
	}
	keyHex := hex.EncodeToString(key)

	if err := os.WriteFile(keyPath, []byte(keyHex), 0o600); err != nil {
		return "", fmt.Errorf("failed to save auth key: %w", err)
	}

	return keyHex, nil
}
