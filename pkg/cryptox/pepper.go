package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrGeneratePepper loads the pepper from a file or generates one if the
// file does not exist yet. The generated pepper is persisted with 0600
// permissions so restarts keep verifying existing hashes.
func LoadOrGeneratePepper(path string) (string, error) {
	if path == "" {
		return "", errors.New("pepper path is empty")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	pepperBytes, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(pepperBytes)), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	// Generate a new pepper and save it to the file
	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(pepper), 0600); err != nil {
		return "", err
	}
	return pepper, nil
}
