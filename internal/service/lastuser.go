package service

import (
	"os"
	"path/filepath"
	"strings"
)

// lastUserFile holds the plain last-logged-in username. It is a UX
// convenience for prefilling the login prompt, not a credential.
const lastUserFile = "last_user"

// SaveLastUser writes the last-logged-in username marker under dir.
func SaveLastUser(dir, username string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, lastUserFile), []byte(strings.TrimSpace(username)+"\n"), 0o600)
}

// LoadLastUser reads the marker; a missing file yields an empty string.
func LoadLastUser(dir string) string {
	b, err := os.ReadFile(filepath.Join(dir, lastUserFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// ClearLastUser removes the marker. Missing files are ignored.
func ClearLastUser(dir string) error {
	err := os.Remove(filepath.Join(dir, lastUserFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
