// Package credential stores a remembered login in the system keyring so the
// CLI can sign in without re-entering credentials. The session itself lives
// in the application storage, never here.
package credential

import (
	"encoding/json"
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "taskdesk"

const loginKey = "saved-login"

// SavedLogin is the credential pair remembered by `taskdesk login -remember`.
type SavedLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/taskdesk/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("taskdesk-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// SaveLogin remembers the credential pair in the system keyring.
func SaveLogin(login SavedLogin) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	data, err := json.Marshal(login)
	if err != nil {
		return fmt.Errorf("encoding saved login: %w", err)
	}

	err = ring.Set(keyring.Item{
		Key:  loginKey,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("saving login: %w", err)
	}

	return nil
}

// LoadLogin retrieves the remembered credential pair.
func LoadLogin() (SavedLogin, error) {
	ring, err := openKeyring()
	if err != nil {
		return SavedLogin{}, err
	}

	item, err := ring.Get(loginKey)
	if err != nil {
		return SavedLogin{}, fmt.Errorf("loading saved login: %w", err)
	}

	var login SavedLogin
	if err := json.Unmarshal(item.Data, &login); err != nil {
		return SavedLogin{}, fmt.Errorf("decoding saved login: %w", err)
	}
	return login, nil
}

// ClearLogin removes the remembered credential pair, if any.
func ClearLogin() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	if err := ring.Remove(loginKey); err != nil && err != keyring.ErrKeyNotFound {
		return fmt.Errorf("clearing saved login: %w", err)
	}

	return nil
}
