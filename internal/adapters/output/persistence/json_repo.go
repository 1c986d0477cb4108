package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

const (
	dirPermissions  = 0700
	filePermissions = 0600
)

// JSONCredentialRepository stores the bridge credentials as {"username", "clientKey"}.
type JSONCredentialRepository struct {
	filepath string
	mu       sync.RWMutex
}

var _ ports.CredentialRepository = (*JSONCredentialRepository)(nil)

func NewJSONCredentialRepository(filepath string) *JSONCredentialRepository {
	return &JSONCredentialRepository{filepath: filepath}
}

// DefaultPath is ~/.hue-mcp/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hue-mcp", "credentials.json"), nil
}

func (r *JSONCredentialRepository) Path() string {
	return r.filepath
}

// Get returns nil, nil when the file is missing, unreadable as JSON, or has no username.
func (r *JSONCredentialRepository) Get(ctx context.Context) (*model.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, nil
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, nil
	}

	if creds.ClientKey == "" {
		r.migrate(data, &creds)
	}

	if creds.IsZero() {
		return nil, nil
	}
	return &creds, nil
}

// Files written by hand often copy the bridge's own "clientkey" spelling.
func (r *JSONCredentialRepository) migrate(data []byte, creds *model.Credentials) {
	if key := gjson.GetBytes(data, "clientkey"); key.Exists() {
		creds.ClientKey = key.String()
	}
}

// Save writes the file atomically, creating parent directories as needed.
func (r *JSONCredentialRepository) Save(ctx context.Context, creds *model.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if creds.IsZero() {
		return fmt.Errorf("refusing to save credentials without a username")
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.filepath), dirPermissions); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return safeWriteFile(r.filepath, data, filePermissions)
}

func safeWriteFile(name string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+"-*.new")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write new file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close new file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move new file to file location: %w", err)
	}

	return nil
}
