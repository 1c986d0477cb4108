package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hue-mcp/internal/domain/model"
)

func TestJSONCredentialRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.json")
	repo := NewJSONCredentialRepository(path)

	creds := &model.Credentials{Username: "abc123", ClientKey: "F00D"}
	require.NoError(t, repo.Save(context.Background(), creds))

	loaded, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePermissions), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"abc123","clientKey":"F00D"}`, string(data))
}

func TestJSONCredentialRepository_Missing(t *testing.T) {
	repo := NewJSONCredentialRepository(filepath.Join(t.TempDir(), "absent.json"))

	creds, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, creds)
}

func TestJSONCredentialRepository_Malformed(t *testing.T) {
	for name, content := range map[string]string{
		"not json":    `{"username": `,
		"wrong type":  `{"username": 42}`,
		"no username": `{"clientKey": "F00D"}`,
		"array":       `["abc"]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0600))

			creds, err := NewJSONCredentialRepository(path).Get(context.Background())
			assert.NoError(t, err)
			assert.Nil(t, creds)
		})
	}
}

func TestJSONCredentialRepository_Migration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"abc123","clientkey":"BEEF"}`), 0600))

	creds, err := NewJSONCredentialRepository(path).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.Credentials{Username: "abc123", ClientKey: "BEEF"}, creds)
}

func TestJSONCredentialRepository_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	repo := NewJSONCredentialRepository(filepath.Join(blocker, "credentials.json"))
	err := repo.Save(context.Background(), &model.Credentials{Username: "abc"})
	assert.Error(t, err)
}

func TestJSONCredentialRepository_RejectsEmpty(t *testing.T) {
	repo := NewJSONCredentialRepository(filepath.Join(t.TempDir(), "credentials.json"))
	assert.Error(t, repo.Save(context.Background(), &model.Credentials{}))
}
