package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileStorage reads keys from a credentials file. The format follows the
// extension: ".yaml"/".yml", ".json", or dotenv for anything else. The file
// is read on every lookup so changes made by another process are picked up.
// A missing file behaves like an empty one.
//
// Nested values, such as a structured auth record in YAML, are returned as
// their JSON encoding.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed storage. A leading "~/" expands to the
// user's home directory.
func NewFileStorage(path string) *FileStorage {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return &FileStorage{path: path}
}

// Path returns the file location.
func (f *FileStorage) Path() string {
	return f.path
}

func (f *FileStorage) Get(ctx context.Context, key string) (string, error) {
	values, err := f.load()
	if err != nil {
		return "", err
	}

	v, ok := values[key]
	if !ok || v == nil {
		return "", ErrNotFound
	}
	if s, ok := v.(string); ok {
		return s, nil
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("credential: encode %q from %s: %w", key, f.path, err)
	}
	return string(encoded), nil
}

func (f *FileStorage) load() (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".yaml", ".yml":
		return f.decode(yaml.Unmarshal)
	case ".json":
		return f.decode(json.Unmarshal)
	case ".env", "":
		env, err := godotenv.Read(f.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return map[string]any{}, nil
			}
			return nil, fmt.Errorf("credential: read %s: %w", f.path, err)
		}
		values := make(map[string]any, len(env))
		for k, v := range env {
			values[k] = v
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.path)
	}
}

func (f *FileStorage) decode(unmarshal func([]byte, any) error) (map[string]any, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("credential: read %s: %w", f.path, err)
	}

	values := map[string]any{}
	if err := unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("credential: parse %s: %w", f.path, err)
	}
	return values, nil
}
