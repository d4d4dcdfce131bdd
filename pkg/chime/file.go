// ABOUTME: Recipe file I/O
// ABOUTME: Loads and saves recipes as YAML
package chime

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ParseRecipe decodes YAML on top of the payment success recipe, so fields
// absent from data keep their built-in values
func ParseRecipe(data []byte) (*Recipe, error) {
	r := PaymentSuccess()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	return &r, nil
}

// LoadRecipe reads a YAML recipe from path
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	return ParseRecipe(data)
}

// MarshalRecipe encodes a recipe as YAML
func MarshalRecipe(r Recipe) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe: %w", err)
	}
	return data, nil
}

// SaveRecipe writes a recipe to path as YAML, creating parent directories
func SaveRecipe(path string, r Recipe) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create recipe directory: %w", err)
	}

	data, err := MarshalRecipe(r)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
