package seed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zaryabali001/roommate/internal/models"
)

// YAMLSource loads a seed from a YAML file.
type YAMLSource struct {
	Path string
}

// NewYAMLSource returns a source reading path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

// LoadSeed reads, decodes and validates the file.
func (s *YAMLSource) LoadSeed(_ context.Context) (*models.Seed, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", s.Path, err)
	}
	seed, err := DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", s.Path, err)
	}
	return seed, nil
}

// Close is a no-op; the file is only open while loading.
func (s *YAMLSource) Close() error { return nil }

// DecodeYAML decodes and validates a seed document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*models.Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed models.Seed
	if err := dec.Decode(&seed); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSeed)
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := Validate(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// EncodeYAML writes seed as a YAML document.
func EncodeYAML(w io.Writer, seed *models.Seed) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}
