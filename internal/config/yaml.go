package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config files to prevent memory exhaustion (1 MiB).
const MaxInputSize = 1 << 20

// Decoding errors.
var (
	ErrEmptyInput    = errors.New("config file is empty")
	ErrInputTooLarge = errors.New("config file exceeds maximum size")
)

// unmarshalStrict decodes YAML into v and rejects unknown fields.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}
