// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON documents decode through the same functions since JSON is valid YAML.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits input to prevent memory exhaustion (default 1MB).
// A CV with two inline photos stays well below this; photos are referenced by path.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

func validateInput(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeAny decodes data into an untyped tree of map[string]any, []any and
// scalar values. Used where the shape must be inspected before typed decoding.
func DecodeAny(data []byte) (any, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return v, nil
}

// Remarshal re-encodes an untyped value, as returned by DecodeAny, and
// decodes it into v. Used to type one subtree at a time. The intermediate
// form is JSON style so every string stays quoted and keeps its type.
func Remarshal(tree, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	data, err := yaml.MarshalWithOptions(tree, yaml.JSON())
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return Unmarshal(data, v)
}
