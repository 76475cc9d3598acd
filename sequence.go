package nav

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Sequence is the wire document for navigator data.
//
// The values key must be present: a document where it is absent or null is
// rejected with ErrNilSequence, while an explicitly empty list is a valid
// empty sequence. Name is optional and only used for diagnostics.
type Sequence struct {
	Name   string `json:"name" yaml:"name" validate:"max=128"`
	Values []int  `json:"values" yaml:"values"`
}

// Parse unmarshals a sequence document, validates it, and builds a Navigator
// from its values. Navigator options are passed through to New.
//
// If codec is nil the format is auto-detected: documents starting with '{'
// or '[' are parsed as JSON, everything else as YAML.
func Parse(data []byte, codec Codec, opts ...Option) (*Navigator, error) {
	if codec == nil {
		codec = detectCodec(data)
	}

	var doc Sequence
	if err := codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// A missing or null values key unmarshals to a nil slice, which New
	// rejects; an explicit empty list stays non-nil and is accepted.
	return New(doc.Values, opts...)
}
