package registry

import (
	"io"

	"github.com/erraggy/oasbind/binderrors"
	"github.com/erraggy/oasbind/descriptor"
)

// Option is a functional option for configuring Load.
type Option func(*config) error

// config holds the configuration for loading a registry.
type config struct {
	// Document source (exactly one must be set)
	filePath string
	reader   io.Reader
	document map[string]any

	// Parameter handling
	includeHeaders bool
	includeCookies bool

	// Validation backend
	sv descriptor.SchemaValidator
}

func defaultConfig() *config {
	return &config{}
}

// WithFilePath sets the path to the OpenAPI document file. JSON and YAML
// formats are supported; the format is detected from the content.
func WithFilePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &binderrors.ConfigError{
				Option:  "WithFilePath",
				Message: "path cannot be empty",
			}
		}
		c.filePath = path
		return nil
	}
}

// WithReader reads the OpenAPI document from r. JSON and YAML formats are
// supported; the format is detected from the content.
func WithReader(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return &binderrors.ConfigError{
				Option:  "WithReader",
				Message: "reader cannot be nil",
			}
		}
		c.reader = r
		return nil
	}
}

// WithDocument uses an already-decoded OpenAPI document. The document is not
// copied; callers must not mutate it after Load.
func WithDocument(doc map[string]any) Option {
	return func(c *config) error {
		if doc == nil {
			return &binderrors.ConfigError{
				Option:  "WithDocument",
				Message: "document cannot be nil",
			}
		}
		c.document = doc
		return nil
	}
}

// WithIncludeHeaders includes header parameters in operation schemas.
// Default is false.
func WithIncludeHeaders(include bool) Option {
	return func(c *config) error {
		c.includeHeaders = include
		return nil
	}
}

// WithIncludeCookies includes cookie parameters in operation schemas.
// Default is false.
func WithIncludeCookies(include bool) Option {
	return func(c *config) error {
		c.includeCookies = include
		return nil
	}
}

// WithValidator sets the schema validation backend for the registry's
// descriptors. Default is the validator package's draft 2020-12
// implementation.
func WithValidator(sv descriptor.SchemaValidator) Option {
	return func(c *config) error {
		if sv == nil {
			return &binderrors.ConfigError{
				Option:  "WithValidator",
				Message: "validator cannot be nil",
			}
		}
		c.sv = sv
		return nil
	}
}
