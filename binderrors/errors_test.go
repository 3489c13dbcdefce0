package binderrors

import (
	"errors"
	"testing"
)

func TestStyleError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &StyleError{Style: "fancy", Location: "path"}
		if err.Error() != `unsupported path encoding style: "fancy"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &StyleError{}
		if err.Error() != "unsupported encoding style" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedStyle", func(t *testing.T) {
		err := &StyleError{Style: "fancy"}
		if !errors.Is(err, ErrUnsupportedStyle) {
			t.Error("StyleError should match ErrUnsupportedStyle")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &StyleError{Style: "fancy"}
		if errors.Is(err, ErrEncoding) {
			t.Error("StyleError should not match ErrEncoding")
		}
	})
}

func TestEncodingError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &EncodingError{
			Name:    "id",
			Style:   "deepObject",
			Explode: false,
			Message: "deepObject style only supports object values with explode=true",
		}
		want := `invalid encoding combination for parameter "id" (style: deepObject, explode: false): deepObject style only supports object values with explode=true`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &EncodingError{}
		if err.Error() != "invalid encoding combination" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrEncoding", func(t *testing.T) {
		err := &EncodingError{Name: "id"}
		if !errors.Is(err, ErrEncoding) {
			t.Error("EncodingError should match ErrEncoding")
		}
	})
}

func TestPathParamError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &PathParamError{Template: "/users/{userId}", Name: "userId"}
		if err.Error() != `missing path parameter "userId" in template /users/{userId}` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrMissingPathParam", func(t *testing.T) {
		err := &PathParamError{Name: "userId"}
		if !errors.Is(err, ErrMissingPathParam) {
			t.Error("PathParamError should match ErrMissingPathParam")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("got string, want integer")
		err := &ValidationError{ID: "getUser", Message: "input rejected", Cause: cause}
		if err.Error() != "validation error for getUser: input rejected: got string, want integer" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ValidationError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{ID: "getUser"}
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("no such file")
		err := &ConfigError{
			Option:  "WithFilePath",
			Value:   "missing.yaml",
			Message: "cannot read document",
			Cause:   cause,
		}
		want := "configuration error for WithFilePath (value: missing.yaml): cannot read document: no such file"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "WithFilePath"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ConfigError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})
}
