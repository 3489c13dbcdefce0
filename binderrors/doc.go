// Package binderrors provides structured error types for the oasbind library.
//
// Import path: github.com/erraggy/oasbind/binderrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [StyleError]: Unrecognized parameter encoding style names
//   - [EncodingError]: Style/explode/value-type combinations the OpenAPI 3 tables forbid
//   - [PathParamError]: Path template placeholders with no supplied value
//   - [ValidationError]: Object validation failures against a composed schema
//   - [ConfigError]: Invalid configuration, options, or input documents
//
// # Sentinel Errors
//
// Each error type matches a sentinel via errors.Is, so callers can categorize
// without type assertions:
//
//	req, err := reg.Validate("getUser", input)
//	if errors.Is(err, binderrors.ErrValidation) {
//		// input did not match the operation's composed schema
//	}
//
// To reach the structured details, use errors.As:
//
//	var encErr *binderrors.EncodingError
//	if errors.As(err, &encErr) {
//		log.Printf("cannot encode %q with style %q", encErr.Name, encErr.Style)
//	}
//
// None of these errors are transient: they stem from malformed input, never
// from external unavailability, so retrying is never appropriate.
package binderrors
