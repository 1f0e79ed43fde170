// Package validation provides request validation for handler input.
//
// Struct-tag validation via Validate covers the common case; the fluent
// Validator covers checks tags cannot express. Both report failures as
// VALIDATION_ERROR AppErrors with all violations joined together.
package validation
