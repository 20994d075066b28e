// internal/models/errors.go
package models

// Error codes attached to field-level validation failures.
const (
	CodeMissingRequired = "MISSING_REQUIRED"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeWordLimit       = "WORD_LIMIT_EXCEEDED"
	CodeConsentRequired = "CONSENT_REQUIRED"
	CodeAssetMissing    = "ASSET_MISSING"
	CodeAssetTooLarge   = "ASSET_TOO_LARGE"
)

// FieldError is a field identifier paired with a human-readable message.
// Section is the owning section, tagged by the validator so that submit-time
// aggregation can derive the first offending section without re-validating.
type FieldError struct {
	Field   Field     `json:"field"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Section SectionID `json:"section,omitempty"`
}

// ErrorIndex builds a field-keyed lookup over an ordered error list. The
// slice stays the source of truth for ordering; the map answers "has this
// field errored" without a linear scan per field.
func ErrorIndex(errs []FieldError) map[Field]FieldError {
	if len(errs) == 0 {
		return nil
	}
	idx := make(map[Field]FieldError, len(errs))
	for _, e := range errs {
		if _, seen := idx[e.Field]; !seen {
			idx[e.Field] = e
		}
	}
	return idx
}
