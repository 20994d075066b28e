// internal/wizard/rules.go
package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"pageant-wizard/internal/models"
)

// Limits are the business constants the rules are built from. They are
// configuration, not literals; the host maps its config onto this struct.
type Limits struct {
	WordLimit     int
	AgeMin        int
	AgeMax        int
	MaxPhotoBytes int64
}

// DefaultLimits returns the production defaults.
func DefaultLimits() Limits {
	return Limits{
		WordLimit:     500,
		AgeMin:        18,
		AgeMax:        35,
		MaxPhotoBytes: 100 << 20, // 100MB
	}
}

// Rule checks one field (or small cluster) against the record. A rule is
// pure: the verdict depends only on the record and the now value threaded
// in by the validator. A nil result means pass; each rule emits at most one
// error per run.
type Rule struct {
	Field models.Field
	Check func(r *models.ApplicationRecord, now time.Time) *models.FieldError
}

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigits   = regexp.MustCompile(`\D`)
	expiryRegex = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
	amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// requiredText fails when the trimmed value is empty.
func requiredText(f models.Field, label string, get func(*models.ApplicationRecord) string) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		if strings.TrimSpace(get(r)) == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeMissingRequired,
				Message: fmt.Sprintf("%s is required", label),
			}
		}
		return nil
	}}
}

// emailFormat fails with a format message distinct from the required one.
// An empty value passes; requiredText owns that case.
func emailFormat(f models.Field, get func(*models.ApplicationRecord) string) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		v := strings.TrimSpace(get(r))
		if v == "" || emailRegex.MatchString(v) {
			return nil
		}
		return &models.FieldError{
			Field:   f,
			Code:    models.CodeInvalidFormat,
			Message: "Invalid email format",
		}
	}}
}

// ageRange fails when a present date of birth yields an age outside
// [min, max] at validation time. Additive to the required check.
func ageRange(min, max int) Rule {
	f := models.FieldDateOfBirth
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, now time.Time) *models.FieldError {
		if strings.TrimSpace(r.DateOfBirth) == "" {
			return nil
		}
		age, ok := AgeAt(r.DateOfBirth, now)
		if !ok {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "Date of birth must be a valid date (YYYY-MM-DD)",
			}
		}
		if age < min || age > max {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeOutOfRange,
				Message: fmt.Sprintf("Contestants must be between %d and %d years old", min, max),
			}
		}
		return nil
	}}
}

// wordLimit fails when the word count exceeds the configured ceiling.
func wordLimit(f models.Field, label string, limit int, get func(*models.ApplicationRecord) string) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		if WordCount(get(r)) > limit {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeWordLimit,
				Message: fmt.Sprintf("%s must not exceed %d words", label, limit),
			}
		}
		return nil
	}}
}

// mustBeTrue fails when a consent flag is false or unset. Consent is
// modeled distinctly from text-requiredness: the rule is "must be true",
// not "must be non-empty".
func mustBeTrue(f models.Field, message string, get func(*models.ApplicationRecord) bool) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		if !get(r) {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeConsentRequired,
				Message: message,
			}
		}
		return nil
	}}
}

// photoRequired fails when a mandatory slot holds no asset, or when the
// asset exceeds the configured size cap. The bytes are never decoded.
func photoRequired(f models.Field, label string, maxBytes int64) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		slot := r.Photo(f)
		if slot == nil {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeAssetMissing,
				Message: fmt.Sprintf("%s is required", label),
			}
		}
		if maxBytes > 0 && slot.Size > maxBytes {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeAssetTooLarge,
				Message: fmt.Sprintf("%s exceeds the maximum file size of %dMB", label, maxBytes>>20),
			}
		}
		return nil
	}}
}

// photoSizeOnly caps optional slots without requiring them.
func photoSizeOnly(f models.Field, label string, maxBytes int64) Rule {
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		slot := r.Photo(f)
		if slot == nil || maxBytes <= 0 || slot.Size <= maxBytes {
			return nil
		}
		return &models.FieldError{
			Field:   f,
			Code:    models.CodeAssetTooLarge,
			Message: fmt.Sprintf("%s exceeds the maximum file size of %dMB", label, maxBytes>>20),
		}
	}}
}

// cardNumberRule requires exactly 16 digits after stripping every
// non-digit character (spaces, dashes).
func cardNumberRule() Rule {
	f := models.FieldCardNumber
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		digits := nonDigits.ReplaceAllString(r.CardNumber, "")
		if digits == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeMissingRequired,
				Message: "Card number is required",
			}
		}
		if len(digits) != 16 {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "Card number must have 16 digits",
			}
		}
		return nil
	}}
}

// cardExpiryRule requires MM/YY with month 1-12, not already elapsed
// relative to the current month and year.
func cardExpiryRule() Rule {
	f := models.FieldCardExpiry
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, now time.Time) *models.FieldError {
		v := strings.TrimSpace(r.CardExpiry)
		if v == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeMissingRequired,
				Message: "Expiry date is required",
			}
		}
		m := expiryRegex.FindStringSubmatch(v)
		if m == nil {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "Expiry date must be in MM/YY format",
			}
		}
		month := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
		year := 2000 + int(m[2][0]-'0')*10 + int(m[2][1]-'0')
		if month < 1 || month > 12 {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "Expiry month must be between 01 and 12",
			}
		}
		if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeOutOfRange,
				Message: "Card has expired",
			}
		}
		return nil
	}}
}

// cvvRule requires 3-4 digits.
func cvvRule() Rule {
	f := models.FieldCardCVV
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		v := strings.TrimSpace(r.CardCVV)
		if v == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeMissingRequired,
				Message: "CVV is required",
			}
		}
		if !cvvRegex.MatchString(v) {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "CVV must be 3 or 4 digits",
			}
		}
		return nil
	}}
}

// amountRule requires a positive number with at most two decimal places.
func amountRule() Rule {
	f := models.FieldPaymentAmount
	return Rule{Field: f, Check: func(r *models.ApplicationRecord, _ time.Time) *models.FieldError {
		v := strings.TrimSpace(r.PaymentAmount)
		if v == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeMissingRequired,
				Message: "Amount is required",
			}
		}
		if !amountRegex.MatchString(v) || strings.Trim(v, "0.") == "" {
			return &models.FieldError{
				Field:   f,
				Code:    models.CodeInvalidFormat,
				Message: "Amount must be a positive number with at most 2 decimal places",
			}
		}
		return nil
	}}
}

// TermsRule is the terms-agreement check applied by submit() in addition to
// the per-section sweeps; the review section registers no rules of its own.
func TermsRule() Rule {
	return mustBeTrue(models.FieldTermsAgreed,
		"You must agree to the terms and conditions",
		func(r *models.ApplicationRecord) bool { return r.TermsAgreed })
}
