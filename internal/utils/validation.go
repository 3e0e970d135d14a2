package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Messages returns the error messages in the order they were added
func (vr *ValidationResult) Messages() []string {
	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Message)
	}
	return messages
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Portuguese mobile numbers: optional +351/00351 prefix, then 9 followed
	// by a second digit in {1,2,3,6} and seven more digits.
	phoneSeparatorRegex = regexp.MustCompile(`[\s\-()]`)
	phoneRegex          = regexp.MustCompile(`^(\+351|00351)?9[1236]\d{7}$`)

	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+=`)

	spamKeywordRegex = regexp.MustCompile(`(?i)viagra|casino|lottery|winner`)
	spamURLRegex     = regexp.MustCompile(`https?://`)
	cyrillicRegex    = regexp.MustCompile(`\p{Cyrillic}`)
)

// ValidateEmail reports whether s looks like a local@domain.tld address of a
// reasonable length
func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s) && len(s) <= 254
}

// ValidatePhone reports whether s is a Portuguese mobile number, accepting
// internal spaces, hyphens, parentheses and an optional +351/00351 prefix
func ValidatePhone(s string) bool {
	clean := phoneSeparatorRegex.ReplaceAllString(s, "")
	return phoneRegex.MatchString(clean)
}

// SanitizeInput trims free text and strips characters and patterns that could
// carry markup or script injection, capping the result at 1000 characters.
// Pattern removal runs to a fixed point: stripping one occurrence must not
// splice surrounding text into a new one.
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	for {
		cleaned := jsProtocolRegex.ReplaceAllString(s, "")
		cleaned = eventHandlerRegex.ReplaceAllString(cleaned, "")
		if cleaned == s {
			break
		}
		s = cleaned
	}

	if runes := []rune(s); len(runes) > 1000 {
		s = string(runes[:1000])
	}
	return s
}

// birthDateLayouts are the accepted input formats for dataNascimento
var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseBirthDate parses a birth date string in any accepted layout
func ParseBirthDate(s string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateBirthDate reports whether s parses as a date whose resulting age is
// between 13 and 120 years, counting a birthday that has not yet occurred this
// year as not completed
func ValidateBirthDate(s string) bool {
	birth, ok := ParseBirthDate(s)
	if !ok {
		return false
	}

	now := time.Now()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age >= 13 && age <= 120
}

// DetectSpam reports whether text matches basic spam heuristics: known spam
// keywords, embedded URLs, Cyrillic characters, or any character repeated five
// or more times in a row. Available as policy; not enforced on the submission
// path.
func DetectSpam(text string) bool {
	if text == "" {
		return false
	}

	if spamKeywordRegex.MatchString(text) ||
		spamURLRegex.MatchString(text) ||
		cyrillicRegex.MatchString(text) {
		return true
	}

	return hasRepeatedRun(text, 5)
}

// hasRepeatedRun reports whether any rune repeats at least n times in a row
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// ValidateCadastroInput checks the required submission fields and accumulates
// every violation instead of failing on the first one, so the caller can fix
// all fields in a single round trip
func ValidateCadastroInput(input models.CadastroInput) *ValidationResult {
	result := NewValidationResult()

	nome := strings.TrimSpace(input.Nome)
	if nome == "" {
		result.AddError("nome", "Nome é obrigatório")
	} else if len([]rune(nome)) < 2 {
		result.AddError("nome", "Nome deve ter pelo menos 2 caracteres")
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		result.AddError("email", "Email é obrigatório")
	} else if !ValidateEmail(email) {
		result.AddError("email", "Email inválido")
	}

	telefone := strings.TrimSpace(input.Telefone)
	if telefone == "" {
		result.AddError("telefone", "Telefone é obrigatório")
	} else if !ValidatePhone(telefone) {
		result.AddError("telefone", "Telefone inválido")
	}

	if strings.TrimSpace(input.DataNascimento) != "" && !ValidateBirthDate(input.DataNascimento) {
		result.AddError("dataNascimento", "Data de nascimento inválida")
	}

	return result
}
