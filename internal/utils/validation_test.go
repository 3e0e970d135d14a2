package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/models"
)

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult()

	if result == nil {
		t.Fatal("NewValidationResult() returned nil")
	}
	if !result.IsValid {
		t.Error("NewValidationResult() IsValid should be true")
	}
	if len(result.Errors) != 0 {
		t.Errorf("NewValidationResult() should have 0 errors, got %d", len(result.Errors))
	}
}

func TestValidationResult_AddError(t *testing.T) {
	result := NewValidationResult()

	result.AddError("email", "Email inválido")

	if result.IsValid {
		t.Error("AddError() should set IsValid to false")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("AddError() should have 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "email" {
		t.Errorf("AddError() Field = %q, want %q", result.Errors[0].Field, "email")
	}

	result.AddError("nome", "Nome é obrigatório")
	messages := result.Messages()
	if len(messages) != 2 {
		t.Fatalf("Messages() should have 2 entries, got %d", len(messages))
	}
	if messages[0] != "Email inválido" || messages[1] != "Nome é obrigatório" {
		t.Errorf("Messages() should preserve insertion order, got %v", messages)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"Valid simple email", "maria@example.com", true},
		{"Valid email with subdomain", "joao.silva@mail.example.pt", true},
		{"Valid email with plus", "maria+igreja@example.com", true},
		{"Missing at sign", "maria.example.com", false},
		{"Missing domain", "maria@", false},
		{"Missing TLD", "maria@example", false},
		{"Contains whitespace", "maria silva@example.com", false},
		{"Empty string", "", false},
		{"Too long", strings.Repeat("a", 250) + "@b.pt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"Bare mobile number", "912345678", true},
		{"With plus prefix", "+351912345678", true},
		{"With 00351 prefix", "00351912345678", true},
		{"With spaces", "912 345 678", true},
		{"With hyphens", "912-345-678", true},
		{"With parentheses", "(+351) 912345678", true},
		{"Second digit 2", "922345678", true},
		{"Second digit 3", "932345678", true},
		{"Second digit 6", "962345678", true},
		{"Second digit 4 rejected", "942345678", false},
		{"Landline rejected", "212345678", false},
		{"Too short", "91234567", false},
		{"Too long", "9123456789", false},
		{"Letters rejected", "91234567a", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Trims whitespace", "  Maria Silva  ", "Maria Silva"},
		{"Strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"Strips javascript protocol", "javascript:alert(1)", "alert(1)"},
		{"Strips event handlers", "x onclick=evil()", "x evil()"},
		{"Case insensitive protocol", "JavaScript:run()", "run()"},
		{"Nested protocol collapses to none", "javajavascript:script:alert(1)", "alert(1)"},
		{"Nested event handler collapses to none", "oonclick=nclick=x", "x"},
		{"Plain text unchanged", "Olá, gostaria de visitar", "Olá, gostaria de visitar"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInput(tt.input); got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeInput_NoForbiddenResidue(t *testing.T) {
	inputs := []string{
		"javajavascript:script:alert(1)",
		"javascrjavascript:ipt:x",
		"oonclick=nclick=x",
		"ononmouseover=click= y",
		"<scr<script>ipt>javascript:alert(1)</script>",
	}

	for _, input := range inputs {
		got := SanitizeInput(input)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("SanitizeInput(%q) output contains angle brackets: %q", input, got)
		}
		if jsProtocolRegex.MatchString(got) {
			t.Errorf("SanitizeInput(%q) output still contains javascript:, got %q", input, got)
		}
		if eventHandlerRegex.MatchString(got) {
			t.Errorf("SanitizeInput(%q) output still matches an event handler pattern, got %q", input, got)
		}
	}
}

func TestSanitizeInput_CapsLength(t *testing.T) {
	long := strings.Repeat("é", 1500)
	got := SanitizeInput(long)
	if runes := []rune(got); len(runes) != 1000 {
		t.Errorf("SanitizeInput() should cap at 1000 runes, got %d", len(runes))
	}
}

func TestParseBirthDate(t *testing.T) {
	if _, ok := ParseBirthDate("1990-05-20"); !ok {
		t.Error("ParseBirthDate() should accept YYYY-MM-DD")
	}
	if _, ok := ParseBirthDate("1990-05-20T00:00:00Z"); !ok {
		t.Error("ParseBirthDate() should accept RFC3339")
	}
	if _, ok := ParseBirthDate("20/05/1990"); ok {
		t.Error("ParseBirthDate() should reject DD/MM/YYYY")
	}
	if _, ok := ParseBirthDate("not-a-date"); ok {
		t.Error("ParseBirthDate() should reject garbage")
	}
}

func TestValidateBirthDate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"Adult", now.AddDate(-30, 0, 0).Format("2006-01-02"), true},
		{"Exactly 13 today", now.AddDate(-13, 0, 0).Format("2006-01-02"), true},
		{"Turns 13 tomorrow", now.AddDate(-13, 0, 1).Format("2006-01-02"), false},
		{"Exactly 120", now.AddDate(-120, 0, 0).Format("2006-01-02"), true},
		{"Older than 120", now.AddDate(-121, 0, 0).Format("2006-01-02"), false},
		{"Born today", now.Format("2006-01-02"), false},
		{"Unparseable", "31-02-1990", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateBirthDate(tt.date); got != tt.want {
				t.Errorf("ValidateBirthDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDetectSpam(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"Clean message", "Gostaria de saber o horário dos cultos", false},
		{"Spam keyword", "Buy viagra now", true},
		{"Keyword case insensitive", "CASINO bonus", true},
		{"Contains URL", "visit https://spam.example.com", true},
		{"Contains http URL", "http://x.y", true},
		{"Cyrillic characters", "привет", true},
		{"Repeated run", "aaaaa", true},
		{"Four repeats allowed", "aaaa", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSpam(tt.text); got != tt.want {
				t.Errorf("DetectSpam(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidateCadastroInput(t *testing.T) {
	tests := []struct {
		name         string
		input        models.CadastroInput
		wantValid    bool
		wantMessages []string
	}{
		{
			name: "Valid input",
			input: models.CadastroInput{
				Nome:     "Maria Silva",
				Email:    "maria@example.com",
				Telefone: "912345678",
			},
			wantValid: true,
		},
		{
			name: "Valid input with birth date",
			input: models.CadastroInput{
				Nome:           "Maria Silva",
				Email:          "maria@example.com",
				Telefone:       "+351 912 345 678",
				DataNascimento: "1990-05-20",
			},
			wantValid: true,
		},
		{
			name:      "All required fields missing",
			input:     models.CadastroInput{},
			wantValid: false,
			wantMessages: []string{
				"Nome é obrigatório",
				"Email é obrigatório",
				"Telefone é obrigatório",
			},
		},
		{
			name: "Name too short",
			input: models.CadastroInput{
				Nome:     "M",
				Email:    "maria@example.com",
				Telefone: "912345678",
			},
			wantValid:    false,
			wantMessages: []string{"Nome deve ter pelo menos 2 caracteres"},
		},
		{
			name: "Whitespace-only name is missing",
			input: models.CadastroInput{
				Nome:     "   ",
				Email:    "maria@example.com",
				Telefone: "912345678",
			},
			wantValid:    false,
			wantMessages: []string{"Nome é obrigatório"},
		},
		{
			name: "Invalid email and phone accumulate",
			input: models.CadastroInput{
				Nome:     "Maria Silva",
				Email:    "not-an-email",
				Telefone: "123",
			},
			wantValid: false,
			wantMessages: []string{
				"Email inválido",
				"Telefone inválido",
			},
		},
		{
			name: "Invalid birth date when provided",
			input: models.CadastroInput{
				Nome:           "Maria Silva",
				Email:          "maria@example.com",
				Telefone:       "912345678",
				DataNascimento: "banana",
			},
			wantValid:    false,
			wantMessages: []string{"Data de nascimento inválida"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCadastroInput(tt.input)

			if result.IsValid != tt.wantValid {
				t.Errorf("ValidateCadastroInput() IsValid = %v, want %v (errors: %v)",
					result.IsValid, tt.wantValid, result.Messages())
			}
			if !tt.wantValid {
				got := result.Messages()
				if len(got) != len(tt.wantMessages) {
					t.Fatalf("ValidateCadastroInput() messages = %v, want %v", got, tt.wantMessages)
				}
				for i := range got {
					if got[i] != tt.wantMessages[i] {
						t.Errorf("ValidateCadastroInput() message[%d] = %q, want %q", i, got[i], tt.wantMessages[i])
					}
				}
			}
		})
	}
}
