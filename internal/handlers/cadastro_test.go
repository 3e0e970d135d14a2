package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/services"
)

func init() {
	logging.InitLogger()
	gin.SetMode(gin.TestMode)

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	config.AppConfig.AdminToken = "test-admin-token"
	config.AppConfig.CadastroFonte = "website"
	config.AppConfig.SubmissionCooldown = 30 * time.Second
	config.AppConfig.RateLimitMarkerTTL = 5 * time.Minute

	// Without Redis the limiter degrades to allow, so the validation paths
	// below are reachable without any backing store.
	services.CadastroServiceInstance = services.NewCadastroService()
	services.SubmissionLimiterInstance = services.NewSubmissionLimiter(
		nil,
		config.AppConfig.SubmissionCooldown,
		config.AppConfig.RateLimitMarkerTTL,
	)
}

func newCadastroTestRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/cadastro", CreateCadastro)
	return router
}

func postCadastro(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("POST", "/api/cadastro", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCadastro_MalformedJSON(t *testing.T) {
	router := newCadastroTestRouter()

	w := postCadastro(t, router, "{not json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateCadastro() status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Dados inválidos. Envie um JSON válido." {
		t.Errorf("CreateCadastro() error = %q", resp.Error)
	}
}

func TestCreateCadastro_ValidationErrors(t *testing.T) {
	router := newCadastroTestRouter()

	w := postCadastro(t, router, `{"nome":"M","email":"invalid","telefone":"123"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateCadastro() status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Dados inválidos" {
		t.Errorf("CreateCadastro() error = %q, want %q", resp.Error, "Dados inválidos")
	}

	want := []string{
		"Nome deve ter pelo menos 2 caracteres",
		"Email inválido",
		"Telefone inválido",
	}
	if len(resp.Details) != len(want) {
		t.Fatalf("CreateCadastro() details = %v, want %v", resp.Details, want)
	}
	for i := range want {
		if resp.Details[i] != want[i] {
			t.Errorf("CreateCadastro() details[%d] = %q, want %q", i, resp.Details[i], want[i])
		}
	}
}

func TestCreateCadastro_MissingRequiredFields(t *testing.T) {
	router := newCadastroTestRouter()

	w := postCadastro(t, router, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateCadastro() status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Details) != 3 {
		t.Errorf("CreateCadastro() should report the three missing fields, got %v", resp.Details)
	}
}

func TestCreateCadastro_InvalidBirthDate(t *testing.T) {
	router := newCadastroTestRouter()

	w := postCadastro(t, router,
		`{"nome":"Maria Silva","email":"maria@example.com","telefone":"912345678","dataNascimento":"not-a-date"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateCadastro() status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0] != "Data de nascimento inválida" {
		t.Errorf("CreateCadastro() details = %v", resp.Details)
	}
}
