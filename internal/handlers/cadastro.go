package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"github.com/icb-gaia/app-cadastro/internal/services"
	"github.com/icb-gaia/app-cadastro/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CreateCadastro godoc
// @Summary Submit a new cadastro
// @Description Registers a website visitor for follow-up contact
// @Tags cadastro
// @Accept json
// @Produce json
// @Param cadastro body models.CadastroInput true "Visitor data"
// @Success 201 {object} CreateCadastroResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ConflictResponse
// @Failure 429 {object} RateLimitResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /cadastro [post]
func CreateCadastro(c *gin.Context) {
	ctx, span := otel.Tracer("handlers").Start(c.Request.Context(), "CreateCadastro")
	defer span.End()

	logger := observability.Logger().With(zap.String("ip", c.ClientIP()))

	allowed, retryAfter := services.SubmissionLimiterInstance.Check(ctx, c.ClientIP())
	if !allowed {
		observability.CadastroSubmissions.WithLabelValues("rate_limited").Inc()
		observability.RateLimitRejections.Inc()
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, RateLimitResponse{
			Error:      "Aguarde alguns segundos antes de enviar outro cadastro.",
			RetryAfter: retryAfter,
		})
		return
	}

	var input models.CadastroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		observability.CadastroSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos. Envie um JSON válido."})
		return
	}

	if result := utils.ValidateCadastroInput(input); !result.IsValid {
		observability.CadastroSubmissions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Dados inválidos",
			Details: result.Messages(),
		})
		return
	}

	cadastro := models.Cadastro{
		Nome:      utils.SanitizeInput(input.Nome),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Telefone:  utils.SanitizeInput(input.Telefone),
		Mensagem:  utils.SanitizeInput(input.Mensagem),
		Fonte:     config.AppConfig.CadastroFonte,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if strings.TrimSpace(input.DataNascimento) != "" {
		// Validation already accepted the value, so parsing cannot fail here
		if birth, ok := utils.ParseBirthDate(input.DataNascimento); ok {
			cadastro.DataNascimento = birth.Format("2006-01-02")
		}
	}

	span.SetAttributes(attribute.String("cadastro.email", observability.MaskEmail(cadastro.Email)))

	id, err := services.CadastroServiceInstance.Create(ctx, &cadastro)
	if err != nil {
		if err == models.ErrEmailAlreadyRegistered {
			observability.CadastroSubmissions.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusConflict, ConflictResponse{
				Error:   "Este email já está cadastrado.",
				Message: "Se você já se cadastrou, entraremos em contato em breve.",
			})
			return
		}
		observability.CadastroSubmissions.WithLabelValues("error").Inc()
		logger.Error("failed to create cadastro", zap.Error(err))
		c.JSON(http.StatusInternalServerError, InternalErrorResponse{
			Error:     "Erro interno do servidor. Tente novamente mais tarde.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	services.SubmissionLimiterInstance.Remember(ctx, c.ClientIP())
	services.NotifierInstance.NotifyCadastroCreated(cadastro)

	observability.CadastroSubmissions.WithLabelValues("created").Inc()
	logger.Info("cadastro created",
		zap.Int64("cadastro_id", id),
		zap.String("email", observability.MaskEmail(cadastro.Email)))

	c.JSON(http.StatusCreated, CreateCadastroResponse{
		Success:    true,
		Message:    "Cadastro realizado com sucesso! Entraremos em contato em breve.",
		CadastroID: id,
	})
}
