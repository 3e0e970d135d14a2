package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"github.com/icb-gaia/app-cadastro/internal/services"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ListCadastros godoc
// @Summary List cadastros
// @Description Returns one page of cadastros for moderation, most recent first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Param status query string false "Filter by status" Enums(pendente, contatado, confirmado, cancelado)
// @Success 200 {object} models.PaginatedCadastros
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /admin/cadastros [get]
func ListCadastros(c *gin.Context) {
	ctx, span := otel.Tracer("handlers").Start(c.Request.Context(), "ListCadastros")
	defer span.End()

	page, limit, err := services.ValidatePaginationParams(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetros de paginação inválidos"})
		return
	}

	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido"})
		return
	}

	result, err := services.CadastroServiceInstance.List(ctx, page, limit, status)
	if err != nil {
		observability.Logger().Error("failed to list cadastros", zap.Error(err))
		c.JSON(http.StatusInternalServerError, InternalErrorResponse{
			Error:     "Erro interno do servidor. Tente novamente mais tarde.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateCadastro godoc
// @Summary Update a cadastro
// @Description Changes the status and/or moderation notes of a cadastro
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cadastro id"
// @Param update body models.UpdateCadastroInput true "Fields to update"
// @Success 200 {object} UpdateCadastroResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} InternalErrorResponse
// @Router /admin/cadastros/{id} [put]
func UpdateCadastro(c *gin.Context) {
	ctx, span := otel.Tracer("handlers").Start(c.Request.Context(), "UpdateCadastro")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ID inválido"})
		return
	}

	var input models.UpdateCadastroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos. Envie um JSON válido."})
		return
	}

	if err := services.CadastroServiceInstance.Update(ctx, id, input); err != nil {
		switch err {
		case models.ErrNothingToUpdate:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nenhum campo para atualizar"})
		case models.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido"})
		case models.ErrCadastroNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cadastro não encontrado"})
		default:
			observability.Logger().Error("failed to update cadastro",
				zap.Int64("cadastro_id", id),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, InternalErrorResponse{
				Error:     "Erro interno do servidor. Tente novamente mais tarde.",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateCadastroResponse{
		Success: true,
		Message: "Cadastro atualizado com sucesso",
	})
}
