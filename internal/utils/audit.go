package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"go.uber.org/zap"
)

// Audit action constants
const (
	AuditActionCreated = "criado"
	AuditActionUpdated = "atualizado"
)

// LogCadastroCreated appends the audit entry for a newly created cadastro
func LogCadastroCreated(ctx context.Context, cadastroID int64) error {
	return appendAuditEntry(ctx, models.CadastroLog{
		CadastroID: cadastroID,
		Acao:       AuditActionCreated,
		Detalhes:   "Cadastro realizado via website",
	})
}

// LogCadastroUpdated appends the audit entry for a moderation update
func LogCadastroUpdated(ctx context.Context, cadastroID int64, detalhes string) error {
	return appendAuditEntry(ctx, models.CadastroLog{
		CadastroID: cadastroID,
		Acao:       AuditActionUpdated,
		Detalhes:   detalhes,
	})
}

// appendAuditEntry inserts one entry into the append-only audit collection.
// Entries are never mutated or deleted.
func appendAuditEntry(ctx context.Context, entry models.CadastroLog) error {
	logger := logging.Logger.With(
		zap.Int64("cadastro_id", entry.CadastroID),
		zap.String("acao", entry.Acao),
	)

	entry.CreatedAt = time.Now().UTC()

	// Separate timeout so a hanging insert cannot outlive the request budget
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := config.MongoDB.Collection(config.AppConfig.CadastroLogsCollection).InsertOne(dbCtx, entry)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("audit_insert", "error").Inc()
		logger.Error("failed to insert audit log entry", zap.Error(err))
		return fmt.Errorf("failed to insert audit log entry: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("audit_insert", "success").Inc()
	logger.Debug("audit entry recorded", zap.String("detalhes", entry.Detalhes))
	return nil
}
