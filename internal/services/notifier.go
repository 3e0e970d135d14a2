package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/logging"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"github.com/icb-gaia/app-cadastro/internal/utils"
	"github.com/icb-gaia/app-cadastro/internal/utils/httpclient"
	"go.uber.org/zap"
)

const notificationMaxAttempts = 3

// Notifier delivers a summary of each new cadastro to the operator channel via
// an outbound webhook. Delivery is strictly best effort: it runs detached from
// the request, retries a bounded number of times, and every failure is logged
// and discarded.
type Notifier struct {
	pool *httpclient.Pool
}

// NewNotifier creates a new Notifier
func NewNotifier() *Notifier {
	return &Notifier{
		pool: httpclient.NewPool(4),
	}
}

type notificationPayload struct {
	To             string `json:"to"`
	Subject        string `json:"subject"`
	CadastroID     int64  `json:"cadastro_id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Mensagem       string `json:"mensagem,omitempty"`
}

// NotifyCadastroCreated schedules the operator notification for a new
// cadastro. It returns immediately; the outcome never affects the submission.
func (n *Notifier) NotifyCadastroCreated(cadastro models.Cadastro) {
	go n.deliver(cadastro)
}

func (n *Notifier) deliver(cadastro models.Cadastro) {
	logger := logging.Logger.With(
		zap.Int64("cadastro_id", cadastro.ID),
		zap.String("email", observability.MaskEmail(cadastro.Email)),
		zap.String("telefone", observability.MaskPhone(cadastro.Telefone)),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification delivery panicked", zap.Any("panic", r))
		}
	}()

	webhookURL := config.AppConfig.NotificationWebhookURL
	if webhookURL == "" {
		logger.Debug("notification webhook not configured, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.NotificationTimeout)
	defer cancel()

	destino, err := ConfigServiceInstance.GetValue(ctx, "notificacao_email")
	if err != nil {
		logger.Warn("failed to resolve notification destination", zap.Error(err))
		return
	}
	if destino == "" {
		logger.Info("notification destination not configured, skipping")
		return
	}

	payload := notificationPayload{
		To:             destino,
		Subject:        fmt.Sprintf("Novo cadastro #%d", cadastro.ID),
		CadastroID:     cadastro.ID,
		Nome:           cadastro.Nome,
		Email:          cadastro.Email,
		Telefone:       utils.FormatPhoneE164(cadastro.Telefone),
		DataNascimento: cadastro.DataNascimento,
		Mensagem:       cadastro.Mensagem,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal notification payload", zap.Error(err))
		return
	}

	client := n.pool.Get()
	defer n.pool.Put(client)

	for attempt := 1; attempt <= notificationMaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
		if err != nil {
			logger.Error("failed to create notification request", zap.Error(err))
			break
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				observability.NotificationDeliveries.WithLabelValues("success").Inc()
				logger.Info("operator notification delivered", zap.Int("attempt", attempt))
				return
			}
			logger.Warn("notification webhook returned non-success status",
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt))
		} else {
			logger.Warn("notification webhook request failed",
				zap.Error(err),
				zap.Int("attempt", attempt))
		}

		if attempt < notificationMaxAttempts {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
	}

	observability.NotificationDeliveries.WithLabelValues("failure").Inc()
	logger.Warn("operator notification not delivered, giving up")
}
