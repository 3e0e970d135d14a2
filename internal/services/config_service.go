package services

import (
	"context"
	"fmt"

	"github.com/icb-gaia/app-cadastro/internal/config"
	"github.com/icb-gaia/app-cadastro/internal/models"
	"github.com/icb-gaia/app-cadastro/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConfigService reads operator settings from the configuracoes collection,
// caching values in Redis
type ConfigService struct{}

// NewConfigService creates a new ConfigService
func NewConfigService() *ConfigService {
	return &ConfigService{}
}

// GetValue returns the value stored under chave, or an empty string when the
// setting does not exist
func (s *ConfigService) GetValue(ctx context.Context, chave string) (string, error) {
	cacheKey := "config:" + chave

	if config.Redis != nil {
		if val, err := config.Redis.Get(ctx, cacheKey).Result(); err == nil {
			observability.CacheHits.WithLabelValues("configuracao").Inc()
			return val, nil
		}
	}

	var setting models.Configuracao
	err := config.MongoDB.Collection(config.AppConfig.ConfiguracoesCollection).
		FindOne(ctx, bson.M{"chave": chave}).
		Decode(&setting)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		return "", fmt.Errorf("failed to read configuracao %q: %w", chave, err)
	}
	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()

	if config.Redis != nil {
		config.Redis.Set(ctx, cacheKey, setting.Valor, config.AppConfig.ConfigCacheTTL)
	}

	return setting.Valor, nil
}
