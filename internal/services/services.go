package services

import (
	"github.com/icb-gaia/app-cadastro/internal/config"
)

// Global service instances, wired once at startup
var (
	CadastroServiceInstance   *CadastroService
	ConfigServiceInstance     *ConfigService
	SubmissionLimiterInstance *SubmissionLimiter
	NotifierInstance          *Notifier
)

// Init wires the global service instances. Must run after config and database
// initialization.
func Init() {
	CadastroServiceInstance = NewCadastroService()
	ConfigServiceInstance = NewConfigService()
	SubmissionLimiterInstance = NewSubmissionLimiter(
		config.Redis,
		config.AppConfig.SubmissionCooldown,
		config.AppConfig.RateLimitMarkerTTL,
	)
	NotifierInstance = NewNotifier()
}
