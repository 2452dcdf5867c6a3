package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/internal/repositories"
	"skillsphere/internal/services"
)

var Module = fx.Provide(
	provideAccountService)

func provideAccountService(accountRepo repositories.AccountRepository, tokens services.TokenIssuer, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, log)
}
