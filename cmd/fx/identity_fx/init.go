package identity_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/internal/config"
	"skillsphere/internal/repositories"
	"skillsphere/internal/services"
	mem "skillsphere/pkg/memcache"
	"skillsphere/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideIdentityService)

func provideTokenIssuer(cfg *config.Config) (services.TokenIssuer, error) {
	tokens, err := utils.NewTokenService(utils.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func provideIdentityService(accountRepo repositories.AccountRepository, tokens services.TokenIssuer,
	revoked mem.RevokedTokenStore, log *zap.Logger) services.IdentityServiceInterface {
	return services.NewIdentityService(accountRepo, tokens, revoked, log)
}
