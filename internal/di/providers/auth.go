package providers

import (
	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
)

// keyFile is where a generated token key persists between restarts.
const keyFile = "paseto.key"

// AuthKey wraps the hex-encoded token key.
type AuthKey string

// ProvideAuthKey loads the configured token key, or loads/generates one
// on disk when none is configured.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Auth.TokenKeyHex, keyFile)
	if err != nil {
		return "", err
	}

	log.Info("Authentication key loaded",
		"access_token_duration", cfg.Auth.AccessTokenDuration,
	)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	authKey := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(string(authKey), cfg.Auth.AccessTokenDuration)
}
