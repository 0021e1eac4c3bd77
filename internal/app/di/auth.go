package di

import (
	"os"
	"time"

	authhandler "mockflow_backend/internal/feature/auth/transport/handler"
	authusecase "mockflow_backend/internal/feature/auth/usecase"
	jwtmw "mockflow_backend/internal/platform/jwt"
)

// defaultTokenTTL is the lifetime of issued access tokens.
const defaultTokenTTL = time.Hour

// NewTokenHandler wires the API-key exchange: bcrypt hash from the
// environment, JWT generator signed with JWT_SECRET.
func NewTokenHandler() *authhandler.TokenHandler {
	gen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenTTL())
	uc := authusecase.NewTokenUsecase(os.Getenv("MOCKFLOW_API_KEY_HASH"), gen)
	return authhandler.NewTokenHandler(uc)
}

// tokenTTL reads TOKEN_TTL (e.g. "30m"), falling back to defaultTokenTTL.
func tokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultTokenTTL
}
