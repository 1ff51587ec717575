// Package backend elige, una sola vez al arrancar, la implementación del repositorio.
package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/remote"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/sqlite"
	"github.com/jhoicas/blackwoods-compta/pkg/config"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// Open abre el backend indicado por cfg.Backend.Mode: el archivo SQLite local
// o el cliente de la API remota.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Repository, error) {
	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend.Mode {
	case config.BackendRemote:
		c := remote.New(cfg.Backend.Remote.BaseURL, cfg.Backend.Remote.Timeout(), log)
		log.Info().Str("backend", c.Info()).Msg("backend remoto seleccionado")
		return c, nil
	default:
		store, err := sqlite.Open(ctx, sqlite.Options{
			Path:              cfg.Backend.Local.Path(),
			SeedAdminPassword: cfg.Backend.Local.SeedAdminPassword,
			JWTSecret:         cfg.JWT.Secret,
			JWTIssuer:         cfg.JWT.Issuer,
			JWTExpMinutes:     cfg.JWT.Expiration,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("backend local: %w", err)
		}
		log.Info().Str("backend", store.Info()).Msg("backend local seleccionado")
		return store, nil
	}
}
