package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/segfault/coursecatalog/internal/app/models"
	appRepos "github.com/segfault/coursecatalog/internal/app/repositories"
	"github.com/segfault/coursecatalog/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@coursecatalog.local"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData creates the default staff account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default staff account")
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default staff password")
		return err
	}

	admin := &appModels.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         appModels.RoleStaff,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default staff account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default staff account created")
	return nil
}
