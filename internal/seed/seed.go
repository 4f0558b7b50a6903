package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/ndthanh/studentms/internal/app/models"
	appRepos "github.com/ndthanh/studentms/internal/app/repositories"
	pkgAuth "github.com/ndthanh/studentms/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData ensures a default admin account exists so a fresh
// deployment can be logged into.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin user...")

	exists, err := userRepo.UsernameExists(ctx, "admin")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword("admin")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username: "admin",
		Password: hashedPassword,
		Role:     appModels.RoleAdmin,
		IsActive: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
