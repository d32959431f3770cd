package db

import (
	"context"
	"errors"
	"log"

	"github.com/wares-dev/wares/internal/config"
	"github.com/wares-dev/wares/internal/repository"
	"gorm.io/gorm"
)

// EnsureFirstSuperuser creates the bootstrap superuser account when one is
// configured and no user with that email exists yet.
func EnsureFirstSuperuser(ctx context.Context, conn *gorm.DB, cfg config.Config) error {
	if cfg.FirstSuperuserEmail == "" {
		return nil
	}

	users := repository.NewUserRepository(conn)

	_, err := users.GetByEmail(ctx, cfg.FirstSuperuserEmail)

	if err == nil {
		return nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	_, err = users.Create(ctx, repository.CreateUser{
		Email:       cfg.FirstSuperuserEmail,
		Password:    cfg.FirstSuperuserPassword,
		FullName:    "Superuser",
		IsSuperuser: true,
	})
	if err != nil {
		return err
	}

	log.Printf("Created first superuser %s", cfg.FirstSuperuserEmail)
	return nil
}
