package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/seed"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Loads the demo catalog into PostgreSQL and prints tokens for local testing.
//
//	seed [-migrate] [-reset] [-tokens]
func main() {
	migrate := flag.Bool("migrate", false, "Create or update the items and carts tables first")
	reset := flag.Bool("reset", false, "Delete every existing item before seeding")
	tokens := flag.Bool("tokens", true, "Print a demo user and admin access token")
	flag.Parse()

	if err := run(*migrate, *reset, *tokens); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(migrate, reset, printTokens bool) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	var (
		db       *gorm.DB
		items    repository.ItemRepository
		tokenSvc service.TokenService
		logger   *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(logs.New, postgres.New, postgres.NewItemRepository, auth.NewJWTService),
		fx.Populate(&db, &items, &tokenSvc, &logger),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(ctx); err != nil {
			logger.Warn("Failed to stop seed app", slog.Any("error", err))
		}
	}()

	if migrate {
		if err := db.WithContext(ctx).AutoMigrate(&model.ItemModel{}, &model.CartModel{}); err != nil {
			return errors.Wrap(err, "failed to migrate schema")
		}
		logger.Info("Schema migrated")
	}

	if reset {
		result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ItemModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to clear items")
		}
		logger.Info("Cleared existing items", slog.Int64("deleted", result.RowsAffected))
	}

	if _, err := seed.Catalog(ctx, items, logger); err != nil {
		return err
	}

	if printTokens {
		return printDemoTokens(tokenSvc)
	}

	return nil
}

func printDemoTokens(tokenSvc service.TokenService) error {
	for _, roles := range []entity.Roles{{entity.RoleUser}, {entity.RoleUser, entity.RoleAdmin}} {
		userID := uuid.New()
		access, _, err := tokenSvc.GenerateTokens(userID, roles.ToStrings())
		if err != nil {
			return err
		}

		fmt.Printf("user_id=%s roles=%v\naccess_token=%s\n\n", userID, roles.ToStrings(), access)
	}

	return nil
}
