package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	appsvc "mural-api/internal/app"
	"mural-api/internal/config"
	"mural-api/internal/model"
	mysqlClient "mural-api/internal/platform/mysql"
	"mural-api/internal/pkg/password"
	"mural-api/internal/repository"
)

type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Auth      *appsvc.AuthService
	Messages  *appsvc.MessageService
	Seeder    *appsvc.Seeder
	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	if cfg.UsesDefaultSecret() && cfg.App.Env != "dev" {
		log.Printf("WARNING: JWT_SECRET is still the default test-only value in env %q", cfg.App.Env)
	}

	db, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Message{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	hasher := password.Hasher{AllowLegacyPlaintext: cfg.Auth.AllowLegacyPlaintext}
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	authService := appsvc.NewAuthService(
		userRepo,
		hasher,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	return &App{
		Config:    cfg,
		DB:        db,
		Auth:      authService,
		Messages:  appsvc.NewMessageService(messageRepo),
		Seeder:    appsvc.NewSeeder(authService, appsvc.DefaultSeedAccounts),
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
