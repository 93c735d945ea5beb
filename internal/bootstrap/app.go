package bootstrap

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"goblog/internal/config"
	"goblog/internal/model"
	"goblog/internal/pkg/upload"
	"goblog/internal/platform/database"
)

type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Uploads *upload.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := database.New(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Blog{}, &model.Comment{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	uploads, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		DB:        db,
		Uploads:   uploads,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
