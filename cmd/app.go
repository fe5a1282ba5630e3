package cmd

import (
	"fmt"

	"impl-tracker/core/config"
	"impl-tracker/core/database"
	"impl-tracker/core/formatter"
	"impl-tracker/core/i18n"
	"impl-tracker/core/logger"
	"impl-tracker/core/storage"
	"impl-tracker/feature/implementation"
	"impl-tracker/feature/implementation/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the dependencies shared by the server and the CLI commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	client storage.Client
	impl   *implementation.Feature
}

// newApp loads the configuration and connects to the database and storage.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	catalog, err := i18n.Load(cfg.I18n)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	logg.Debug("Loaded translations", zap.String("locale", catalog.Locale()))

	impl := implementation.NewFeature(
		store.NewDocuments(db),
		store.NewSnapshots(client, cfg.Storage.Bucket),
		formatter.New(store.NewNameResolver(db), catalog),
		logg,
	)

	return &app{
		cfg:    cfg,
		logger: logg,
		db:     db,
		client: client,
		impl:   impl,
	}, nil
}
