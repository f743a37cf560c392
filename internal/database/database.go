package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anime-backend/internal/config"
	"anime-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	dialector, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	database := &Database{
		DB:     db,
		config: cfg,
	}

	if err := autoMigrate(db); err != nil {
		logrus.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.WithError(err).Error("Failed to seed database")
		return nil, fmt.Errorf("failed to seed database: %v", err)
	}

	return database, nil
}

// New wraps an already-opened gorm.DB. Tests use it to run the data
// layer against an in-memory SQLite store.
func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	return &Database{DB: db, config: cfg}
}

func dialectorFor(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		dsn := strings.TrimPrefix(url, "sqlite://")
		logrus.WithField("path", dsn).Info("Using SQLite database")
		return sqlite.Open(dsn), nil
	case strings.HasPrefix(url, "postgres://"):
		logrus.Info("Using PostgreSQL database")
		return postgres.Open(url), nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL %q: must start with sqlite:// or postgres://", url)
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func autoMigrate(db *gorm.DB) error {
	logrus.Info("Running auto migration...")

	err := db.AutoMigrate(
		&models.Anime{},
		&models.Review{},
	)

	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}

// seed inserts the demo catalog once, on first startup against an empty
// anime table. Subsequent startups are no-ops.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Anime{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Empty catalog, inserting seed anime")
	anime := seedAnime()
	return db.Create(&anime).Error
}

func seedAnime() []models.Anime {
	intPtr := func(v int) *int { return &v }

	return []models.Anime{
		{
			Title:       "Haikyuu!!",
			Genre:       "Sports",
			Year:        intPtr(2014),
			Episodes:    intPtr(25),
			Description: "The Karasuno volleyball club bets everything on reaching nationals.",
			ImagePath:   "images/haikyuu.jpg",
		},
		{
			Title:       "Blue Lock",
			Genre:       "Sports",
			Year:        intPtr(2022),
			Episodes:    intPtr(24),
			Description: "A ruthless program built to produce the world's best striker.",
			ImagePath:   "images/bluelock.jpg",
		},
		{
			Title:       "Attack on Titan",
			Genre:       "Dark Fantasy",
			Year:        intPtr(2013),
			Episodes:    intPtr(25),
			Description: "Humanity's war for survival inside walls overrun by titans.",
			ImagePath:   "images/aot.jpg",
		},
		{
			Title:       "Tokyo Revengers",
			Genre:       "Action",
			Year:        intPtr(2021),
			Episodes:    intPtr(24),
			Description: "A man leaps back in time to rewrite his life and save his gang.",
			ImagePath:   "images/tokyo_revengers.jpg",
		},
		{
			Title:       "Demon Slayer",
			Genre:       "Fantasy",
			Year:        intPtr(2019),
			Episodes:    intPtr(26),
			Description: "Tanjiro's journey to turn his demon sister human again.",
			ImagePath:   "images/demon_slayer.jpg",
		},
		{
			Title:       "Jujutsu Kaisen",
			Genre:       "Fantasy",
			Year:        intPtr(2020),
			Episodes:    intPtr(24),
			Description: "Sorcerers locked in a vicious struggle over cursed energy.",
			ImagePath:   "images/jjk.jpg",
		},
	}
}
