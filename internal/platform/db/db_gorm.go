package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/config"
)

// OpenDB は設定に従ってデータベース接続を開きます。
// TranslateErrorを有効にして開くため、ユニーク制約違反はドライバに依らず
// gorm.ErrDuplicatedKeyとして報告されます。
func OpenDB(cfg *config.Config) *gorm.DB {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		log.Fatalf("invalid DB configuration: %v", err)
	}

	var db *gorm.DB

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// dialectorFor は設定されたドライバ名に対応するgormダイアレクタを返します。
func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.DBDSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.DBDriver)
	}
}
