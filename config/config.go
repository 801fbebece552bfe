package config

import (
	"log"
	"os"

	"qr-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "qr_menu_super_secret_2024"))

// PaymentSecret is the shared secret used to verify gateway signatures
var PaymentSecret = getEnv("PAYMENT_SECRET", "qr_menu_payment_secret")

func init() {
	// .env is optional; env vars win either way
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = OpenDB(getEnv("DB_PATH", "qr_menu.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("✅ Database connected and migrated successfully")
}

// OpenDB opens and migrates a database at the given path. Tests pass
// ":memory:" to get an isolated throwaway store.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Category{},
		&models.Item{},
		&models.PaymentRecord{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
