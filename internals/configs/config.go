package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	DatabaseURL string
	JWTSecret   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	DatabaseURL = strings.TrimSpace(GetEnv("DATABASE_URL"))
	JWTSecret = strings.TrimSpace(GetEnv("JWT_SECRET"))

	if DatabaseURL == "" {
		log.Fatal("❌ DATABASE_URL belum diset!")
	}
	log.Println("✅ DATABASE_URL berhasil dimuat.")

	if len(JWTSecret) < 32 {
		log.Fatal("❌ JWT_SECRET belum diset atau kurang dari 32 karakter!")
	}
	log.Println("✅ JWT_SECRET berhasil dimuat.")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction menentukan apakah detail error internal boleh ikut di response.
func IsProduction() bool {
	return strings.ToLower(GetEnv("APP_ENV", "development")) == "production"
}
