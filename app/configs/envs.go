package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBPort           string
	Port             string
	AppAuthKey       string
	AppEncKey        string
	AppEnv           string
	CategoryMaxDepth int
	OTPTTL           time.Duration
	OTPMaxAttempts   int
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		Port:             os.Getenv("APP_PORT"),
		AppAuthKey:       os.Getenv("APP_AUTH_KEY"),
		AppEncKey:        os.Getenv("APP_ENC_KEY"),
		AppEnv:           os.Getenv("APP_ENV"),
		CategoryMaxDepth: getenvInt("CATEGORY_MAX_DEPTH", 4),
		OTPTTL:           time.Duration(getenvInt("OTP_TTL_SECONDS", 120)) * time.Second,
		OTPMaxAttempts:   getenvInt("OTP_MAX_ATTEMPTS", 5),
	}

}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

var LoadENV = LoadEnv()
