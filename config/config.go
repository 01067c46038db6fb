package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL       string
	MongoURL          string
	DBType            string
	Port              string
	JWTSecret         string
	SlipTemplatePath  string
	R2Bucket          string
	R2AccountID       string
	R2PublicURL       string
	R2AccessKeyID     string
	R2SecretAccessKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		MongoURL:          os.Getenv("MONGO_URL"),
		DBType:            os.Getenv("DB_TYPE"),
		Port:              os.Getenv("PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SlipTemplatePath:  os.Getenv("SLIP_TEMPLATE_PATH"),
		R2Bucket:          os.Getenv("R2_BUCKET"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL:       os.Getenv("R2_PUBLIC_URL"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SlipTemplatePath == "" {
		cfg.SlipTemplatePath = "templates/slip_template.html"
	}
	return cfg
}
