package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"whatameating/internal/domain/entity"

	"github.com/joho/godotenv"
)

const DefaultUploadMaxSize = 5242880

type Config struct {
	AppName    string
	AppVersion string
	Env        string
	Port       string
	StaticDir  string

	UploadMaxSize   int
	FoodMappingPath string

	ProjectID      string
	Region         string
	ModelID        string
	ScoreThreshold string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AuditStream   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	uploadMax, err := strconv.Atoi(getEnv("FILE_UPLOAD_MAX_SIZE", strconv.Itoa(DefaultUploadMaxSize)))
	if err != nil {
		uploadMax = 0 // rejected by Validate
	}
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		AppName:    getEnv("APP_NAME", "WhatAmIEating"),
		AppVersion: os.Getenv("APP_VERSION"),
		Env:        os.Getenv("ENV"),
		Port:       getEnv("PORT", "8080"),
		StaticDir:  getEnv("STATIC_DIR", "./web"),

		UploadMaxSize:   uploadMax,
		FoodMappingPath: getEnv("FOOD_MAPPING_PATH", "./data/food_mapping.txt"),

		ProjectID:      firstEnv("GCLOUD_PROJECT", "PROJECT_ID"),
		Region:         firstEnv("REGION_NAME", "COMPUTE_REGION"),
		ModelID:        os.Getenv("MODEL_ID"),
		ScoreThreshold: getEnv("SCORE_THRESHOLD", "0.5"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		AuditStream:   getEnv("AUDIT_STREAM", "access_log"),
	}
}

// Validate reports the first setting that would keep the server from serving.
func (c *Config) Validate() error {
	required := []struct{ key, val string }{
		{"GCLOUD_PROJECT/PROJECT_ID", c.ProjectID},
		{"REGION_NAME/COMPUTE_REGION", c.Region},
		{"MODEL_ID", c.ModelID},
	}
	for _, r := range required {
		if r.val == "" {
			return fmt.Errorf("%w: %s", entity.ErrMissingConfig, r.key)
		}
	}
	if c.UploadMaxSize <= 0 {
		return fmt.Errorf("%w: FILE_UPLOAD_MAX_SIZE must be a positive integer", entity.ErrMissingConfig)
	}
	th, err := strconv.ParseFloat(c.ScoreThreshold, 64)
	if err != nil || th < 0 || th > 1 {
		return fmt.Errorf("%w: SCORE_THRESHOLD must be a number in [0,1], got %q", entity.ErrMissingConfig, c.ScoreThreshold)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
