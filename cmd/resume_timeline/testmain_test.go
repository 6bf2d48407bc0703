package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	os.Exit(m.Run())
}
