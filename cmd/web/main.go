package main

import (
	"tasmeem_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; configuration falls back to real env vars.
	_ = godotenv.Load()

	app.Run()
}
