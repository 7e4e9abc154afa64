package main

import (
	"log"

	"github.com/joho/godotenv"

	"modernride.dev/ride/pkg/commands"
)

func main() {
	// RIDE_* settings may live in a .env next to the binary's working dir.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
