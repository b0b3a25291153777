package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dormatory/dormatory-api/internal/config"
	"github.com/dormatory/dormatory-api/internal/services"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: dormatory-token <user>")
		os.Exit(1)
	}

	user := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("AUTH_SECRET is not set; the API runs open and needs no tokens")
	}

	tokenService := services.NewTokenService(cfg.AuthSecret, cfg.TokenExpiry)

	token, err := tokenService.Generate(user)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
