package main

import (
	"github.com/InternHub/internhub-backend/config"
	"github.com/InternHub/internhub-backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
