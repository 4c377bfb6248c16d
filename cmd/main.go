package main

import (
	"context"
	"log"
	"net/http"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"ask_relay/internal/config"
	config_llm "ask_relay/internal/config/llm"
	"ask_relay/internal/service/ask"
	service_llm "ask_relay/internal/service/llm"
	"ask_relay/internal/transport/http/router"
)

func main() {
	color.Cyan("🚀 Starting Answer Relay Service...")

	// .env is optional
	color.Yellow("📦 Loading .env file...")
	if err := godotenv.Load(); err != nil {
		color.Yellow("⚠️  No .env loaded: %v", err)
	} else {
		color.Green("✅ .env loaded successfully")
	}

	// read configuration
	cfg := config.Load()

	color.Blue("🔧 Configuration:")
	log.Printf("   BASE_URL:  %s", config_llm.BaseURL)
	log.Printf("   MODEL:     %s", config_llm.Model)
	log.Printf("   BACKEND:   %s", cfg.Backend)
	log.Printf("   PORT:      %s", cfg.Port)
	if cfg.Token == "" {
		color.Yellow("⚠️  GIT_HUB_TOKEN is empty, upstream calls will fail authentication")
	}

	ctx := context.Background()

	// upstream client
	color.Yellow("🔌 Initializing upstream client...")
	completer, err := service_llm.NewCompleter(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize upstream client: %v", err)
	}
	// preflight failure only warns
	if cfg.Preflight {
		if err := service_llm.Preflight(ctx, cfg); err != nil {
			color.Red("⚠️  Upstream preflight failed: %v", err)
		} else {
			color.Green("✅ Upstream preflight passed")
		}
	}
	color.Green("✅ Upstream client initialized")

	// router
	r := router.New(ask.NewAsk(completer))

	// start server
	addr := cfg.Addr()
	color.Magenta("🌐 Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
