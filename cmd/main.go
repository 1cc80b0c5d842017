package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sab_waitlist/internal/bot"
	"sab_waitlist/internal/client"
	"sab_waitlist/internal/config"
)

// Standalone chat bot for a waitlist server running elsewhere.
func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.APIKey == "" {
		log.Println("WARNING: API_KEY is not set")
	}
	if cfg.OwnerRoleID == "" && len(cfg.OwnerIDs) == 0 {
		log.Println("WARNING: neither OWNER_ROLE_ID nor OWNER_IDS is set, owner commands are unusable")
	}
	if cfg.BuyerRoleID == "" {
		log.Println("WARNING: BUYER_ROLE_ID is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.WaitlistURL, cfg.APIKey, cfg.RequestTimeout)
	if err := bot.Run(ctx, cfg, api); err != nil {
		log.Fatal(err)
	}
}
