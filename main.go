package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "sab_waitlist/docs"
	"sab_waitlist/internal/auth"
	"sab_waitlist/internal/bot"
	"sab_waitlist/internal/client"
	"sab_waitlist/internal/config"
	"sab_waitlist/internal/exempt"
	"sab_waitlist/internal/handlers"
	"sab_waitlist/internal/metrics"
	"sab_waitlist/internal/sessions"
	"sab_waitlist/internal/storage"
	"sab_waitlist/internal/tasks"
	"sab_waitlist/internal/waitlist"
	"sab_waitlist/internal/ws"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// @Title						SAB Waitlist
// @Description				Buyer waitlist, steals accounting and live session relay
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if cfg.APIKey == "" {
		log.Println("WARNING: API_KEY is not set, mutating endpoints are open")
	}

	authorizer, err := auth.NewAuthorizer(cfg.APIKey)
	if err != nil {
		log.Fatal("Failed to hash API key: ", err)
	}

	var journal storage.Journal = storage.Discard{}
	if cfg.DatabaseURL != "" {
		db, err := storage.ConnectDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		gj, err := storage.NewGormJournal(db)
		if err != nil {
			log.Fatal(err)
		}
		journal = gj
	} else {
		log.Println("DATABASE_URL is not set, audit journal disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	go hub.Run(ctx)

	m := metrics.New()
	players := sessions.NewDirectory(cfg.StaleAfter)

	scheduler, err := tasks.InitScheduler(cfg.SweepSchedule, players, func(int) {
		m.Players.Set(float64(players.Count()))
	})
	if err != nil {
		log.Fatal(err)
	}
	defer scheduler.Stop()

	h := handlers.New(handlers.Handler{
		Waitlist: waitlist.NewEngine(),
		Exempt:   exempt.NewRegistry(),
		Players:  players,
		Jobs:     sessions.NewJobStore(),
		Hub:      hub,
		Journal:  journal,
		Metrics:  m,
		Auth:     authorizer,
	})

	r := handlers.NewRouter(h, cfg.CORSOrigins)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Printf("SAB Waitlist Server running on port %d", cfg.Port)
		log.Printf("API Key: %s", configured(authorizer.Configured()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	startBot(ctx, cfg.Port)

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown:", err)
	}
}

// startBot runs the chat bot in-process when a token is configured. It talks
// to this server over loopback, exactly as the standalone bot would.
func startBot(ctx context.Context, port int) {
	botCfg, err := config.LoadBot()
	if err != nil {
		log.Println("Bot disabled:", err)
		return
	}
	botCfg.WaitlistURL = fmt.Sprintf("http://localhost:%d", port)
	api := client.New(botCfg.WaitlistURL, botCfg.APIKey, botCfg.RequestTimeout)

	go func() {
		if err := bot.Run(ctx, botCfg, api); err != nil {
			log.Println("Bot stopped:", err)
		}
	}()
}

func configured(ok bool) string {
	if ok {
		return "Configured"
	}
	return "Not Set"
}
