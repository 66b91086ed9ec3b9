// main.go - Entry point for the tour booking web server

package main // Declares the package name

import ( // Import required packages
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-tour-booking/auth"     // Session tokens and stores
	"go-tour-booking/config"   // Project config management
	"go-tour-booking/database" // Database connection and repositories
	"go-tour-booking/handlers" // HTTP handlers for the pages
	"go-tour-booking/i18n"     // Default language
	"go-tour-booking/logging"  // Logger setup
	"go-tour-booking/mqtt"     // Booking event publisher

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("config error")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg, log) // Connect, migrate and seed
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection error")
	}

	secret := []byte(cfg.SecretKey)
	if len(secret) == 0 {
		// Sessions signed with a random key do not survive a restart
		log.Warn().Msg("SECRET_KEY is not set, generating a random session key")
		if secret, err = auth.GenerateSecret(); err != nil {
			log.Fatal().Err(err).Msg("generate session key")
		}
	}

	var store auth.SessionStore = auth.NewGormSessionStore(db)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis connection error")
		}
		defer rdb.Close()
		store = auth.NewRedisSessionStore(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("sessions stored in redis")
	}

	var events mqtt.Publisher = mqtt.Nop{}
	if cfg.MQTTBroker != "" {
		client, err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopicPrefix, cfg.MQTTPublishTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("MQTT connection error")
		}
		defer client.Close()
		events = client
		log.Info().Str("broker", cfg.MQTTBroker).Msg("publishing booking events")
	}

	lang, ok := i18n.Parse(cfg.DefaultLang)
	if !ok {
		lang = i18n.Ukrainian
	}

	// STEP 2: Create the router and configure routes
	h := &handlers.Handler{
		Tours:         database.NewTourRepository(db),
		Users:         database.NewUserRepository(db),
		Sessions:      auth.NewSessions(secret, cfg.SessionTTL, store),
		Events:        events,
		Log:           log,
		DefaultLang:   lang,
		SecureCookies: cfg.SecureCookies,
	}
	router, err := handlers.NewRouter(h)
	if err != nil {
		log.Fatal().Err(err).Msg("load templates")
	}

	// STEP 3: Start the web server and stop it on SIGINT/SIGTERM
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
