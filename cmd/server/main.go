package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/home-weather-service/config"
	"ulascansenturk/home-weather-service/internal/api/v1/handlers"
	"ulascansenturk/home-weather-service/internal/db/feedback"
	"ulascansenturk/home-weather-service/internal/db/weatherquery"
	"ulascansenturk/home-weather-service/internal/providers"
	"ulascansenturk/home-weather-service/internal/scan"
	"ulascansenturk/home-weather-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var (
		weatherRepo  weatherquery.Repository
		feedbackRepo feedback.Repository
	)

	if conf.PersistenceEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		weatherRepo = weatherquery.NewRepository(db)
		feedbackRepo = feedback.NewRepository(db)
	} else {
		log.Warn().Msg("DATABASE_HOST not set, running without history or stored feedback")
	}

	upstreamClient := &http.Client{Timeout: conf.UpstreamTimeout}

	resolver := service.NewLocationWeatherResolver(
		providers.NewOpenMeteoForecast(conf.ForecastBaseURL, upstreamClient),
		providers.NewNominatimGeocoder(conf.GeocodeBaseURL, conf.GeocodeUserAgent, upstreamClient),
	)

	weatherService := service.NewWeatherService(resolver, weatherRepo)
	sessions := service.NewSessionManager(resolver, weatherRepo, conf.SessionTTL, conf.SessionCleanupInterval)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	router := handlers.NewRouter(
		handlers.NewHomeHandler(weatherService, sessions, conf.HTTPTimeoutDuration(), conf.HistoryLimit),
		handlers.NewFeedbackHandler(feedbackService, conf.HTTPTimeoutDuration()),
		handlers.NewScanHandler(scan.NewStaticClassifier(conf.ScanDelay), conf.HTTPTimeoutDuration()),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		sessions.Shutdown()
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}, &feedback.Feedback{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
