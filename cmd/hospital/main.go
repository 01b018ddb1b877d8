package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/cmd/hospital/api"
	"github.com/SanteonNL/occupancy/cmd/hospital/config"
	"github.com/SanteonNL/occupancy/cmd/hospital/datasource"
	"github.com/SanteonNL/occupancy/cmd/hospital/ledger"
	"github.com/SanteonNL/occupancy/models/hospital"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fallback := config.Config{LogLevel: zerolog.InfoLevel}.Logger()
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := cfg.Logger()
	log.Debug().Msg("Starting hospital")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hospital.New(cfg.HospitalName, nil)

	var (
		store    api.OccupantStore
		recorder api.CheckInRecorder
	)
	if cfg.DatabaseURL != "" {
		db, err := datasource.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to the database")
		}
		defer db.Close()

		dataSource := datasource.NewDataSourceService(db, log)
		if err := dataSource.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate the database")
		}

		occupants, err := dataSource.ReadOccupants(ctx, cfg.HospitalName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read occupants")
		}
		h = hospital.New(cfg.HospitalName, occupants)
		store = dataSource

		checkIns, err := ledger.Open(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open the check-in ledger")
		}
		defer checkIns.Close()
		recorder = checkIns
	} else {
		log.Warn().Msg("DATABASE_URL not set, occupants are kept in memory only")
	}

	log.Info().Str("hospital", h.String()).Msg("Loaded hospital")

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewHospitalRouter(h, store, recorder, log).SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down server")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("Server started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}
