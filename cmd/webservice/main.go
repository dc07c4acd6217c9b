package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimikegami/toy-town/config"
	"github.com/alimikegami/toy-town/internal/app"
	"github.com/alimikegami/toy-town/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()
	app.SetupLogger(config)

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.ConnectionURI(), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create the MongoDB client")
	}

	if err := mongodb.Ping(context.Background(), db); err != nil {
		log.Error().Err(err).Msg("MongoDB is not reachable yet, serving anyway")
	} else if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Error().Err(err).Msg("Failed to create toy indexes")
	}

	server := app.App{
		DB:     db,
		Config: config,
	}
	server.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	}

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to stop the server gracefully")
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongodb.Disconnect(disconnectCtx, db); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
