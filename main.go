package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"local.dev/lyntr-backend/internal/auth"
	"local.dev/lyntr-backend/internal/blob"
	"local.dev/lyntr-backend/internal/cache"
	"local.dev/lyntr-backend/internal/chain"
	"local.dev/lyntr-backend/internal/config"
	"local.dev/lyntr-backend/internal/httpx"
	"local.dev/lyntr-backend/internal/ids"
	"local.dev/lyntr-backend/internal/messaging"
	"local.dev/lyntr-backend/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "lyntr-backend").Logger()

	cfg := config.Load()

	gen, err := ids.NewGenerator(cfg.NodeID)
	if err != nil {
		logger.Fatal().Err(err).Int64("node_id", cfg.NodeID).Msg("id generator init failed")
	}

	var lyntStore store.LyntStore
	if cfg.DBHost != "" {
		db, err := store.OpenPostgres(cfg.DSN())
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres connect failed")
		}
		ps, err := store.NewPostgresStore(db)
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres migrate failed")
		}
		lyntStore = ps
		logger.Info().Str("host", cfg.DBHost).Msg("using postgres store")
	} else {
		logger.Warn().Msg("DB_HOST not set, using in-memory store")
		lyntStore = store.NewMemoryStore()
	}

	var blobStore blob.Store
	if cfg.MinioEndpoint != "" {
		ms, err := blob.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			logger.Fatal().Err(err).Msg("minio connect failed")
		}
		blobStore = ms
		logger.Info().Str("endpoint", cfg.MinioEndpoint).Str("bucket", cfg.MinioBucket).Msg("using minio blob store")
	} else {
		logger.Warn().Msg("MINIO_ENDPOINT not set, using in-memory blob store")
		blobStore = blob.NewMemoryStore()
	}

	var verifier auth.Verifier
	switch cfg.AuthMode {
	case "firebase":
		client, err := config.NewAuthClient(cfg.FirebaseProjectID)
		if err != nil {
			logger.Fatal().Err(err).Msg("firebase auth init failed")
		}
		verifier = auth.NewFirebaseVerifier(client)
		logger.Info().Msg("using firebase token verification")
	default:
		if cfg.JWTSecret == "" {
			logger.Fatal().Msg("JWT_SECRET not set")
		}
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	}

	var chainCache *cache.ChainCache
	if cfg.RedisHost != "" {
		chainCache, err = cache.New(cfg.RedisAddr(), cfg.RedisPassword)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, chain caching disabled")
			chainCache = nil
		}
	}

	var events *messaging.Publisher
	if cfg.NATSHost != "" {
		events, err = messaging.Connect(cfg.NATSURL())
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, event publishing disabled")
			events = nil
		} else {
			defer events.Close()
		}
	}

	app := &httpx.AppCtx{
		Store:    lyntStore,
		Blob:     blobStore,
		IDs:      gen,
		Verifier: verifier,
		Chains:   &chain.Resolver{Store: lyntStore, Log: logger},
		Events:   events,
		Log:      logger,
	}
	// Assign only a live cache; a typed nil would make the interface non-nil.
	if chainCache != nil {
		app.Cache = chainCache
	}

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, httpx.NewRouter(app)); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
