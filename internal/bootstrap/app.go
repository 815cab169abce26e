package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	googleauth "docqa-backend/internal/auth"
	"docqa-backend/internal/documents"
	"docqa-backend/internal/llm"
	"docqa-backend/internal/llm/gemini"
	"docqa-backend/internal/llm/openai"
	"docqa-backend/internal/qa"
	"docqa-backend/internal/shared/cache"
	"docqa-backend/internal/shared/config"
	"docqa-backend/internal/shared/server"
	"docqa-backend/internal/shared/storage/db"
	"docqa-backend/internal/shared/storage/object"
	localstore "docqa-backend/internal/shared/storage/object/local"
	s3store "docqa-backend/internal/shared/storage/object/s3"
	"docqa-backend/internal/users"
)

// App holds the assembled application and its closeable resources.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
	Cache  *cache.RedisCache
	LLM    llm.Client
}

// Build wires storage, cache, the completion client and all handlers from
// configuration. In dev, a missing or unreachable database degrades to
// in-memory repositories instead of failing startup.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	sqlDB := buildDB(ctx, cfg)
	app.DB = sqlDB

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var docCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.DocCacheTTL)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			app.Cache = redisCache
			docCache = redisCache
		}
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.LLM = llmClient

	var docRepo documents.DocumentsRepo
	var userRepo users.UsersRepo
	if sqlDB != nil {
		docRepo = documents.NewPGDocumentsRepo(sqlDB)
		userRepo = users.NewPGUsersRepo(sqlDB)
	} else {
		docRepo = documents.NewMemoryDocumentsRepo()
		userRepo = users.NewMemoryUsersRepo()
	}

	docSvc := &documents.Service{
		Repo:            docRepo,
		Store:           store,
		Cache:           docCache,
		StorageProvider: cfg.ObjectStoreType,
	}
	qaSvc := &qa.Service{Documents: docSvc, LLM: llmClient}
	userSvc := users.NewService(userRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:     cfg,
		Documents:  documents.NewHandler(docSvc),
		QA:         qa.NewHandler(qaSvc),
		Users:      users.NewHandler(userSvc),
		GoogleAuth: googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc),
	})
	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Cache != nil {
		a.Cache.Close()
	}
	if closer, ok := a.LLM.(interface{ Close() error }); ok {
		closer.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	case "none":
		return llm.PlaceholderClient{}, nil
	default:
		return gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.LLMModel)
	}
}
