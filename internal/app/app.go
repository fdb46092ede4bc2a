package app

import (
	"context"
	"log"
	"time"

	"github.com/anvita-health/anvita/internal/config"
	"github.com/anvita-health/anvita/internal/core"
	db "github.com/anvita-health/anvita/internal/core/database"
	"github.com/anvita-health/anvita/internal/core/llm"
	objectclient "github.com/anvita-health/anvita/internal/core/object-client"
	"github.com/anvita-health/anvita/internal/core/snapshot"
	"github.com/anvita-health/anvita/internal/services"
)

type App struct {
	DBClient core.DbClient
	Gemini   *llm.GeminiLLM
	Server   *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	dbClient, err := db.NewDatabaseClient(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Database initialized and ready.")

	var providers []core.LLMProvider
	var gemini *llm.GeminiLLM
	if cfg.GeminiAPIKey != "" {
		gemini, err = llm.NewGeminiLLM(appCtx, cfg.GeminiAPIKey, cfg.GenModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, gemini)
	}
	if cfg.FallbackAPIKey != "" {
		fallback, err := llm.NewOpenAICompatLLM(cfg.FallbackAPIKey, cfg.FallbackBaseURL, cfg.FallbackModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, fallback)
	}

	engine := snapshot.NewEngine(llm.NewChain(providers...))

	// Report archival is optional; without a bucket the service skips it.
	var archiver core.ObjectClient
	if cfg.ArchiveBucket != "" {
		archiver, err = objectclient.NewS3Client(appCtx, cfg)
		if err != nil {
			return nil, err
		}
	}

	svc := services.NewSnapshotService(engine, dbClient, archiver, cfg.ArchiveBucket)
	server := NewServer(cfg, svc)

	return &App{DBClient: dbClient, Gemini: gemini, Server: server}, nil
}

func (a *App) Close() {
	if a.Gemini != nil {
		_ = a.Gemini.Close()
	}
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
