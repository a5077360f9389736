package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/ai"
	"github.com/spigell/ats-matcher/internal/ai/gemini"
	"github.com/spigell/ats-matcher/internal/logger"
	"github.com/spigell/ats-matcher/internal/secrets"
	"github.com/spigell/ats-matcher/internal/semantic"
)

const apiKeyEnv = "GEMINI_API_KEY"

// embeddingBackend holds what every semantic scorer of one command run shares.
// A nil loader means semantic scoring is off and reports fall back to the
// lexical and evidence components.
type embeddingBackend struct {
	loader    semantic.Loader
	cacheSize int
	redis     *redis.Client
	logger    *zap.Logger
}

func newEmbeddingBackend(ctx context.Context, cfg EmbeddingConfig, log *zap.Logger) (*embeddingBackend, error) {
	backend := &embeddingBackend{cacheSize: cfg.CacheSize, logger: log}
	if !cfg.Enabled {
		log.Info("semantic scoring disabled", zap.String("reason", "embedding.enabled is false"))
		return backend, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}

	apiKey, err := loadAPIKey(cfg)
	if err != nil {
		log.Warn("semantic scoring disabled",
			zap.Error(err),
			zap.String("hint", "set embedding.api-key-file, ATS_EMBEDDING_API_KEY_FILE or GEMINI_API_KEY"),
		)
		return backend, nil
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = gemini.DefaultModel
	}

	backend.logger = logger.ForBackend(log, logger.BackendEmbedding, gemini.Provider, model)
	backend.redis = semantic.ConnectRedis(ctx, cfg.RedisURL, backend.logger)
	backend.loader = gemini.Loader(gemini.Config{
		APIKey:            apiKey,
		Model:             model,
		RequestsPerSecond: cfg.RequestsPerSecond,
		MaxRetries:        cfg.MaxRetries,
		Logger:            backend.logger,
	})

	return backend, nil
}

// scorer returns a new scorer. Scorers are not shared between concurrent
// scoring calls, so batch runs ask for one per worker.
func (b *embeddingBackend) scorer() *semantic.Scorer {
	return semantic.NewScorer(b.loader,
		semantic.WithLogger(b.logger),
		semantic.WithCacheSize(b.cacheSize),
		semantic.WithRedis(b.redis),
	)
}

func (b *embeddingBackend) Close() {
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			b.logger.Debug("closing redis client", zap.Error(err))
		}
	}
}

func loadAPIKey(cfg EmbeddingConfig) (string, error) {
	return secrets.Load(secrets.Source{
		Name: "embedding api key",
		File: cfg.APIKeyFile,
		Env:  apiKeyEnv,
	})
}

// newRequirementsExtractor returns nil when extraction is off or cannot be
// configured; callers then score without structured requirements.
func newRequirementsExtractor(ctx context.Context, cfg *Config, log *zap.Logger) ai.RequirementsExtractor {
	if !cfg.Requirements.Extract {
		return nil
	}

	apiKey, err := loadAPIKey(cfg.Embedding)
	if err != nil {
		log.Warn("requirements extraction disabled", zap.Error(err))
		return nil
	}

	model := strings.TrimSpace(cfg.Requirements.Model)
	if model == "" {
		model = gemini.DefaultGenerationModel
	}

	genLogger := logger.ForBackend(log, logger.BackendGeneration, gemini.Provider, model)
	generator, err := gemini.NewGenerator(ctx, apiKey, model, cfg.Requirements.MaxRetries, genLogger)
	if err != nil {
		log.Warn("requirements extraction disabled", zap.Error(err))
		return nil
	}

	return gemini.NewRequirementsExtractor(generator, genLogger, cfg.Requirements.MaxLogLength)
}
