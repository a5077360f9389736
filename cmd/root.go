package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/ats-matcher/internal/ai/gemini"
	"github.com/spigell/ats-matcher/internal/batch"
	"github.com/spigell/ats-matcher/internal/semantic"
)

const (
	app = "ats-matcher"
)

type Config struct {
	Company      string             `mapstructure:"company"`
	Embedding    EmbeddingConfig    `mapstructure:"embedding"`
	Requirements RequirementsConfig `mapstructure:"requirements"`
	Batch        BatchConfig        `mapstructure:"batch"`
}

type EmbeddingConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	Provider          string  `mapstructure:"provider" validate:"omitempty,oneof=gemini"`
	Model             string  `mapstructure:"model"`
	APIKeyFile        string  `mapstructure:"api-key-file"`
	CacheSize         int     `mapstructure:"cache-size" validate:"gte=1"`
	RedisURL          string  `mapstructure:"redis-url" validate:"omitempty,url"`
	RequestsPerSecond float64 `mapstructure:"requests-per-second" validate:"gt=0"`
	MaxRetries        int     `mapstructure:"max-retries" validate:"gte=1"`
}

// RequirementsConfig controls LLM extraction of structured requirements for
// job descriptions that come without a requirements file. The API key is the
// embedding one.
type RequirementsConfig struct {
	Extract      bool   `mapstructure:"extract"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries" validate:"gte=0"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type BatchConfig struct {
	Concurrency int     `mapstructure:"concurrency" validate:"gte=1"`
	MinScore    float64 `mapstructure:"min-score" validate:"min=0,max=100"`
	ExcludeFile string  `mapstructure:"exclude-file"`
	MaxYearsGap int     `mapstructure:"max-years-gap" validate:"gte=-1"`
	// Jobs is decoded separately from the raw config value; see decodeJobs.
	Jobs []JobConfig `mapstructure:"-" validate:"dive"`
}

type JobConfig struct {
	Name             string `mapstructure:"name" validate:"required"`
	JDFile           string `mapstructure:"jd-file" validate:"required"`
	RequirementsFile string `mapstructure:"requirements-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ats-matcher scores a CV against job descriptions the way applicant tracking systems do",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("embedding.api-key-file", "ATS_EMBEDDING_API_KEY_FILE"); err != nil {
		log.Fatalf("binding ATS_EMBEDDING_API_KEY_FILE environment variable: %v", err)
	}

	setDefaults()
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ats-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("embedding.enabled", true)
	viper.SetDefault("embedding.provider", gemini.Provider)
	viper.SetDefault("embedding.model", gemini.DefaultModel)
	viper.SetDefault("embedding.cache-size", semantic.DefaultCacheSize)
	viper.SetDefault("embedding.requests-per-second", gemini.DefaultRequestsPerSecond)
	viper.SetDefault("embedding.max-retries", gemini.DefaultMaxRetries)

	viper.SetDefault("requirements.extract", false)
	viper.SetDefault("requirements.model", gemini.DefaultGenerationModel)
	viper.SetDefault("requirements.max-retries", gemini.DefaultMaxRetries)
	viper.SetDefault("requirements.max-log-length", 200)

	viper.SetDefault("batch.concurrency", batch.DefaultConcurrency)
	viper.SetDefault("batch.min-score", 0)
	viper.SetDefault("batch.max-years-gap", -1)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless named explicitly; batch checks for it itself.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	jobs, err := decodeJobs(viper.Get("batch.jobs"))
	if err != nil {
		return nil, err
	}
	config.Batch.Jobs = jobs

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// decodeJobs turns the raw batch.jobs value into job entries. Unknown keys
// are rejected so a misspelt jd-file does not silently drop a job.
func decodeJobs(raw any) ([]JobConfig, error) {
	if raw == nil {
		return nil, nil
	}

	var jobs []JobConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &jobs,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding batch.jobs: %w", err)
	}
	return jobs, nil
}
