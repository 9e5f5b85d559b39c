package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/planreader/internal/logging"
	"github.com/ppiankov/planreader/internal/metrics"
	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags.
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	noCache bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "planreader",
	Short: "planreader - blueprint takeoff engine",
	Long: `planreader reads construction plan sheets (PDF, text, HTML or scanned
images) and turns them into a supplier-ready material takeoff.

It estimates building geometry from the dimensions and keywords it finds,
then derives framing, connector, fastener, anchor and finish quantities
using field standards. Every quantity is rounded up to a whole unit.

Estimates are heuristic. Check them against the plans before ordering.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return metrics.WriteTextfile(viper.GetString("metrics.textfile_path"))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "planreader %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.planreader/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("store", "", "SQLite file for saved takeoffs (default: keep in memory)")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: table, json or csv")
	rootCmd.PersistentFlags().String("ocr", "", "OCR provider for scanned pages (openai, anthropic, ollama)")
	rootCmd.PersistentFlags().String("ocr-model", "", "OCR model name")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the parsed-estimate cache")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("metrics.textfile_path", rootCmd.PersistentFlags().Lookup("metrics-textfile"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("ocr.provider", rootCmd.PersistentFlags().Lookup("ocr"))
	_ = viper.BindPFlag("ocr.model", rootCmd.PersistentFlags().Lookup("ocr-model"))

	setDefaults(viper.GetViper(), model.DefaultConfig())

	rootCmd.AddCommand(versionCmd)
}

// setDefaults registers every config key with viper so that PLANREADER_*
// environment variables are seen by Unmarshal.
func setDefaults(v *viper.Viper, d *model.Config) {
	v.SetDefault("ocr.provider", d.OCR.Provider)
	v.SetDefault("ocr.model", d.OCR.Model)
	v.SetDefault("ocr.api_key", d.OCR.APIKey)
	v.SetDefault("ocr.base_url", d.OCR.BaseURL)
	v.SetDefault("ocr.timeout", d.OCR.Timeout)
	v.SetDefault("ocr.max_tokens", d.OCR.MaxTokens)
	v.SetDefault("ocr.min_text_chars", d.OCR.MinTextChars)
	v.SetDefault("ocr.requests_per_second", d.OCR.RequestsPerSecond)
	v.SetDefault("ocr.burst", d.OCR.Burst)
	v.SetDefault("ocr.http_proxy", d.OCR.HTTPProxy)
	v.SetDefault("ocr.https_proxy", d.OCR.HTTPSProxy)
	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("fetch.max_bytes", d.Fetch.MaxBytes)
	v.SetDefault("fetch.retries", d.Fetch.Retries)
	v.SetDefault("fetch.respect_robots", d.Fetch.RespectRobots)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	v.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("concurrency.workers", d.Concurrency.Workers)
	v.SetDefault("output.verbose", d.Output.Verbose)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("metrics.textfile_path", d.Metrics.TextfilePath)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".planreader"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// PLANREADER_OCR_PROVIDER maps to ocr.provider
	viper.SetEnvPrefix("PLANREADER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from viper.
func loadConfig() (*model.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	applyProviderEnv(&cfg.OCR)
	if noCache {
		cfg.Cache.Enabled = false
	}
	return cfg, nil
}

// applyProviderEnv fills OCR credentials from the provider's conventional
// environment variables when the config leaves them empty.
func applyProviderEnv(ocr *model.OCRConfig) {
	switch strings.ToLower(ocr.Provider) {
	case "openai":
		if ocr.APIKey == "" {
			ocr.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	case "anthropic", "claude":
		if ocr.APIKey == "" {
			ocr.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	case "ollama":
		if ocr.BaseURL == "" {
			ocr.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}
}

// env bundles what every document command needs. Close releases the store
// and flushes the logger.
type env struct {
	cfg    *model.Config
	logger *zap.Logger
	store  store.Store
}

func setup() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Verbose(cfg.Logging, cfg.Output.Verbose))
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &env{cfg: cfg, logger: logger, store: st}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}
