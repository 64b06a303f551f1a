// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/internal/secrets"
	"github.com/pdiddy/content-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the content-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "content-engine",
	Short: "SEO article generation and enrichment pipeline",
	Long: `content-engine generates and refreshes long-form marketing articles.
It enriches generated prose with semantic keywords, competitor gap analysis,
verified references discovered through a SERP waterfall, internal link
suggestions, and preservation of embedded media across refreshes.

Each stage is a subcommand: generate, refresh, references, keywords, gaps,
links, and pages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-engine.yaml or ~/.config/content-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-engine"))
		}
	}

	viper.SetEnvPrefix("CONTENT_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("references.timeout", 15*time.Second)
	viper.SetDefault("references.user_agent", "content-engine/0.1")
	viper.SetDefault("references.validate_timeout", 6*time.Second)
	viper.SetDefault("references.probes_per_second", 10.0)
	viper.SetDefault("ai.max_retries", 3)
	viper.SetDefault("ai.max_tokens", 4000)
	viper.SetDefault("pages.db_path", "pages/pages.db")
	viper.SetDefault("pages.max_suggestions", 10)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// referenceConfig assembles the waterfall settings from config and secrets.
func referenceConfig() types.ReferenceConfig {
	return types.ReferenceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("references.timeout"),
			UserAgent: viper.GetString("references.user_agent"),
		},
		SerperAPIKey:      secretDefault("serper-api-key", viper.GetString("references.serper_api_key")),
		ResultsPerQuery:   viper.GetInt("references.results_per_query"),
		SoftTarget:        viper.GetInt("references.soft_target"),
		HardCap:           viper.GetInt("references.hard_cap"),
		MaxParallelChecks: viper.GetInt("references.max_parallel_checks"),
		ValidateTimeout:   viper.GetDuration("references.validate_timeout"),
		ProbesPerSecond:   viper.GetFloat64("references.probes_per_second"),
	}
}

// aiConfig assembles the generation settings from config and secrets.
// The API key is resolved per provider from the model identifier.
func aiConfig() types.AIConfig {
	model := viper.GetString("ai.model")
	cfg := types.AIConfig{
		Model:      model,
		MaxRetries: viper.GetInt("ai.max_retries"),
		MaxTokens:  viper.GetInt("ai.max_tokens"),
	}

	secretName := "anthropic-api-key"
	switch genai.ResolveProvider(model) {
	case genai.ProviderOpenAI:
		secretName = "openai-api-key"
	case genai.ProviderGemini:
		secretName = "gemini-api-key"
	}
	cfg.APIKey = secretDefault(secretName, viper.GetString("ai.api_key"))
	return cfg
}

func pagesConfig() types.PagesConfig {
	return types.PagesConfig{
		DBPath:         viper.GetString("pages.db_path"),
		MaxSuggestions: viper.GetInt("pages.max_suggestions"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
