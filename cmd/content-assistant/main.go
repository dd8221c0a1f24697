// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-assistant CLI: a
// GigaChat-backed generator for content plans, broadcast posts, lead
// magnets, and SEO articles, with PDF and HTML export.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-assistant/internal/content"
	"github.com/pdiddy/content-assistant/internal/httputil"
	"github.com/pdiddy/content-assistant/internal/llm"
	"github.com/pdiddy/content-assistant/internal/secrets"
	"github.com/pdiddy/content-assistant/internal/session"
	"github.com/pdiddy/content-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the content-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "content-assistant",
	Short: "GigaChat-backed content generation for small businesses",
	Long: `content-assistant generates marketing content with the GigaChat API:
structured content plans, social and mailing broadcasts, long-form lead
magnets, and SEO articles. Results are kept in a local session store and
can be exported to Markdown, PDF, or HTML.

Credentials resolve in order from the .secrets/ store, the
GIGACHAT_CREDENTIALS environment variable, and the config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env is optional; a missing file is not an error.
		_ = godotenv.Load()

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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-assistant.yaml or ~/.config/content-assistant/config.yaml)")
	rootCmd.PersistentFlags().String("model", "", "model identifier override (default: GigaChat-2-Max)")
	rootCmd.PersistentFlags().Float64("temperature", 0, "sampling temperature override")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-assistant"))
		}
	}

	viper.SetEnvPrefix("CONTENT_ASSISTANT")
	viper.AutomaticEnv()

	viper.SetDefault("prompts.dir", "assets/prompts")
	viper.SetDefault("export.fonts_dir", "assets/fonts")
	viper.SetDefault("export.output_dir", "output")
	viper.SetDefault("session.data_dir", ".assistant")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// assistantConfig assembles the effective configuration from the config
// file and environment.
func assistantConfig() types.AssistantConfig {
	return types.AssistantConfig{
		LLM: types.LLMConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:            viper.GetDuration("llm.timeout"),
				CABundleFile:       viper.GetString("llm.ca_bundle_file"),
				InsecureSkipVerify: viper.GetBool("llm.insecure_skip_verify"),
			},
			BaseURL:     viper.GetString("llm.base_url"),
			OAuthURL:    viper.GetString("llm.oauth_url"),
			Credentials: viper.GetString("llm.credentials"),
			Scope:       viper.GetString("llm.scope"),
			Model:       viper.GetString("llm.model"),
			Temperature: viper.GetFloat64("llm.temperature"),
		},
		Prompts: types.PromptsConfig{
			Dir: viper.GetString("prompts.dir"),
		},
		Export: types.ExportConfig{
			FontsDir:  viper.GetString("export.fonts_dir"),
			OutputDir: viper.GetString("export.output_dir"),
		},
		Session: types.SessionConfig{
			DataDir: viper.GetString("session.data_dir"),
		},
	}
}

// newAssistant wires the HTTP client, model client, and content service
// from the effective configuration and the persistent flag overrides.
func newAssistant(cmd *cobra.Command) (*content.Service, error) {
	cfg := assistantConfig()
	if cfg.LLM.CABundleFile == "" {
		cfg.LLM.CABundleFile = loadedSecrets["gigachat-ca-bundle"]
	}

	httpClient, err := httputil.NewClient(cfg.LLM.HTTPConfig)
	if err != nil {
		return nil, err
	}

	client := llm.NewClient(llm.Settings{
		Credentials: cfg.LLM.Credentials,
		Scope:       cfg.LLM.Scope,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		BaseURL:     cfg.LLM.BaseURL,
		OAuthURL:    cfg.LLM.OAuthURL,
		Secrets:     loadedSecrets,
		HTTPClient:  httpClient,
	})

	if model, _ := cmd.Flags().GetString("model"); model != "" {
		client.SetModel(model)
	}
	if cmd.Flags().Changed("temperature") {
		t, _ := cmd.Flags().GetFloat64("temperature")
		client.SetTemperature(t)
	}

	return content.NewService(client, cfg.Prompts.Dir), nil
}

// openStore opens the session store at the configured data directory.
func openStore() (*session.Store, error) {
	return session.NewStore(assistantConfig().Session.DataDir)
}

// saveGeneration stores a result, reporting the assigned ID on stderr so
// stdout stays clean for the generated content itself.
func saveGeneration(gen types.Generation) (int64, error) {
	store, err := openStore()
	if err != nil {
		return 0, err
	}
	defer store.Close()

	gen.CreatedAt = time.Now().UTC()
	id, err := store.Save(gen)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(os.Stderr, "Saved as generation %d\n", id)
	return id, nil
}

// streamToStdout prints stream fragments as they arrive and returns the
// accumulated text once the stream finishes.
func streamToStdout(stream llm.TextStream) (string, error) {
	defer stream.Close()

	var full []byte
	for chunk := range stream.Chunks() {
		fmt.Print(chunk)
		full = append(full, chunk...)
	}
	fmt.Println()
	if err := stream.Err(); err != nil {
		return "", err
	}
	return string(full), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
