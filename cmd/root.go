package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prodash/prodash/config"
	"github.com/prodash/prodash/logger"
	"github.com/prodash/prodash/services/products"
	"github.com/prodash/prodash/upstream"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "prodash",
	Short: "Prodash - product dashboard proxy & MCP server",
	Long:  "Administrative product dashboard: an API proxy to an upstream product service, with an MCP interface for agent clients.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "config.json", "Path to config file")
	rootCmd.PersistentFlags().String("upstream", "", "Upstream product API base URL")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func initConfig() {
	cfg = config.Default()

	path, _ := rootCmd.PersistentFlags().GetString("config")
	if err := cfg.LoadFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.LoadFromEnv()

	if v, _ := rootCmd.PersistentFlags().GetString("upstream"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("debug"); v {
		cfg.App.Debug = true
	}
}

// newService builds the proxy service over the configured upstream and
// installs the process logger so service failures are reported.
func newService() *products.Service {
	level := logger.LevelInfo
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.NewConsole(os.Stderr, level, true)
	logger.SetStd(log)
	return products.NewService(upstream.New(cfg.Upstream), log)
}

// requireUpstream fails fast when no upstream base URL is configured:
// every operation this binary offers forwards there.
func requireUpstream() error {
	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is not configured: set UPSTREAM_BASE_URL or --upstream")
	}
	return nil
}
