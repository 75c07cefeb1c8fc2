package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/prodash/prodash/http/controllers"
	"github.com/prodash/prodash/logger"
	"github.com/prodash/prodash/middleware"
	"github.com/prodash/prodash/router"
	"github.com/prodash/prodash/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API proxy server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		cfg.Server.Port = p
	}

	svc := newService()

	rt := router.New()
	controllers.NewProducts(svc).RegisterRoutes(rt)

	srv, err := server.New(server.Options{
		Config:  cfg,
		Handler: rt.Handler(),
		Middlewares: []func(http.Handler) http.Handler{
			middleware.CORS(cfg.Server.Cors),
			middleware.RequestLogger,
		},
	})
	if err != nil {
		return err
	}

	logger.Info("serve.upstream", logger.Fields{"base_url": cfg.Upstream.BaseURL})
	return srv.Start()
}
