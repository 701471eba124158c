package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/cache"
	"github.com/iconclip/iconclip/pkg/pipeline"
	"github.com/iconclip/iconclip/pkg/server"
)

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendering pipeline over HTTP",
		Long: `Serve starts an HTTP server exposing pack listing and icon rendering.
Artifacts are cached on disk by default; pass --redis to share the cache
between instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog()
			if err != nil {
				return err
			}

			var store cache.Cache
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisAddr != "":
				store, err = cache.NewRedisCache(cmd.Context(), cache.RedisConfig{Addr: redisAddr})
				if err != nil {
					return err
				}
			default:
				if store, err = newCache(false); err != nil {
					return err
				}
			}

			runner := pipeline.NewRunner(cat, store, nil, nil, c.Logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(runner, c.Logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Shut down cleanly when the context is canceled.
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			c.Logger.Info("serving", "addr", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
