package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/transport/httpapi"
	"github.com/Domenick1991/flightdesk/internal/transport/sse"
	"github.com/gin-gonic/gin"
)

// Run starts one HTTP server carrying the REST and SSE adapters and blocks
// until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, disp *capability.Dispatcher) error {
	router := gin.Default()

	root := router.Group("/")
	httpapi.NewServer(disp).Register(root)
	sse.NewServer(disp).Register(root)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
