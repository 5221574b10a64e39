// Package restserver exposes the job control surface over HTTP: submit a
// run, poll a job, fetch an output artifact.
package restserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/windshadowstudio/engine/internal/job"
	"github.com/windshadowstudio/engine/internal/log"
)

// Controller represents the REST server controller
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	Server   http.Server
	listener net.Listener
	jobs     *job.Manager
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a new REST server controller. It binds the
// listener immediately so the caller can learn the effective port before
// serving starts (the desktop shell waits for it in a port file).
func NewController(ctx context.Context, wg *sync.WaitGroup, listenAddr string, jobs *job.Manager, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:    ctx,
		wg:     wg,
		jobs:   jobs,
		logger: logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("REST server could not listen on %s: %w", listenAddr, err)
	}
	ctrl.listener = listener
	ctrl.Server.Handler = ctrl.setupRouter()

	return ctrl, nil
}

// Port returns the port the server is bound to.
func (c *Controller) Port() int {
	return c.listener.Addr().(*net.TCPAddr).Port
}

// StartController starts serving requests and arranges shutdown when the
// controller context is cancelled.
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.Serve(c.listener); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(c.requestLogger)

	router.HandleFunc("/health", c.handlers.Health).Methods(http.MethodGet)
	router.HandleFunc("/jobs/run", c.handlers.RunJob).Methods(http.MethodPost)
	router.HandleFunc("/jobs/{id}", c.handlers.GetJob).Methods(http.MethodGet)
	router.HandleFunc("/jobs/{id}/files/{kind}", c.handlers.GetJobFile).Methods(http.MethodGet)

	return router
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs every request with its status and duration.
func (c *Controller) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		c.logger.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
