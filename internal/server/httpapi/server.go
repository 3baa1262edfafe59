// Package httpapi exposes the signup, login and task endpoints over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

// AuthService is the account side of the API.
type AuthService interface {
	TokenVerifier
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TaskService is the task side of the API. Every call is scoped to userID.
type TaskService interface {
	Create(ctx context.Context, userID, text string) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, userID, taskID string, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           AuthService
	verifier        TokenVerifier
	tasks           TaskService
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us AuthService, ts TaskService, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		verifier:        us,
		tasks:           ts,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler builds the routing table.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	public := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, s.withTracing(pattern, s.withLogging(h)))
	}
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, s.withTracing(pattern, s.withLogging(s.requireAuth(h))))
	}

	mux.HandleFunc("GET /health", s.health)

	public("POST /signup", s.signup)
	public("POST /login", s.login)

	protected("GET /tasks", s.listTasks)
	protected("POST /tasks", s.createTask)
	protected("PUT /tasks/{id}", s.updateTask)
	protected("DELETE /tasks/{id}", s.deleteTask)

	return mux
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
