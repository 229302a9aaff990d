package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
	router     *mux.Router
}

func NewServer(address string) *Server {
	srv := &http.Server{
		Addr:         address,
		WriteTimeout: 90 * time.Second,
		ReadTimeout:  90 * time.Second,
	}
	apiServer := &Server{
		httpServer: srv,
	}
	apiServer.router = mux.NewRouter()
	apiServer.httpServer.Handler = apiServer.router
	return apiServer
}

// ListenAndServe blocks until the server is shut down.
func (w *Server) ListenAndServe() error {
	log.Infof("[api] Server started at %s", w.httpServer.Addr)
	err := w.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (w *Server) Shutdown(ctx context.Context) error {
	log.Infof("[api] Server at %s shutting down", w.httpServer.Addr)
	return w.httpServer.Shutdown(ctx)
}

func (w *Server) ServeHTTP(writer http.ResponseWriter, r *http.Request) {
	w.router.ServeHTTP(writer, r)
}

func (w *Server) AppendRoute(path string, handler func(http.ResponseWriter, *http.Request), methods ...string) {
	r := w.router.HandleFunc(path, LoggingMiddleware("API", handler))
	if len(methods) > 0 {
		r.Methods(methods...)
	}
}

// AppendFile serves the file at filePath under path. Missing files answer 404.
func (w *Server) AppendFile(path, filePath string) {
	w.AppendRoute(path, func(writer http.ResponseWriter, r *http.Request) {
		http.ServeFile(writer, r, filePath)
	}, http.MethodGet, http.MethodHead)
}
