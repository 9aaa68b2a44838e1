// Package preview serves the scene catalog and rendered images over HTTP.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/crochess/scenes/internal/catalog"
)

type Catalog interface {
	ListScenes(ctx context.Context, filter catalog.Filter) ([]catalog.Record, error)
	Scene(ctx context.Context, name string) (catalog.Record, error)
}

type Server struct {
	catalog   Catalog
	accessLog io.Writer
}

func NewServer(c Catalog, accessLog io.Writer) *Server {
	return &Server{catalog: c, accessLog: accessLog}
}

// Handler routes:
//
//	GET /scenes?board=HD
//	GET /scenes/{name}
//	GET /scenes/{name}.png
func (s *Server) Handler() http.Handler {
	var router = mux.NewRouter()
	router.Handle("/scenes", s.listHandler()).Methods("GET")
	router.Handle("/scenes/{name}.png", s.imageHandler()).Methods("GET")
	router.Handle("/scenes/{name}", s.sceneHandler()).Methods("GET")
	var h = handlers.CompressHandler(router)
	h = handlers.CORS(handlers.AllowedMethods([]string{"GET", "HEAD", "OPTIONS"}), handlers.AllowedOrigins([]string{"*"}))(h)
	return handlers.LoggingHandler(s.accessLog, h)
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	var done = make(chan error, 1)
	go func() {
		<-ctx.Done()
		var shutdownCtx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()
	slog.Info("preview listening", "addr", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

func (s *Server) listHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filter = catalog.Filter{
			Board: r.URL.Query().Get("board"),
			RunID: r.URL.Query().Get("run"),
		}
		var records, err = s.catalog.ListScenes(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		if records == nil {
			records = []catalog.Record{}
		}
		writeJSON(w, http.StatusOK, records)
	})
}

func (s *Server) sceneHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rec, err = s.catalog.Scene(r.Context(), mux.Vars(r)["name"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})
}

func (s *Server) imageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rec, err = s.catalog.Scene(r.Context(), mux.Vars(r)["name"])
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		http.ServeFile(w, r, rec.Path)
	})
}

func writeError(w http.ResponseWriter, err error) {
	var status = http.StatusInternalServerError
	if errors.Is(err, catalog.ErrNotFound) {
		status = http.StatusNotFound
	} else {
		slog.Error("preview", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "err", err)
	}
}
