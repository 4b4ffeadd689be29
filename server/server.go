// Package server exposes the engine over HTTP: the command surface, the
// configuration endpoints, and the websocket progress stream.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mediasort/mediasort/pkg/manager"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server houses all dependencies for the http surface
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.MediaManager
}

// New creates a new media server
func New(logger *zap.SugaredLogger, manager *manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/scan", s.StartScan()).Methods(http.MethodPost)
	v1.HandleFunc("/organize", s.StartOrganize()).Methods(http.MethodPost)

	v1.HandleFunc("/items", s.ListMediaItems()).Methods(http.MethodGet)
	v1.HandleFunc("/items/{id}", s.GetMediaItem()).Methods(http.MethodGet)
	v1.HandleFunc("/items/{id}", s.UpdateMediaItem()).Methods(http.MethodPatch)
	v1.HandleFunc("/items/{id}", s.DeleteMediaItem()).Methods(http.MethodDelete)
	v1.HandleFunc("/items/{id}/rescan", s.RescanItem()).Methods(http.MethodPost)
	v1.HandleFunc("/items/{id}/undo", s.UndoOrganize()).Methods(http.MethodPost)

	v1.HandleFunc("/stats", s.GetStats()).Methods(http.MethodGet)
	v1.HandleFunc("/settings", s.GetSettings()).Methods(http.MethodGet)
	v1.HandleFunc("/settings", s.UpdateSettings()).Methods(http.MethodPut)
	v1.HandleFunc("/browse", s.Browse()).Methods(http.MethodGet)

	v1.HandleFunc("/jobs/scan/latest", s.GetLatestScanJob()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/scan/{id}", s.GetScanJob()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/organize/latest", s.GetLatestOrganizeJob()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/organize/{id}", s.GetOrganizeJob()).Methods(http.MethodGet)

	v1.HandleFunc("/logs", s.ListOrganizationLogs()).Methods(http.MethodGet)
	v1.HandleFunc("/library/movies", s.ListMovieRecords()).Methods(http.MethodGet)
	v1.HandleFunc("/library/tv", s.ListTvSeriesRecords()).Methods(http.MethodGet)

	v1.HandleFunc("/events", s.Events())

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
