package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/track-server/internal/form"
	"github.com/carson-networks/track-server/internal/handlers/v1/category"
	"github.com/carson-networks/track-server/internal/handlers/v1/status"
	"github.com/carson-networks/track-server/internal/handlers/v1/track"
	"github.com/carson-networks/track-server/internal/logging"
	"github.com/carson-networks/track-server/internal/service"
	"github.com/carson-networks/track-server/internal/storage"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Storage   *storage.Storage
	Validator *form.AmountValidator
}

// Handler builds the HTTP routes: /status as a plain handler and every /v1
// operation through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Track Server", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	trackService := r.Service.Track
	category.NewListCategoriesHandler().Register(api)
	track.NewCreateTrackHandler(trackService, r.Validator).Register(api)
	track.NewGetTrackHandler(trackService).Register(api)
	track.NewUpdateTrackHandler(trackService, r.Validator).Register(api)
	track.NewDeleteTrackHandler(trackService).Register(api)
	track.NewListTracksHandler(trackService).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
