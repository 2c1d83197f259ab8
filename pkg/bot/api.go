package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/validation"
	"cadastrobot/storage"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

type maskResponse struct {
	Valor  string `json:"valor"`
	Estado string `json:"estado,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// NewRouter exposes the health check and the form helpers over HTTP.
func NewRouter(stg storage.IStorage, log logger.ILogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := stg.Ping(r.Context()); err != nil {
			log.Error("health check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/validar", func(w http.ResponseWriter, r *http.Request) {
			var form models.RegistrationForm
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "JSON inválido no corpo da requisição"})
				return
			}
			errs := validation.ValidateForm(form)
			writeJSON(w, http.StatusOK, validateResponse{Valid: errs.OK(), Errors: errs})
		})

		r.Get("/mascara", func(w http.ResponseWriter, r *http.Request) {
			value := r.URL.Query().Get("valor")
			switch r.URL.Query().Get("tipo") {
			case "cpf":
				masked, state := validation.LiveCPF(value)
				writeJSON(w, http.StatusOK, maskResponse{Valor: masked, Estado: state.String()})
			case "celular":
				writeJSON(w, http.StatusOK, maskResponse{Valor: validation.MaskPhone(value)})
			default:
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_type", Message: "tipo deve ser cpf ou celular"})
			}
		})
	})

	return r
}

// RunServer serves handler on port until ctx is cancelled.
func RunServer(ctx context.Context, port int, handler http.Handler, log logger.ILogger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server started", logger.Int("port", port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
