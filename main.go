package main

import (
	config "Vodostok/internal/config"
	drainage "Vodostok/internal/calc/drainage"
	plan "Vodostok/internal/calc/plan"
	batch "Vodostok/internal/calc/premium/batch"
	estimate "Vodostok/internal/calc/premium/estimate"
	importer "Vodostok/internal/calc/premium/importer"
	recommend "Vodostok/internal/calc/premium/recommend"
	report "Vodostok/internal/calc/report"
	diagram "Vodostok/internal/diagram"
	middleware "Vodostok/internal/middleware"
	version "Vodostok/internal/version"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(mux *mux.Router, cfg *config.Config, logger *log.Logger) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(middleware.Logger(logger))
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	api.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(version.Get())
	}).Methods("GET")

	drainageH := &drainage.Handler{}
	planH := &plan.Handler{}
	schemeH := &diagram.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	estimateH := &estimate.Handler{}
	reportH := &report.Handler{DefaultAuthor: cfg.Report.Author}

	tools := api.PathPrefix("/tools").Subrouter()

	tools.HandleFunc("/drainage/materials", drainageH.Materials).Methods("GET")
	tools.HandleFunc("/drainage/calc", drainageH.Calc).Methods("POST")
	tools.HandleFunc("/drainage/plan/add", planH.Add).Methods("POST")
	tools.HandleFunc("/drainage/plan/click", planH.Click).Methods("POST")
	tools.HandleFunc("/drainage/plan/remove", planH.Remove).Methods("POST")
	tools.HandleFunc("/drainage/scheme", schemeH.Scheme).Methods("POST")

	tools.HandleFunc("/drainage/batch", batchH.Drainage).Methods("POST")
	tools.HandleFunc("/drainage/import", importH.Drainage).Methods("POST")
	tools.HandleFunc("/drainage/recommend", recommendH.Materials).Methods("POST")
	tools.HandleFunc("/drainage/estimate.xlsx", estimateH.Export).Methods("POST")

	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	mainFileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	logger := log.New(os.Stdout, "", 0)

	mux := mux.NewRouter()
	HandleList(mux, cfg, logger)
	handler := middleware.CORS(cfg.Server.AllowedOrigins, mux)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}

	log.Printf("Vodostok %s: запуск сервера на %s", version.Get(), cfg.Addr())

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received!")
	log.Println("Закрытие активных соединений")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
