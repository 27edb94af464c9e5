package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ashleyliu31/sql-llm-chatbot/cmd"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/api"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/chatbot"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/database"
	"github.com/ashleyliu31/sql-llm-chatbot/internal/llm"
)

type APIConfig struct {
	DatabaseURL        string   `env:"DATABASE_URL,notEmpty,required"`
	LLMProvider        string   `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMAPIKey          string   `env:"LLM_API_KEY,notEmpty,required"`
	LLMModel           string   `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMBaseURL         string   `env:"LLM_BASE_URL"`
	LLMTemperature     float64  `env:"LLM_TEMPERATURE" envDefault:"0"`
	APIPort            string   `env:"API_PORT" envDefault:"8001"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.GetMigrator(db).Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	model, err := llm.New(llm.Config{
		Provider:    cfg.LLMProvider,
		APIKey:      cfg.LLMAPIKey,
		Model:       cfg.LLMModel,
		BaseURL:     cfg.LLMBaseURL,
		Temperature: cfg.LLMTemperature,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM gateway: %v", err)
	}

	bot := chatbot.New(model, database.NewCatalog(db))

	// --- Chi Router Setup ---
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log requests
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set request timeout
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // history rides on cookies
	}))

	apiHandler := api.NewChatService(bot)
	apiHandler.AddRoutes(r)

	r.Get("/healthz", api.RestHandler(func(r *http.Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	}))

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}
