package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"leaflink/internal/catalog"
	"leaflink/internal/chat"
	"leaflink/internal/config"
	"leaflink/internal/db"
	"leaflink/internal/observability"
	"leaflink/internal/repository"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Println("ADVERTENCIA: OPENAI_API_KEY no está configurada en el archivo .env")
		log.Println("El chatbot no podrá generar respuestas hasta que se configure la clave.")
	}

	observability.Start(cfg.MetricsPort)

	var source catalog.Source

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Error al conectar a Postgres (pgxpool): %v", err)
		}
		defer pool.Close()
		source = &repository.CatalogRepository{DB: pool}
	} else {
		if _, err := os.Stat(cfg.CatalogPath); err != nil {
			log.Printf("ERROR: No se encontró el archivo %s", cfg.CatalogPath)
			log.Println("Asegúrate de que el archivo está en el directorio de trabajo del servidor.")
		}
		source = &catalog.FileSource{Path: cfg.CatalogPath}
	}

	if cfg.RedisURL != "" {
		source = &catalog.CachedSource{
			Client: redis.NewClient(&redis.Options{
				Addr: cfg.RedisURL,
			}),
			Origin: source,
			TTL:    time.Duration(cfg.CatalogCacheTTLMin) * time.Minute,
		}
	}

	generator := &chat.Generator{
		Client: openai.NewClient(cfg.OpenAIKey),
	}

	http.Handle("/chat", chat.Handler(source, generator))
	http.Handle("/health", chat.HealthHandler())

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, "./views/index.html")
	})

	log.Printf("LeafLink Bot escuchando en :%s", cfg.Port)
	http.ListenAndServe(":"+cfg.Port, nil)
}
