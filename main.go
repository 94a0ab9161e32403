package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"truerate-engine/internal/handler"
	"truerate-engine/internal/repository"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Using Redis result cache at %s", addr)
		cache = repository.NewRedisCache(addr)
	} else {
		cache = repository.NewMemoryCache()
	}

	h := handler.New(cache)

	log.Printf("True-rate engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
