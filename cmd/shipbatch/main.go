package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	httpserver "shipbatch/infrastructure/http"
	"shipbatch/infrastructure/ident"
	"shipbatch/infrastructure/store"
)

func main() {
	addr := getenv("APP_ADDR", ":8080")

	st := store.NewShipmentStore(ident.UUIDGenerator{})

	server := httpserver.NewServer(addr, st)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("shipbatch listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
