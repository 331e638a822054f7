package main

import (
	"log"

	httpapi "crave-delivery/internal/api/http"
	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
	"crave-delivery/internal/config"
	"crave-delivery/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	store := catalog.NewStore()
	payments := checkout.NewProcessor(cfg.PaymentDelay, cfg.QRBaseURL)
	sessions := session.NewManager(store, payments)

	handler := httpapi.NewHandler(store, sessions)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
