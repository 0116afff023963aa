// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kottage/internal/ai"
	"kottage/internal/config"
	httptransport "kottage/internal/http"
	"kottage/internal/infra"
	"kottage/internal/maps"
	"kottage/internal/modules/address"
	"kottage/internal/modules/form"
	"kottage/internal/modules/profile"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := infra.NewSupabaseVerifier(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("auth init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	extractor, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer extractor.Close()

	var search *maps.AddressService
	if cfg.Maps.APIKey != "" {
		search, err = maps.NewAddressService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Printf("GOOGLE_MAPS_API_KEY not set, address search disabled")
	}

	profileStore := profile.NewStore(dbPool)
	profileSvc := profile.NewService(profileStore)

	addressStore := address.NewStore(redisClient)
	addressSvc := address.NewService(addressStore)

	formStore := form.NewStore(redisClient)
	formSvc := form.NewService(formStore, addressSvc)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Verifier:  verifier,
		Profiles:  profileSvc,
		Form:      formSvc,
		Addresses: addressSvc,
		Extractor: extractor,
		Search:    search,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("kottage api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
