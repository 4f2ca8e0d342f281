package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/appvendas/vendas-backend/internal/db"
	"github.com/appvendas/vendas-backend/internal/modules/auth"
	"github.com/appvendas/vendas-backend/internal/modules/bootstrap"
	"github.com/appvendas/vendas-backend/internal/modules/catalog"
	"github.com/appvendas/vendas-backend/internal/modules/event"
	"github.com/appvendas/vendas-backend/internal/modules/lookup"
	"github.com/appvendas/vendas-backend/internal/modules/reports"
	"github.com/appvendas/vendas-backend/internal/modules/sales"
	"github.com/appvendas/vendas-backend/internal/modules/user"
	"github.com/appvendas/vendas-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Access gate ─────────────────────────────────────────
	// Optional: only installed when an access code hash is configured.
	codeHash := os.Getenv("POS_ACCESS_CODE_HASH")
	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if codeHash != "" {
		router.Use(auth.RequireToken([]byte(jwtKey)))
		authService := auth.NewService(codeHash, jwtKey)
		auth.NewHandler(authService).RegisterRoutes(router)
	}

	// ── Persistence ─────────────────────────────────────────
	// With DATABASE_URL the API runs against Postgres; without it, sales
	// are kept in a local snapshot file so the app works offline.
	var (
		userRepo    user.Repository
		eventRepo   event.Repository
		catalogRepo catalog.Repository
		salesRepo   sales.Repository
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := conn.Ping(); err != nil {
			log.Fatal(err)
		}
		if err := db.EnsureSchema(context.Background(), conn); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")

		userRepo = user.NewPostgresRepository(conn)
		eventRepo = event.NewPostgresRepository(conn)
		catalogRepo = catalog.NewPostgresRepository(conn)
		salesRepo = sales.NewPostgresRepository(conn)
	} else {
		path := os.Getenv("POS_DATA_FILE")
		if path == "" {
			path = "vendas.db"
		}
		storage, err := store.OpenBolt(path)
		if err != nil {
			log.Fatal(err)
		}
		defer storage.Close()

		snapshot, err := store.New(storage)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Running against local data file %s\n", path)

		userRepo = user.NewLocalRepository(snapshot)
		eventRepo = event.NewLocalRepository(snapshot)
		catalogRepo = catalog.NewLocalRepository(snapshot)
		salesRepo = sales.NewLocalRepository(snapshot)
	}

	// ── Phase 1: Sellers & Events ───────────────────────────
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	eventService := event.NewService(eventRepo)
	event.NewHandler(eventService).RegisterRoutes(router)

	// ── Phase 2: Catalog ────────────────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Phase 3: Sales ──────────────────────────────────────
	salesService := sales.NewService(salesRepo, catalogRepo)
	sales.NewHandler(salesService).RegisterRoutes(router)

	// ── Phase 4: Reports & Exports ──────────────────────────
	reportsService := reports.NewService(salesRepo)
	reports.NewHandler(reportsService).RegisterRoutes(router)

	// ── Phase 5: Bootstrap & Lookups ────────────────────────
	bootstrapService := bootstrap.NewService(userRepo, eventRepo, catalogRepo, salesRepo)
	bootstrap.NewHandler(bootstrapService).RegisterRoutes(router)

	cepClient := lookup.NewViaCEPClient(os.Getenv("CEP_LOOKUP_BASE_URL"))
	lookup.NewHandler(cepClient).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Vendas API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
