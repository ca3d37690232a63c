package main

import (
	"log"
	"os"

	"github.com/KashifaTajreen/Fitness/internal/auth"
	"github.com/KashifaTajreen/Fitness/internal/db"
	"github.com/KashifaTajreen/Fitness/internal/diary"
	"github.com/KashifaTajreen/Fitness/internal/food"
	"github.com/KashifaTajreen/Fitness/internal/router"
	"github.com/KashifaTajreen/Fitness/internal/store"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		if err := food.LoadOverrides(path); err != nil {
			log.Fatalf("❌ Failed to load catalog overrides from %s: %v", path, err)
		}
		log.Printf("Catalog overrides loaded from %s", path)
	}

	// ───────────────────────── REPOS ─────────────────────────
	var userRepo auth.UserRepository
	var entryRepo diary.EntryRepository

	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		userRepo = auth.NewPostgresUserRepository(pgDB)
		entryRepo = diary.NewPostgresEntryRepository(pgDB)
	} else {
		path := os.Getenv("STORE_FILE")
		if path == "" {
			path = store.DefaultPath
		}
		fileStore := store.Open(path)

		userRepo = store.NewFileUserRepository(fileStore)
		entryRepo = store.NewFileEntryRepository(fileStore)
		log.Printf("Using flat-file store at %s", path)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	diaryService := diary.NewService(entryRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	diaryHandler := diary.NewHandler(diaryService)

	r := router.NewRouter(authHandler, diaryHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
