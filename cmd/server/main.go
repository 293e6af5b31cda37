// Command server runs the symspell HTTP API against a dictionary held in
// Postgres: it loads every (term, count) row into an in-process engine at
// startup, then serves corrections until signaled to stop.
package main

import (
	"log"

	"github.com/lexicore/symspell/internal/audit"
	"github.com/lexicore/symspell/internal/config"
	"github.com/lexicore/symspell/internal/dictstore"
	"github.com/lexicore/symspell/internal/httpapi"
	"github.com/lexicore/symspell/internal/symspell"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("loading .env: %v", err)
	}

	cfg := symspell.DefaultEngineConfig()
	cfg.MaxDictionaryEditDistance = config.GetEnvInt("SYMSPELL_MAX_EDIT_DISTANCE", cfg.MaxDictionaryEditDistance)
	cfg.PrefixLength = config.GetEnvInt("SYMSPELL_PREFIX_LENGTH", cfg.PrefixLength)
	cfg.CompactLevel = config.GetEnvInt("SYMSPELL_COMPACT_LEVEL", cfg.CompactLevel)
	cfg.CountThreshold = config.GetEnvInt64("SYMSPELL_COUNT_THRESHOLD", cfg.CountThreshold)

	engine, err := symspell.New(cfg)
	if err != nil {
		log.Fatalf("constructing engine: %v", err)
	}

	store, err := dictstore.Open()
	if err != nil {
		log.Fatalf("opening dictionary store: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("ensuring dictionary schema: %v", err)
	}

	loaded, err := store.LoadInto(engine)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}
	log.Printf("loaded %d terms from term_frequency", loaded)

	addr := config.GetEnv("SYMSPELL_ADDR", ":8080")
	apiKey := config.GetEnv("SYMSPELL_API_KEY", "")
	ignoreNonWords := config.GetEnvBool("SYMSPELL_IGNORE_NON_WORDS", false)

	server := httpapi.NewServer(engine, cfg.MaxDictionaryEditDistance, ignoreNonWords, addr, apiKey)

	tracker := audit.NewTracker(store.DB())
	server.SetTracker(tracker)

	if err := server.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
