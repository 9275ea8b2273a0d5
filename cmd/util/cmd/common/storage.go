package common

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog/log"
)

// InitStorage opens the badger database in the given directory.
func InitStorage(dataDir string) *badger.DB {
	opts := badger.
		DefaultOptions(dataDir).
		WithKeepL0InMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("data_dir", dataDir).Msg("could not open database")
	}
	return db
}

// CloseStorage closes the database, logging any error.
func CloseStorage(db *badger.DB) {
	if err := db.Close(); err != nil {
		log.Error().Err(fmt.Errorf("could not close database: %w", err)).Msg("shutdown")
	}
}
