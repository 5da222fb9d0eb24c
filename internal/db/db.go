package db

import (
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustOpen connects to postgres with the given DSN or exits the process.
func MustOpen(dsn string, log zerolog.Logger) *gorm.DB {
	if dsn == "" {
		log.Fatal().Msg("DB_DSN is empty (check your .env)")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	return gdb
}
