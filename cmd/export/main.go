// Command export writes every stored RSVP response to an .xlsx file, the same
// workbook the admin panel serves.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ms-rsvp/internal/config"
	"ms-rsvp/internal/database"
	"ms-rsvp/internal/export"
	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/rsvp/db"
)

func main() {
	out := flag.String("out", export.FileName, "output file")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(os.Stderr)

	ctx := context.Background()
	bunDB, err := database.Open(ctx, cfg.Database.Path, log)
	if err != nil {
		log.Fatal("DATABASE", err.Error())
	}
	defer bunDB.Close()

	rows, err := (&db.DB{Bun: bunDB}).ListResponses(ctx)
	if err != nil {
		log.Fatal("EXPORT", err.Error())
	}

	data, err := export.BuildWorkbook(rows, locale.For(cfg.RSVP.Locale))
	if err != nil {
		log.Fatal("EXPORT", err.Error())
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal("EXPORT", err.Error())
	}
	log.Info("EXPORT", fmt.Sprintf("wrote %d responses to %s", len(rows), *out))
}
