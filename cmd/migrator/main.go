package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sapiens-sapiens/storefront/internal/adapter/storage"
	"github.com/spf13/pflag"
)

const storagePathFlag = "storage-path"

func main() {
	storagePath := getFlagValue()
	validateFlag(storagePath)
	makeMigrations(storagePath)
}

func getFlagValue() string {
	storagePath := pflag.StringP(storagePathFlag, "s", "", "")
	pflag.Parse()
	return *storagePath
}

func validateFlag(storagePath string) {
	if storagePath == "" {
		slog.Error("too few args",
			"err", fmt.Errorf("--%s flag: required", storagePathFlag))
		fallDown()
	}
}

func makeMigrations(storagePath string) {
	db, err := storage.NewCartDB(context.Background(), storagePath)
	if err != nil {
		slog.Error("failed to open cart database", "err", err)
		fallDown()
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	slog.Info("migration applied")
}

func fallDown() {
	os.Exit(2)
}
