// File: cmd/seed/main.go
// seed 清空 users 與 cafes，建立官方帳號與示範咖啡廳
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"cafe-map/internal/config"
	"cafe-map/internal/database"
	"cafe-map/internal/logging"
	"cafe-map/internal/model"
	"cafe-map/internal/service"
	"cafe-map/internal/store"
)

var (
	loadDatabaseURL = config.LoadDatabaseURL
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	deleteAllUsers  = store.DeleteAllUsers
	createUser      = store.CreateUser
	createCafe      = store.CreateCafe
	hashPassword    = service.HashPassword
	exitFunc        = os.Exit
)

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reset := fs.Bool("reset", false, "先回滾全部 migration 再重建 schema")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbURL, err := loadDatabaseURL()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	if *reset {
		if err := rollbackAllFn(dbURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
		logging.Info().Msg("已回滾全部 migration")
	}
	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	return seed(ctx, db)
}

func seed(ctx context.Context, db database.DB) error {
	logging.Info().Msg("Start seeding ...")

	// cafes 隨 users 以 ON DELETE CASCADE 刪除
	if err := deleteAllUsers(ctx, db); err != nil {
		return err
	}
	logging.Info().Msg("Cleared previous data.")

	hash, err := hashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	name := seedName
	user, err := createUser(ctx, db, &model.User{Email: seedEmail, Name: &name, PasswordHash: hash})
	if err != nil {
		return err
	}
	logging.Info().Int("user_id", user.ID).Str("name", name).Msg("created seed user")

	for i := range seedCafes {
		c := seedCafes[i]
		c.AuthorID = user.ID
		if _, err := createCafe(ctx, db, &c); err != nil {
			return fmt.Errorf("seed cafe %q: %w", c.Title, err)
		}
	}

	logging.Info().Int("cafes", len(seedCafes)).Msg("Seeding finished.")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		logging.Error().Err(err).Msg("seed failed")
		exitFunc(1)
	}
}
