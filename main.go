package main

import (
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/yumyai/maestro/logger"
	"github.com/yumyai/maestro/pkg/cmd"
	mydb "github.com/yumyai/maestro/pkg/db"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"
)

var (
	maestro_home string
)

func main() {

	// Establish logger
	VERSION := "0.1.0"
	LOG_LEVEL := zapcore.InfoLevel

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	maestro_home = os.Getenv("MAESTRO_HOME")

	if maestro_home == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			home = "."
		}
		maestro_home = path.Join(home, ".maestro")
		logger.Warn("No local environment (MAESTRO_HOME), using default value (~/.maestro)")
	}

	registry_sqlite := path.Join(maestro_home, "db/registry.db")

	// The registry connects lazily, commands that never write leave the
	// home directory untouched.
	registry, regErr := mydb.OpenRegistry(registry_sqlite)
	if regErr != nil {
		logger.Warn("Could not open the workflow registry", zap.Error(regErr))
	}

	app := &cmd.App{
		Registry: registry,
		Home:     maestro_home,
	}

	logger.Debug("Start:", zap.String("Version", VERSION))
	logger.Debug("Workflow registry on", zap.String("DB_LOC", registry_sqlite))

	if err := cmd.Execute(app, VERSION); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
