package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"sellerdesk-backend/internal/domains/seller"
	"sellerdesk-backend/internal/tui/sellerform"
	"sellerdesk-backend/pkg/container"
	"sellerdesk-backend/pkg/logger"
)

func main() {
	id := flag.Int("id", 0, "open the form on this seller instead of the list")
	newSeller := flag.Bool("new", false, "open an empty form")
	flag.Parse()

	_ = godotenv.Load()

	// the terminal is owned by the form, so logs go to a file
	logPath := getEnv("FORM_LOG_FILE", "sellerform.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", logPath, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.InitWithWriter(getEnv("APP_ENV", "development"), getEnv("LOG_LEVEL", "info"), logFile)

	if err := run(*id, *newSeller); err != nil {
		log.Error().Err(err).Msg("seller form exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(id int, newSeller bool) error {
	appContainer, err := container.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer appContainer.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg := sellerform.Config{
		Sellers:     appContainer.SellerService,
		Departments: appContainer.DepartmentService,
		Validator:   appContainer.Validator,
		Location:    appContainer.Config.Location(),
		Listener:    appContainer.Listeners,
	}

	switch {
	case id > 0:
		s, err := appContainer.SellerService.GetSeller(ctx, id)
		if err != nil {
			return err
		}
		cfg.Open = s
	case newSeller:
		cfg.Open = &seller.Seller{}
	}

	log.Info().Str("storage", appContainer.Config.Storage.Driver).Msg("starting seller form")
	return sellerform.Run(ctx, cfg)
}

// getEnv reads an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
