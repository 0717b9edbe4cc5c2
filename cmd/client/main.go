package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tutorhub/tutorhub/internal/client/api"
	"github.com/tutorhub/tutorhub/internal/client/cache/sqlite"
	"github.com/tutorhub/tutorhub/internal/client/cli"
	"github.com/tutorhub/tutorhub/internal/client/session"
	"github.com/tutorhub/tutorhub/internal/client/session/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", "tutorhub.db", "Path to local session database")
	cachePath := flag.String("cache", "tutorhub-cache.db", "Path to offline lesson cache")
	storeKind := flag.String("session-store", "bolt", "Session store backend: bolt or file")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Открываем хранилище сессии
	sessions, closeSessions, err := openSessionStore(ctx, *storeKind, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer closeSessions()

	// Открываем офлайн-кеш расписания
	lessonCache, err := sqlite.New(ctx, *cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open lesson cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := lessonCache.Close(); err != nil {
			slog.Error("failed to close lesson cache", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL, sessions)

	c := cli.New(apiClient, sessions, lessonCache)

	// Выполняем команду
	switch command {
	case "login":
		if err := c.RunLogin(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "logout":
		if err := c.RunLogout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "status":
		if err := c.RunStatus(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "schedule":
		if err := c.RunSchedule(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sync":
		if err := c.RunSync(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "users":
		if err := c.RunUsers(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

// defaultServerURL возвращает адрес сервера из окружения
// или захардкоженный адрес по умолчанию
func defaultServerURL() string {
	if url := os.Getenv("TUTORHUB_SERVER"); url != "" {
		return url
	}
	return api.DefaultBaseURL
}

// openSessionStore открывает выбранный бэкенд хранилища сессии
func openSessionStore(ctx context.Context, kind, dbPath string) (session.Store, func(), error) {
	switch kind {
	case "bolt":
		store, err := boltdb.New(ctx, dbPath)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := store.Close(); err != nil {
				slog.Error("failed to close session store", "error", err)
			}
		}
		return store, closeFn, nil
	case "file":
		return session.NewFileStore(dbPath + ".json"), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q (expected bolt or file)", kind)
	}
}

func printVersion() {
	fmt.Printf("TutorHub Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
