package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/tutorhub/tutorhub/internal/client/api"
	"github.com/tutorhub/tutorhub/internal/client/cache"
	"github.com/tutorhub/tutorhub/internal/client/session"
)

// Cli связывает команды с API клиентом, хранилищем сессии и кешем расписания
type Cli struct {
	apiClient *api.Client
	sessions  session.Store
	cache     cache.Store
}

// New создает CLI поверх готовых зависимостей
func New(apiClient *api.Client, sessions session.Store, lessonCache cache.Store) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
		cache:     lessonCache,
	}
}

func PrintUsage() {
	fmt.Println("TutorHub Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tutorhub [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: " + api.DefaultBaseURL + ", env TUTORHUB_SERVER)")
	fmt.Println("  --db PATH            Path to local session database (default: tutorhub.db)")
	fmt.Println("  --cache PATH         Path to offline lesson cache (default: tutorhub-cache.db)")
	fmt.Println("  --session-store KIND Session store backend: bolt or file (default: bolt)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                     Login to server")
	fmt.Println("  logout                    Logout and clear local session")
	fmt.Println("  status                    Show authentication status")
	fmt.Println("  schedule month            Month calendar (--month YYYY-MM, --select YYYY-MM-DD)")
	fmt.Println("  schedule day              Day lesson list (--date YYYY-MM-DD, --page N)")
	fmt.Println("  schedule week             Five-day grid starting today")
	fmt.Println("  schedule browse           Interactive schedule browser")
	fmt.Println("  sync                      Refresh the offline lesson cache")
	fmt.Println("  users list|add|update|delete   Manage user accounts (admin)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tutorhub login")
	fmt.Println("  tutorhub schedule month --month 2026-09")
	fmt.Println("  tutorhub schedule day --date 2026-09-02 --page 2")
	fmt.Println("  tutorhub --server https://example.com users list")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
