package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/tutorhub/tutorhub/internal/validation"
	pkgapi "github.com/tutorhub/tutorhub/pkg/api"
)

// RunUsers диспетчеризует команды управления пользователями (admin)
func (c *Cli) RunUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tutorhub users list|add|update|delete")
	}

	switch args[0] {
	case "list":
		return c.runUsersList(ctx, args[1:])
	case "add":
		return c.runUsersAdd(ctx, args[1:])
	case "update":
		return c.runUsersUpdate(ctx, args[1:])
	case "delete":
		return c.runUsersDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown users command %q (expected list, add, update or delete)", args[0])
	}
}

func (c *Cli) runUsersList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users list", flag.ContinueOnError)
	page := fs.Int("page", 1, "Page number")
	limit := fs.Int("limit", 20, "Page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.apiClient.Users(ctx, *page, *limit)
	if err != nil {
		return err
	}

	fmt.Printf("%-36s  %-28s  %-20s  %s\n", "ID", "EMAIL", "NAME", "ROLE")
	for _, u := range resp.Results {
		fmt.Printf("%-36s  %-28s  %-20s  %s\n", u.ID, u.Email, u.Name, u.Role)
	}
	fmt.Println()
	fmt.Printf("Page %d of %d (%d user(s) total)\n", resp.Page, resp.TotalPages, resp.TotalResults)

	return nil
}

func (c *Cli) runUsersAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users add", flag.ContinueOnError)
	email := fs.String("email", "", "Email of the new user")
	name := fs.String("name", "", "Display name")
	role := fs.String("role", "student", "Role: admin, tutor or student")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateEmail(*email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidateRole(*role); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	password, err := readPassword("Password for the new user: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	user, err := c.apiClient.CreateUser(ctx, pkgapi.CreateUserRequest{
		Email:    *email,
		Name:     *name,
		Role:     *role,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Created user %s (%s, %s)\n", user.Name, user.Email, user.Role)
	return nil
}

func (c *Cli) runUsersUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users update", flag.ContinueOnError)
	id := fs.String("id", "", "ID of the user to update")
	email := fs.String("email", "", "New email (unchanged if empty)")
	name := fs.String("name", "", "New display name (unchanged if empty)")
	role := fs.String("role", "", "New role (unchanged if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	// Пустые флаги не попадают в запрос — сервер их не трогает
	req := pkgapi.UpdateUserRequest{}
	if *email != "" {
		if err := validation.ValidateEmail(*email); err != nil {
			return fmt.Errorf("invalid email: %w", err)
		}
		req.Email = email
	}
	if *name != "" {
		req.Name = name
	}
	if *role != "" {
		if err := validation.ValidateRole(*role); err != nil {
			return err
		}
		req.Role = role
	}

	if req.Email == nil && req.Name == nil && req.Role == nil {
		return fmt.Errorf("nothing to update: pass --email, --name or --role")
	}

	user, err := c.apiClient.UpdateUser(ctx, *id, req)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated user %s (%s, %s)\n", user.Name, user.Email, user.Role)
	return nil
}

func (c *Cli) runUsersDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users delete", flag.ContinueOnError)
	id := fs.String("id", "", "ID of the user to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	confirm, err := readInput(fmt.Sprintf("Delete user %s? (y/N): ", *id))
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := c.apiClient.DeleteUser(ctx, *id); err != nil {
		return err
	}

	fmt.Println("✓ User deleted.")
	return nil
}
