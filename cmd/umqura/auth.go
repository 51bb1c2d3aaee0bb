package main

import (
	"context"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/MahmoudAkram21/um-qura/pkg/client"
)

func runLogin(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: umqura login <email>")
	}
	email := args[0]

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	result, err := c.Login(ctx, email, string(raw))
	if err != nil {
		return err
	}

	name := result.Admin.Email
	if result.Admin.Name != nil {
		name = *result.Admin.Name
	}
	fmt.Printf("logged in as %s\n", name)
	return nil
}

func runWhoami(ctx context.Context, c *client.Client) error {
	if !c.Session().Authenticated() {
		fmt.Println("not logged in")
		return nil
	}

	admin, err := c.CurrentProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("id:    %d\n", admin.ID)
	fmt.Printf("email: %s\n", admin.Email)
	if admin.Name != nil {
		fmt.Printf("name:  %s\n", *admin.Name)
	}
	return nil
}
