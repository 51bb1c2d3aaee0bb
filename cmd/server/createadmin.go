package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/http/middleware"
)

// runCreateAdmin handles the create-admin subcommand: prompts for the
// dashboard account credentials and inserts the admin row.
func runCreateAdmin(store db.Store) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading email: %v\n", err)
		os.Exit(1)
	}
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Fprintln(os.Stderr, "Email cannot be empty")
		os.Exit(1)
	}

	fmt.Print("Name (optional): ")
	nameLine, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading name: %v\n", err)
		os.Exit(1)
	}
	var name *string
	if trimmed := strings.TrimSpace(nameLine); trimmed != "" {
		name = &trimmed
	}

	password := readHiddenPassword("Password: ")
	confirm := readHiddenPassword("Confirm password: ")

	if password == "" {
		fmt.Fprintln(os.Stderr, "Password cannot be empty")
		os.Exit(1)
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match")
		os.Exit(1)
	}

	hashed, err := middleware.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	id, err := store.CreateAdmin(email, hashed, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created admin %d (%s)\n", id, email)
}

func readHiddenPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return string(password)
}
