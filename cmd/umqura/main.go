// Command umqura is the terminal client for the um-qura almanac backend. The
// public views (calendar, occasions) work without credentials; resource
// listings and deletions require an admin login.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MahmoudAkram21/um-qura/pkg/client"
)

const defaultAPIURL = "http://localhost:8080"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: umqura [--api URL] <command> [arguments]

Commands:
  login <email>        authenticate and store the session
  logout               drop the stored session
  whoami               show the logged-in admin
  calendar             seasons with their stars (public)
  occasions            occasions for today, this month, next month (public)
  seasons list
  seasons delete <id>
  stars list [-page N] [-limit N] [-season ID]
  stars delete <id>
  occasions list [-page N] [-limit N]
  occasions delete <id>
  prayers list [-page N] [-limit N]
  prayers delete <id>

The backend origin comes from --api or the UMQURA_API_URL environment
variable (default %s).
`, defaultAPIURL)
}

func main() {
	apiURL := flag.String("api", "", "backend origin, overrides UMQURA_API_URL")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	origin := *apiURL
	if origin == "" {
		origin = os.Getenv("UMQURA_API_URL")
	}
	if origin == "" {
		origin = defaultAPIURL
	}

	c, err := client.New(origin)
	if err != nil {
		fatal(err)
	}
	// an expired token behaves like an explicit logout
	c.OnUnauthorized(func() {
		c.Logout()
		fmt.Fprintln(os.Stderr, "session expired, please run `umqura login` again")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dispatch(ctx, c, args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func dispatch(ctx context.Context, c *client.Client, command string, rest []string) error {
	switch command {
	case "login":
		return runLogin(ctx, c, rest)
	case "logout":
		c.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return runWhoami(ctx, c)
	case "calendar":
		return runCalendar(ctx, c)
	case "occasions":
		if len(rest) > 0 {
			return runResource(ctx, c, "occasions", rest)
		}
		return runOccasionsView(ctx, c)
	case "seasons", "stars", "prayers":
		return runResource(ctx, c, command, rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func fatal(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, "error:", apiErr.Message)
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}
