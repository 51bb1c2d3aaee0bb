package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MahmoudAkram21/um-qura/pkg/client"
)

// runResource handles the `<family> list` and `<family> delete <id>`
// subcommands for the four admin resource families.
func runResource(ctx context.Context, c *client.Client, family string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: umqura %s <list|delete>", family)
	}

	switch args[0] {
	case "list":
		return runList(ctx, c, family, args[1:])
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: umqura %s delete <id>", family)
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		return runDelete(ctx, c, family, id)
	default:
		return fmt.Errorf("unknown %s subcommand %q", family, args[0])
	}
}

func runDelete(ctx context.Context, c *client.Client, family string, id int) error {
	var err error
	switch family {
	case "seasons":
		err = c.DeleteSeason(ctx, id)
	case "stars":
		err = c.DeleteStar(ctx, id)
	case "occasions":
		err = c.DeleteOccasion(ctx, id)
	case "prayers":
		err = c.DeletePrayer(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("deleted %s %d\n", strings.TrimSuffix(family, "s"), id)
	return nil
}

func runList(ctx context.Context, c *client.Client, family string, args []string) error {
	fs := flag.NewFlagSet(family+" list", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	var seasonID *int
	if family == "stars" {
		seasonID = fs.Int("season", 0, "filter by season id")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch family {
	case "seasons":
		seasons, err := c.ListSeasons(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tDURATION\tCOLOR")
		for _, s := range seasons {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Duration, s.ColorHex)
		}

	case "stars":
		result, err := c.ListStars(ctx, client.ListStarsParams{Page: *page, Limit: *limit, SeasonID: *seasonID})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tSEASON\tSTART\tEND")
		for _, s := range result.Stars {
			season := strconv.Itoa(s.SeasonID)
			if s.Season != nil {
				season = s.Season.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, season, s.StartDate, s.EndDate)
		}
		printPageFooter(w, result.Page, result.TotalPages, result.Total)

	case "occasions":
		result, err := c.ListOccasions(ctx, client.ListParams{Page: *page, Limit: *limit})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tDATE\tTITLE\tPRAYER")
		for _, o := range result.Occasions {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", o.ID, o.HijriDisplay, o.Title, o.PrayerTitle)
		}
		printPageFooter(w, result.Page, result.TotalPages, result.Total)

	case "prayers":
		result, err := c.ListPrayers(ctx, client.ListParams{Page: *page, Limit: *limit})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tTEXT")
		for _, p := range result.Prayers {
			fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Text)
		}
		printPageFooter(w, result.Page, result.TotalPages, result.Total)
	}
	return nil
}

func printPageFooter(w *tabwriter.Writer, page, totalPages, total int) {
	fmt.Fprintf(w, "\npage %d of %d (%d total)\n", page, totalPages, total)
}
