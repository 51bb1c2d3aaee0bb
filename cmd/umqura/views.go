package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MahmoudAkram21/um-qura/internal/hijri"
	"github.com/MahmoudAkram21/um-qura/pkg/client"
)

func runCalendar(ctx context.Context, c *client.Client) error {
	seasons, err := c.GetCalendar(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, season := range seasons {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", season.Name, season.Duration)
		for _, star := range season.Stars {
			fmt.Fprintf(w, "  %s\t%s → %s\n", star.Name, star.StartDate, star.EndDate)
		}
	}
	return w.Flush()
}

func runOccasionsView(ctx context.Context, c *client.Client) error {
	sections, err := c.GetOccasionsSections(ctx)
	if err != nil {
		return err
	}

	today := hijri.FromTime(nowUTC())
	fmt.Printf("اليوم: %s %d\n", hijri.Display(today.Day, today.Month), today.Year)

	printSection("اليوم", sections.Today)
	printSection(hijri.MonthNameArabic(today.Month), sections.CurrentMonth)
	printSection(hijri.MonthNameArabic(hijri.NextMonth(today.Month)), sections.NextMonth)
	printSection("السنة", sections.Year)
	return nil
}

func printSection(title string, occasions []client.Occasion) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", 24))
	if len(occasions) == 0 {
		fmt.Println("  (لا توجد مناسبات)")
		return
	}
	for _, o := range occasions {
		label := o.HijriDisplay
		if label == "" {
			label = hijri.Display(o.HijriDay, o.HijriMonth)
		}
		fmt.Printf("  %s\t%s\n", label, o.Title)
	}
}

func nowUTC() time.Time { return time.Now().UTC() }
