// Command timeline prints the experience section of a content document as an
// aligned table.
//
//	go run ./cmd/timeline -content content/content.json -now 2025-10-15
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/dates"
	"sagarneeli.dev/internal/services"
	"sagarneeli.dev/internal/textutil"
)

func main() {
	root := flag.String("root", ".", "Directory relative content paths are resolved against")
	path := flag.String("content", "content/content.json", "Content document (.json or .yaml)")
	now := flag.String("now", "", "Evaluate open-ended entries at this date instead of today")
	locale := flag.String("locale", "en", "Locale for month names")
	width := flag.Int("width", 32, "Maximum display width of the company and role columns")
	flag.Parse()

	if err := run(os.Stdout, *root, *path, *now, *locale, *width); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "timeline: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, root, path, now, locale string, width int) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("locale %q: %w", locale, err)
	}

	clock := time.Now
	if now != "" {
		d, err := dates.Parse(now)
		if err != nil {
			return err
		}
		clock = d.Time
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	provider := content.NewProvider(root, path, content.WithLogger(logger))
	svc := services.NewExperienceService(provider, dates.NewCalculator(clock), tag, logger)

	views, err := svc.List()
	if err != nil {
		return err
	}

	rows := [][]string{{"Company", "Role", "Period", "Duration"}}
	var total int
	for _, v := range views {
		rows = append(rows, []string{
			textutil.Truncate(v.Company, width),
			textutil.Truncate(v.Role, width),
			v.DateRange,
			v.Duration,
		})
		if v.Elapsed != nil {
			total += v.Elapsed.TotalMonths()
		}
	}

	for _, line := range textutil.Table(rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	sum := dates.Duration{Years: total / 12, Months: total % 12}
	_, err = fmt.Fprintf(w, "\n%d entries, %s in total\n", len(views), dates.FormatDuration(sum))
	return err
}
