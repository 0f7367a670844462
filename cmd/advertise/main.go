package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/eringen/advertise"
	"github.com/eringen/advertise/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "seed":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: advertise seed <sponsorings.json>")
			os.Exit(1)
		}
		if err := runSeed(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("advertise %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func configFromEnv() (advertise.SiteConfig, error) {
	stats, err := parseStats(advertise.EnvOr("SITE_STATS", ""))
	if err != nil {
		return advertise.SiteConfig{}, fmt.Errorf("SITE_STATS: %w", err)
	}
	return advertise.SiteConfig{
		Name:         advertise.EnvOr("SITE_NAME", ""),
		URL:          advertise.EnvOr("SITE_URL", ""),
		Email:        advertise.EnvOr("SITE_EMAIL", ""),
		AnalyticsURL: advertise.EnvOr("SITE_ANALYTICS_URL", ""),
		Description:  advertise.EnvOr("SITE_DESCRIPTION", ""),
		Addr:         advertise.EnvOr("ADDR", ""),
		DatabasePath: advertise.EnvOr("DATABASE_PATH", ""),
		Stats:        stats,
	}, nil
}

// parseStats reads stats widget figures written as "value=label" pairs
// separated by semicolons, e.g. "45,000+=Monthly Visitors;250+=Listings".
func parseStats(s string) ([]views.Stat, error) {
	var stats []views.Stat
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		value, label, ok := strings.Cut(entry, "=")
		value, label = strings.TrimSpace(value), strings.TrimSpace(label)
		if !ok || value == "" || label == "" {
			return nil, fmt.Errorf("invalid entry %q, want value=label", entry)
		}
		stats = append(stats, views.Stat{Value: value, Label: label})
	}
	return stats, nil
}

func runServe() error {
	cfg, err := configFromEnv()
	if err != nil {
		return err
	}
	app := advertise.New(cfg,
		advertise.WithStaticDir(advertise.EnvOr("STATIC_DIR", "public")),
	)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Echo.Shutdown(shutdownCtx)
}

func printUsage() {
	fmt.Println(`advertise - the "Advertise" landing page server

Usage:
  advertise <command> [arguments]

Commands:
  serve          Start the HTTP server
  seed <file>    Insert sponsorings from a JSON file
  version        Print the advertise version
  help           Show this help message

Environment:
  SITE_NAME, SITE_URL, SITE_EMAIL, SITE_ANALYTICS_URL, SITE_DESCRIPTION,
  ADDR, DATABASE_PATH, STATIC_DIR
  SITE_STATS     Stats widget figures, "value=label;value=label"`)
}
