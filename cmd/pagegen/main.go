// Command pagegen renders a markdown document (front-matter plus body) into a
// static HTML page with a table of contents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/contentools/pagegen/internal/logging"
	"github.com/contentools/pagegen/internal/logging/gologger"
	"github.com/contentools/pagegen/internal/page"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("pagegen: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pagegen", flag.ExitOnError)
	input := fs.String("input", "", "Markdown source file (default: stdin)")
	output := fs.String("output", "", "Output HTML file (default: stdout)")
	fragment := fs.Bool("fragment", false, "Emit only the rendered blocks, without the page shell and TOC nav")
	strictAnchors := fs.Bool("strict-anchors", false, "Fail on duplicate heading anchors instead of disambiguating")
	dryRun := fs.Bool("dry-run", false, "Render without writing the output artifact")
	watch := fs.Bool("watch", false, "Rebuild whenever the input file changes (requires --input)")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *watch && (*input == "" || *input == "-") {
		return fmt.Errorf("--watch requires --input")
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		return err
	}

	svc := page.NewService(page.Config{
		InputPath:     *input,
		OutputPath:    *output,
		StrictAnchors: *strictAnchors,
		Fragment:      *fragment,
	}, page.Dependencies{
		Logger: logging.PageLogger(provider),
	})

	ctx := context.Background()

	if _, err := svc.Build(ctx, page.BuildOptions{DryRun: *dryRun}); err != nil {
		return err
	}

	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return page.Watch(ctx, svc, *input, logging.WatchLogger(provider))
}
