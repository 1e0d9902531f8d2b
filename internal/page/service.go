// Package page orchestrates the single-pass build: load the markdown source,
// parse it, derive the table of contents, render HTML, and write the
// artifact. The whole operation is synchronous with no shared mutable state.
package page

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/contentools/pagegen/internal/document"
	"github.com/contentools/pagegen/internal/logging"
	"github.com/contentools/pagegen/internal/render"
	"github.com/contentools/pagegen/internal/toc"
)

const (
	codeInputNotFound   = "PAGE_INPUT_NOT_FOUND"
	codeFrontMatter     = "PAGE_FRONT_MATTER_INVALID"
	codeDuplicateAnchor = "PAGE_DUPLICATE_ANCHOR"
)

// Service describes the page build contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// Config captures runtime behaviour for the build.
type Config struct {
	// InputPath is the markdown source file. Empty or "-" reads stdin.
	InputPath string
	// OutputPath receives the rendered artifact. Empty or "-" writes stdout.
	OutputPath string
	// StrictAnchors disables anchor disambiguation so heading collisions
	// fail the build instead of getting a numeric suffix.
	StrictAnchors bool
	// Fragment emits the rendered blocks without the document shell and TOC
	// nav.
	Fragment bool
}

// Dependencies lists the collaborators required by the service. Zero values
// get sensible defaults (stdin/stdout streams, no-op logger).
type Dependencies struct {
	Logger logging.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// BuildOptions narrows the scope of a single build run.
type BuildOptions struct {
	// DryRun renders without writing the output artifact.
	DryRun bool
}

// BuildResult reports metadata about a completed build.
type BuildResult struct {
	BuildID     uuid.UUID
	GeneratedAt time.Time
	Duration    time.Duration
	Checksum    string
	Output      []byte
	Warnings    []render.Warning
	TOCEntries  int
	DryRun      bool
}

// NewService wires a page build service with the provided configuration and
// dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}

	tocOpts := []toc.Option{}
	if cfg.StrictAnchors {
		tocOpts = append(tocOpts, toc.WithoutDisambiguation())
	}

	return &service{
		cfg:      cfg,
		deps:     deps,
		parser:   document.NewParser(),
		toc:      toc.NewBuilder(tocOpts...),
		renderer: render.New(render.Config{Fragment: cfg.Fragment}),
		now:      time.Now,
	}
}

type service struct {
	cfg      Config
	deps     Dependencies
	parser   *document.Parser
	toc      *toc.Builder
	renderer *render.Renderer
	now      func() time.Time
}

// Build runs the full pipeline once. Render warnings are logged and reported
// on the result; they never fail the build.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	logger := s.deps.Logger

	source, err := s.readInput()
	if err != nil {
		return nil, err
	}

	doc, err := s.parser.Parse(source)
	if err != nil {
		var fmErr *document.FrontMatterError
		if errors.As(err, &fmErr) {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "front matter rejected").
				WithTextCode(codeFrontMatter)
		}
		return nil, err
	}

	entries, err := s.toc.Build(doc)
	if err != nil {
		var dupErr *toc.DuplicateAnchorError
		if errors.As(err, &dupErr) {
			return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "toc anchors collide").
				WithTextCode(codeDuplicateAnchor)
		}
		return nil, err
	}

	output, warnings, err := s.renderer.Render(doc, entries)
	if err != nil {
		return nil, err
	}
	for _, warning := range warnings {
		logger.Warn("render warning", "code", string(warning.Code), "message", warning.Message)
	}

	if !opts.DryRun {
		if err := s.writeOutput(output); err != nil {
			return nil, fmt.Errorf("page: write output artifact: %w", err)
		}
	}

	sum := sha256.Sum256(output)
	result := &BuildResult{
		BuildID:     uuid.New(),
		GeneratedAt: start.UTC(),
		Duration:    s.now().Sub(start),
		Checksum:    hex.EncodeToString(sum[:]),
		Output:      output,
		Warnings:    warnings,
		TOCEntries:  len(entries),
		DryRun:      opts.DryRun,
	}

	logger.Info("page build complete",
		"build_id", result.BuildID.String(),
		"checksum", result.Checksum,
		"toc_entries", result.TOCEntries,
		"warnings", len(result.Warnings),
		"bytes", len(result.Output),
		"duration", result.Duration.String(),
	)

	return result, nil
}

func (s *service) readInput() ([]byte, error) {
	if s.cfg.InputPath == "" || s.cfg.InputPath == "-" {
		if s.deps.Stdin == nil {
			return nil, ErrInputRequired
		}
		return io.ReadAll(s.deps.Stdin)
	}

	data, err := os.ReadFile(s.cfg.InputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			notFound := &InputNotFoundError{Path: s.cfg.InputPath, Err: err}
			return nil, goerrors.Wrap(notFound, goerrors.CategoryNotFound, "read input").
				WithTextCode(codeInputNotFound)
		}
		return nil, err
	}
	return data, nil
}

func (s *service) writeOutput(output []byte) error {
	if s.cfg.OutputPath == "" || s.cfg.OutputPath == "-" {
		_, err := s.deps.Stdout.Write(output)
		return err
	}
	return os.WriteFile(s.cfg.OutputPath, output, 0o644)
}
