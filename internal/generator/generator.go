// Package generator runs the fetch, transform and write steps that produce a
// collection file.
package generator

import (
	"context"
	"fmt"
	"time"

	"steamcollection/internal/catalog"
	"steamcollection/internal/config"
	"steamcollection/internal/discovery"
	"steamcollection/internal/logger"
	"steamcollection/internal/output"
	"steamcollection/internal/postman"
	"steamcollection/pkg/metadata"
)

// Fetcher retrieves the discovery document.
type Fetcher interface {
	Fetch(ctx context.Context, apiKey string) (*discovery.Response, error)
	Endpoint() string
}

// Writer persists the finished collection.
type Writer interface {
	Write(v any) (int, error)
	Path() string
}

// Stage names a step of a run.
type Stage string

// Run stages.
const (
	StageFetch     Stage = "fetch"
	StageTransform Stage = "transformation"
	StageWrite     Stage = "write"
)

// StageError tags an error with the step that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result describes a completed run.
type Result struct {
	Collection    *postman.Collection
	OutputPath    string
	Folders       int
	Items         int
	Bytes         int
	SourceHash    string
	FetchDuration time.Duration
	Duration      time.Duration
}

// Generator wires the collaborators of a single run.
type Generator struct {
	fetcher Fetcher
	writer  Writer
	opts    catalog.Options
	log     *logger.Logger
}

// New creates a generator from explicit collaborators.
func New(fetcher Fetcher, writer Writer, opts catalog.Options, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Generator{
		fetcher: fetcher,
		writer:  writer,
		opts:    opts,
		log:     log,
	}
}

// NewFromConfig builds the production generator.
func NewFromConfig(cfg *config.Config, log *logger.Logger) *Generator {
	fetcher := discovery.NewClient(cfg.Steam.DiscoveryURL(), cfg.Steam.GetTimeout())
	writer := output.NewSink(cfg.Output.Path, cfg.Output.Indent)

	return New(fetcher, writer, OptionsFromConfig(cfg), log)
}

// OptionsFromConfig maps configuration onto transformer options.
func OptionsFromConfig(cfg *config.Config) catalog.Options {
	opts := catalog.DefaultOptions()
	opts.NamePrefix = cfg.Collection.NamePrefix
	opts.Schema = cfg.Collection.Schema
	opts.Protocol = cfg.Steam.Scheme()
	opts.Host = cfg.Steam.Host()
	opts.KeyHeader = cfg.Collection.KeyHeader
	opts.KeyPlaceholder = cfg.Collection.KeyPlaceholder

	return opts
}

// Run fetches the discovery document, transforms it and writes the result.
// Nothing is written when the fetch or the transformation fails.
func (g *Generator) Run(ctx context.Context, apiKey string) (*Result, error) {
	startTime := time.Now()

	g.log.Info("Fetching discovery document", "endpoint", g.fetcher.Endpoint())

	resp, err := g.fetcher.Fetch(ctx, apiKey)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}

	g.log.Debug("Fetched discovery document",
		"bytes", len(resp.Raw),
		"duration", resp.Duration.String(),
		"interfaces", resp.Document.CountInterfaces(),
	)

	stamp := metadata.NewStamp(
		g.fetcher.Endpoint(),
		resp.Raw,
		resp.Document.CountInterfaces(),
		resp.Document.CountMethods(),
		g.opts.Now(),
	)

	opts := g.opts
	opts.Description = stamp.Describe()

	collection, err := catalog.NewTransformer(opts).Transform(resp.Document)
	if err != nil {
		return nil, &StageError{Stage: StageTransform, Err: err}
	}

	g.log.Debug("Built collection", "folders", len(collection.Item), "items", collection.CountItems())

	n, err := g.writer.Write(collection)
	if err != nil {
		return nil, &StageError{Stage: StageWrite, Err: err}
	}

	g.log.Info("Wrote collection", "path", g.writer.Path(), "bytes", n)

	return &Result{
		Collection:    collection,
		OutputPath:    g.writer.Path(),
		Folders:       len(collection.Item),
		Items:         collection.CountItems(),
		Bytes:         n,
		SourceHash:    stamp.Hash,
		FetchDuration: resp.Duration,
		Duration:      time.Since(startTime),
	}, nil
}
