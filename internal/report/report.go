// Package report runs the parse, filter, normalize and render pipeline over a
// batch of feature files.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chriserin/gherkin-report/internal/feature"
	"github.com/chriserin/gherkin-report/internal/logging"
)

// ErrDestinationRequired is returned when word output has nowhere to go.
var ErrDestinationRequired = errors.New("word output needs a destination file")

// Config is fixed for the duration of one Generate call.
type Config struct {
	Format      Format
	ExcludeTag  string // blank disables filtering
	Destination string
}

type Kind int

const (
	KindFeatures Kind = iota
	KindText
	KindFile
)

// Result holds exactly one of Features, Text or File, as selected by Kind.
type Result struct {
	Kind     Kind
	Features []*feature.Feature
	Text     string
	File     *Output
	Count    int // features rendered, for any Kind
	Skipped  []Skip
}

// Skip records a file left out of the report.
type Skip struct {
	Path string
	Err  error
}

type Option func(*generator)

func WithLogger(log *slog.Logger) Option {
	return func(g *generator) { g.log = log }
}

func WithLoader(l Loader) Option {
	return func(g *generator) { g.loader = l }
}

type generator struct {
	log    *slog.Logger
	loader Loader
}

// Validate reports configuration errors that do not depend on the input files.
func (c Config) Validate() error {
	if c.Format == FormatDocument && c.Destination == "" {
		return ErrDestinationRequired
	}
	return nil
}

// Generate loads paths in order, drops what cfg.ExcludeTag excludes and
// renders the rest in cfg.Format. Unreadable or unparsable files are logged
// as warnings and listed in Result.Skipped.
func Generate(paths []string, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &generator{log: logging.Discard(), loader: FileLoader{}}
	for _, opt := range opts {
		opt(g)
	}

	res := &Result{}
	features := make([]*feature.Feature, 0, len(paths))
	for _, path := range paths {
		f, err := g.loader.Load(path)
		if err != nil {
			g.log.Warn("could not read or parse feature file", "path", path, "error", err)
			res.Skipped = append(res.Skipped, Skip{Path: path, Err: err})
			continue
		}
		features = append(features, f)
	}

	features = feature.Filter(features, feature.NormalizeTag(cfg.ExcludeTag))
	feature.Normalize(features)
	res.Count = len(features)
	g.log.Debug("features loaded", "count", len(features), "skipped", len(res.Skipped))

	switch cfg.Format {
	case FormatMarkup:
		if err := renderText(res, cfg.Destination, RenderMarkdown(features)); err != nil {
			return nil, err
		}
		return res, nil
	case FormatHTML:
		html, err := RenderHTML(features)
		if err != nil {
			return nil, err
		}
		if err := renderText(res, cfg.Destination, html); err != nil {
			return nil, err
		}
		return res, nil
	case FormatDocument:
		doc, err := BuildDocument(features)
		if err != nil {
			return nil, err
		}
		out, err := writeFileAsync(cfg.Destination, writeDocument(doc))
		if err != nil {
			return nil, err
		}
		res.Kind = KindFile
		res.File = out
		return res, nil
	default:
		res.Kind = KindFeatures
		res.Features = features
		return res, nil
	}
}

func renderText(res *Result, destination, text string) error {
	if destination == "" {
		res.Kind = KindText
		res.Text = text
		return nil
	}
	if err := os.WriteFile(destination, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	res.Kind = KindFile
	res.File = completedOutput(destination)
	return nil
}
