// Package dataset implements the PortfolioSource port over a YAML document
// validated against an embedded JSON Schema.
package dataset

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

//go:embed portfolio.yaml
var embeddedPortfolio []byte

//go:embed portfolio.schema.json
var schemaJSON []byte

// ErrSchema is wrapped by every error caused by a document that does not
// match the dataset schema.
var ErrSchema = errors.New("portfolio dataset does not match schema")

// Compile-time interface satisfaction check.
var _ driven.PortfolioSource = (*Source)(nil)

// Source loads the portfolio dataset from the embedded document or, when a
// path is set, from a YAML file on disk.
type Source struct {
	path string
}

// NewEmbeddedSource returns a Source that reads the dataset compiled into the binary.
func NewEmbeddedSource() *Source {
	return &Source{}
}

// NewFileSource returns a Source that reads the dataset from path.
func NewFileSource(path string) *Source {
	return &Source{path: path}
}

// Origin describes where the dataset is read from, for logging.
func (s *Source) Origin() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}

// Load reads, validates and decodes the dataset.
func (s *Source) Load(ctx context.Context) (*model.Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := embeddedPortfolio
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
		}
		data = b
	}

	return Parse(data)
}

// Parse validates a YAML dataset against the schema and decodes it.
func Parse(data []byte) (*model.Portfolio, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode dataset yaml: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	return doc.toModel(), nil
}

func validate(raw any) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}

	res, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
