// Package parser extracts documentation from /** ... */ comment blocks and
// the code that follows them.
package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReadError reports a source file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface for ReadError.
func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Options configures a Parser.
type Options struct {
	// Logger receives debug output about skipped regions and tags.
	// Defaults to the logrus standard logger.
	Logger      logrus.FieldLogger
	// Concurrency bounds the number of files read at once by ParseFiles.
	// Defaults to GOMAXPROCS.
	Concurrency int
}

// Parser turns source files into SourceFile trees. It holds configuration
// only and is safe for concurrent use.
type Parser struct {
	log         logrus.FieldLogger
	concurrency int
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	p := &Parser{log: opts.Logger, concurrency: opts.Concurrency}
	if p.log == nil {
		p.log = logrus.StandardLogger()
	}
	if p.concurrency <= 0 {
		p.concurrency = runtime.GOMAXPROCS(0)
	}
	return p
}

var defaultParser = New(Options{})

// ParseFile parses a single file with the default parser.
func ParseFile(path string) (*SourceFile, error) {
	return defaultParser.ParseFile(path)
}

// ParseFiles parses a batch of files with the default parser.
func ParseFiles(ctx context.Context, paths []string) ([]SourceFile, error) {
	return defaultParser.ParseFiles(ctx, paths)
}

// ParseSource parses already loaded file text with the default parser.
func ParseSource(path, text string) SourceFile {
	return defaultParser.ParseSource(path, text)
}

// ParseFile reads path and parses its documentation. A *ReadError is
// returned when the file cannot be read.
func (p *Parser) ParseFile(path string) (*SourceFile, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	file := p.ParseSource(path, string(data))
	p.log.WithFields(logrus.Fields{
		"path":   path,
		"blocks": len(file.Documentation),
	}).Debug("Parsed source file")
	return &file, nil
}

// ParseFiles parses every path concurrently. Results are returned in input
// order. If any file fails, the first failure is returned and no results
// are reported; reads already in flight run to completion and are
// discarded.
func (p *Parser) ParseFiles(ctx context.Context, paths []string) ([]SourceFile, error) {
	results := make([]SourceFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := p.ParseFile(path)
			if err != nil {
				return err
			}
			results[i] = *file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseSource parses file text that is already in memory.
func (p *Parser) ParseSource(path, text string) SourceFile {
	log := p.log.WithField("path", path)
	blocks := make([]DocBlock, 0)

	for i, fragment := range splitRegions(text) {
		block, ok := p.parseRegion(log, fragment)
		if !ok {
			log.WithField("region", i).Debug("Skipping region without both comment and code")
			continue
		}
		blocks = append(blocks, block)
	}

	return SourceFile{FilePath: path, Documentation: blocks}
}

func (p *Parser) parseRegion(log logrus.FieldLogger, fragment string) (DocBlock, bool) {
	comment, code, ok := extractRegion(fragment)
	if !ok {
		return DocBlock{}, false
	}

	description, bodies := splitTags(comment)
	tags := make([]Tag, 0, len(bodies))
	for _, body := range bodies {
		tag, ok := parseTag(body)
		if !ok {
			log.WithField("body", body).Debug("Dropping unrecognised tag")
			continue
		}
		tags = append(tags, tag)
	}

	return DocBlock{
		Description: sanitizeComment(description),
		Code:        code,
		Tags:        tags,
	}, true
}
