package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nox-docs/nox/internal/discovery"
	"github.com/nox-docs/nox/internal/logging"
	"github.com/nox-docs/nox/internal/parser"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Run collects the configured source files, parses them and writes the
// result. Progress is logged to stderr.
func Run(ctx context.Context, config *Config, stdout, stderr io.Writer) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	log, err := logging.New(config.LogLevel, stderr)
	if err != nil {
		return err
	}

	paths, err := discovery.Collect(config.Paths, discovery.Options{
		Extensions:  config.Extensions,
		ExcludeDirs: config.ExcludeDirs,
	})
	if err != nil {
		return fmt.Errorf("failed to collect source files: %w", err)
	}
	log.WithField("files", len(paths)).Debug("Collected source files")

	p := parser.New(parser.Options{Logger: log, Concurrency: config.Concurrency})
	files, err := p.ParseFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("failed to parse source files: %w", err)
	}

	if err := writeOutput(files, config, stdout); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.WithFields(logrus.Fields{
		"files":  len(files),
		"blocks": countBlocks(files),
		"output": config.Output,
	}).Info("Documentation extracted")
	return nil
}

func countBlocks(files []parser.SourceFile) int {
	n := 0
	for _, f := range files {
		n += len(f.Documentation)
	}
	return n
}

// FileSystem interface for dependency injection
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Create(name string) (*os.File, error)
}

// DefaultFileSystem implements FileSystem
type DefaultFileSystem struct{}

func (fs *DefaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *DefaultFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name)
}

var defaultFileSystem FileSystem = &DefaultFileSystem{}

func writeOutput(files []parser.SourceFile, config *Config, stdout io.Writer) error {
	return writeOutputWithFS(files, config, stdout, defaultFileSystem)
}

func writeOutputWithFS(files []parser.SourceFile, config *Config, stdout io.Writer, fs FileSystem) error {
	if config.Output == "-" {
		return encodeFiles(stdout, config.Format, files)
	}

	outDir := filepath.Dir(config.Output)
	if fi, err := fs.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist, please create it first", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	f, err := fs.Create(config.Output) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return encodeFiles(f, config.Format, files)
}

func encodeFiles(w io.Writer, format string, files []parser.SourceFile) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
