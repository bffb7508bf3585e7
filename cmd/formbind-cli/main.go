package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/internal/prompt"
	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/page"
)

type options struct {
	schema    string
	openapi   string
	component string
	values    string
	config    string
	output    string
	title     string
	legend    string
	edit      bool
	verbose   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.schema, "schema", "", "YAML schema document")
	flag.StringVar(&opts.openapi, "openapi", "", "OpenAPI document (JSON or YAML)")
	flag.StringVar(&opts.component, "component", "", "component schema to bind when using -openapi")
	flag.StringVar(&opts.values, "values", "", "JSON file with initial values")
	flag.StringVar(&opts.config, "config", "", "TOML file with page title, description and theme tokens")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.StringVar(&opts.title, "title", "", "page title (overrides config)")
	flag.StringVar(&opts.legend, "legend", "", "render the form as a fieldset with this legend")
	flag.BoolVar(&opts.edit, "edit", false, "edit values interactively and print them as JSON")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger, prompt.NewSurveyDriver(), os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger.Info("edit aborted")
			os.Exit(130)
		}
		logger.Error("formbind failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger, driver prompt.Driver, stdout io.Writer) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	src := formbind.Source{Path: opts.schema}
	if strings.TrimSpace(opts.openapi) != "" {
		src = formbind.Source{Path: opts.openapi, Component: opts.component}
	}
	schema, err := formbind.LoadSchema(ctx, src)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", "path", src.Path, "fields", len(schema.Fields()))

	record := schema.New(nil, model.WithLogger(logger))
	if opts.values != "" {
		data, err := os.ReadFile(opts.values)
		if err != nil {
			return fmt.Errorf("read values: %w", err)
		}
		if err := record.LoadJSON(data); err != nil {
			return fmt.Errorf("load values: %w", err)
		}
	}

	legend := cfg.Legend
	if opts.legend != "" {
		legend = opts.legend
	}
	class, err := formbind.FormClass(schema,
		formbind.WithLogger(logger),
		formbind.WithLegend(legend),
	)
	if err != nil {
		return err
	}
	form, err := formbind.Bind(dom.NewDocument(), class, record)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if opts.edit {
		if err := prompt.Session(ctx, driver, formbind.Controls(form)); err != nil {
			return err
		}
		payload, err := record.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode values: %w", err)
		}
		out.Write(payload)
		out.WriteByte('\n')
	} else if err := page.Render(&out, cfg.pageConfig(opts.title), form.Node()); err != nil {
		return err
	}

	return writeOutput(opts.output, out.Bytes(), stdout, logger)
}

func writeOutput(path string, data []byte, stdout io.Writer, logger *slog.Logger) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("output written", "path", path)
	return nil
}
