// Command boxpacker3d runs the packing engine once over a request file and
// prints the result. It plays the same batch-mode front-end role as a
// single-entry-point CLI, built on cobra/pflag instead of the standard flag
// package so request options, streaming, and rendering compose the way a
// real CLI's subcommand tree does.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/91xusir/boxpacker3d/internal/events"
	"github.com/91xusir/boxpacker3d/internal/httpapi"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
	"github.com/91xusir/boxpacker3d/internal/packer"
	"github.com/91xusir/boxpacker3d/internal/render"
)

type runOptions struct {
	requestPath string
	stream      bool
	renderDir   string
	allowRotate bool
	logLevel    string
}

func main() {
	opts := &runOptions{}
	log := logrus.New()

	root := &cobra.Command{
		Use:   "boxpacker3d",
		Short: "Pack a batch of items into containers and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, log)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.requestPath, "request", "r", "", "path to a pack request JSON file (required)")
	flags.BoolVar(&opts.stream, "stream", false, "replay the event stream as NDJSON instead of printing the batch response")
	flags.StringVar(&opts.renderDir, "render-dir", "", "write per-container PNG diagrams to this directory")
	flags.BoolVar(&opts.allowRotate, "allow-rotations", false, "permit axis-aligned rotation of items")
	flags.StringVar(&opts.logLevel, "log-level", "info", "logrus level: debug, info, warn, error")
	_ = root.MarkFlagRequired("request")

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("boxpacker3d failed")
	}
}

func run(opts *runOptions, log *logrus.Logger) error {
	if level, err := logrus.ParseLevel(opts.logLevel); err == nil {
		log.SetLevel(level)
	}

	raw, err := os.ReadFile(opts.requestPath)
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}

	var req httpapi.PackRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing request file: %w", err)
	}

	validated, err := httpapi.IntoValidated(req, opts.allowRotate)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	cfg := httpapi.ConfigFor(packconfig.Default(), validated)

	if opts.stream {
		return runStreaming(validated, cfg)
	}
	return runBatch(validated, cfg, opts, log)
}

func runBatch(v httpapi.Validated, cfg packconfig.Config, opts *runOptions, log *logrus.Logger) error {
	result := packer.Pack(v.Templates, v.Items, cfg, events.NullSink{})

	if opts.renderDir != "" {
		written, err := render.WriteSnapshots(result.Containers, opts.renderDir, render.Options{})
		if err != nil {
			return fmt.Errorf("rendering snapshots: %w", err)
		}
		log.WithField("files", len(written)).Info("wrote packing diagrams")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(httpapi.BuildResponse(result))
}

func runStreaming(v httpapi.Validated, cfg packconfig.Config) error {
	var sink events.SliceSink
	packer.Pack(v.Templates, v.Items, cfg, &sink)

	enc := json.NewEncoder(os.Stdout)
	for _, ev := range sink.Events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	return nil
}
