package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"livegauge/internal/app"
	"livegauge/internal/capture"
	"livegauge/internal/config"
	"livegauge/internal/display"
	"livegauge/internal/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	device      string
	knownWidth  float64
	unit        string
	headless    bool
	maxFrames   int
	queueSize   int
	snapshotDir string
	verbose     bool
	files       []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "livegauge",
		Short: "Measure objects on a live camera feed against a reference of known width",
		Long: `livegauge watches a camera (or replays still images), calibrates a pixels-per-unit
ratio from the first four-sided reference it sees, and overlays the measured width and
height of rectangular objects and the diameter of circular ones.

Keys in the live window: q or ESC quits, s saves the annotated frame.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLive(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/livegauge/config.yaml)")
	f.StringVarP(&opts.device, "device", "d", config.DefaultDevice, "camera index or stream URL")
	f.Float64VarP(&opts.knownWidth, "known-width", "w", config.DefaultKnownWidth, "physical width of the reference object")
	f.StringVarP(&opts.unit, "unit", "u", config.DefaultUnit, "unit suffix for measurements")
	f.BoolVar(&opts.headless, "headless", false, "process frames without opening a window")
	f.IntVarP(&opts.maxFrames, "max-frames", "n", 0, "stop after this many processed frames (0 = unlimited)")
	f.IntVar(&opts.queueSize, "queue-size", config.DefaultQueueSize, "frames buffered between capture and processing")
	f.StringVar(&opts.snapshotDir, "snapshot-dir", "", "directory for snapshots taken with the s key")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every frame")
	f.StringSliceVarP(&opts.files, "files", "f", nil, "replay these images or directories instead of a camera")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveConfig loads the config file and applies the flags the user actually set.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, path, err := config.LoadDefault(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		log.Printf("Config: loaded %s", path)
	}

	f := cmd.Flags()
	if f.Changed("device") {
		cfg.Capture.Device = opts.device
	}
	if f.Changed("known-width") {
		cfg.Measurement = cfg.Measurement.WithKnownWidth(opts.knownWidth)
	}
	if f.Changed("unit") {
		cfg.Measurement.Unit = opts.unit
	}
	if f.Changed("headless") {
		cfg.Display.Headless = opts.headless
	}
	if f.Changed("max-frames") {
		cfg.Display.MaxFrames = opts.maxFrames
	}
	if f.Changed("queue-size") {
		cfg.Capture.QueueSize = opts.queueSize
	}
	if f.Changed("snapshot-dir") {
		cfg.Display.SnapshotDir = opts.snapshotDir
	}
	if f.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if f.Changed("files") {
		cfg.Capture.Files = opts.files
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Printf("Starting %s, run %s", version.String(), runID)

	source, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	sink := openSink(cfg, runID)
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.New(cfg, source, sink, runID).Run(ctx)
}

func openSource(cfg config.Config) (capture.Source, error) {
	if len(cfg.Capture.Files) > 0 {
		files, err := capture.NewFiles(cfg.Capture.Files)
		if err != nil {
			return nil, err
		}
		return files, nil
	}
	cam, err := capture.OpenCamera(cfg.Capture.Device, cfg.Capture.Width, cfg.Capture.Height)
	if err != nil {
		return nil, err
	}
	return cam, nil
}

func openSink(cfg config.Config, runID string) display.Sink {
	if cfg.Display.Headless {
		return display.NewHeadless()
	}
	return display.NewWindow(cfg.Display.WindowName, display.NewSnapshotter(cfg.Display.SnapshotDir, runID))
}
