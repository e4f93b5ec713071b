package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// defaultWidth is used when no positional width is given or it does not parse
const defaultWidth = 400

// Config holds the command line options
type Config struct {
	SceneName string
	Width     int
	Samples   int // 0 = scene default
	Depth     int // -1 = scene default
	Workers   int // 0 = one per CPU
	Seed      int64
	Output    string
	Format    string // empty = from the output extension
	Help      bool
}

func main() {
	config, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if config.Help {
		printHelp(os.Stdout)
		return
	}

	if err := run(config, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet binds the command line flags to config
func newFlagSet(config *Config, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&config.SceneName, "scene", "default", "Scene to render")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.Depth, "depth", -1, "Maximum bounce depth (-1 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of render workers (0 = one per CPU)")
	fs.Int64Var(&config.Seed, "seed", renderer.DefaultParallelConfig().Seed, "Random seed for sampling and procedural scenes")
	fs.StringVar(&config.Output, "o", output.DefaultPath, "Output file")
	fs.StringVar(&config.Format, "format", "", "Output format: ppm, png, bmp or tiff (default from the output extension)")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

// parseArgs parses flags followed by an optional image width
func parseArgs(args []string, errOut io.Writer) (Config, error) {
	config := Config{}
	fs := newFlagSet(&config, errOut)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	config.Width = parseWidth(fs.Arg(0))
	return config, nil
}

// parseWidth returns the positional width, or the default when it is absent or invalid
func parseWidth(arg string) int {
	width, err := strconv.Atoi(arg)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options] [width]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "The image width defaults to %d. The height follows the scene's aspect ratio.\n", defaultWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s %s\n", info.ID, info.Description)
	}
}

// createScene loads a built-in scene by name
func createScene(name string, seed int64) (*scene.Scene, error) {
	return scene.Load(name, scene.Options{Seed: seed})
}

// samplingConfig applies command line overrides to a scene's sampling settings
func samplingConfig(sc *scene.Scene, config Config) renderer.SamplingConfig {
	sampling := sc.SamplingFor(config.Width)
	if config.Samples > 0 {
		sampling.SamplesPerPixel = config.Samples
	}
	if config.Depth >= 0 {
		sampling.MaxDepth = config.Depth
	}
	return sampling
}

// run renders the selected scene and writes the image. A failed save is
// reported but is not an error; bad options and failed renders are.
func run(config Config, logger core.Logger) error {
	format, err := outputFormat(config)
	if err != nil {
		return err
	}

	sc, err := createScene(config.SceneName, config.Seed)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d spheres\n", config.SceneName, sc.World.Len())

	sampling := samplingConfig(sc, config)
	raytracer := renderer.NewRaytracer(sc.World, sc.NewCamera(), sampling, logger)
	parallel := renderer.DefaultParallelConfig()
	parallel.NumWorkers = config.Workers
	parallel.Seed = config.Seed
	raytracer.SetParallelConfig(parallel)

	fb, _, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := output.Save(config.Output, format, fb.Pixels(), fb.Width(), fb.Height(), sampling.SamplesPerPixel); err != nil {
		logger.Printf("Failed to save image: %v\n", err)
		return nil
	}
	logger.Printf("Render saved as %s\n", config.Output)
	return nil
}

// outputFormat resolves the -format flag, falling back to the output extension
func outputFormat(config Config) (output.Format, error) {
	if config.Format != "" {
		return output.ParseFormat(config.Format)
	}
	return output.FormatFromPath(config.Output)
}
