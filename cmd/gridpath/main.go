// Command gridpath runs one path search on an ASCII map and prints the
// result.
//
// The map comes from exactly one of:
//
//	-map name     a built-in map (see samplemaps.Names); default "gap"
//	-file path    an ASCII file, one row per line ('.', '#', 'S', 'G')
//	-maze WxH     a generated maze, shaped by -seed
//
// Exit status: 0 path found, 1 error, 2 no path.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/samplemaps"
)

const (
	exitFound  = 0
	exitError  = 1
	exitNoPath = 2
)

var errTooManySources = errors.New("gridpath: use only one of -map, -file, -maze")

type config struct {
	mapName       string
	file          string
	maze          string
	seed          int64
	cornerCutting bool
	color         bool
	trace         bool
	debug         bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, writing to the given streams.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	log := newLogger(stderr, cfg.debug)
	defer func() { _ = log.Sync() }()

	m, err := loadMap(cfg)
	if err != nil {
		log.Error("load map", zap.Error(err))
		return exitError
	}
	gg, mk, err := m.Grid(gridgraph.DefaultGridOptions())
	if err != nil {
		log.Error("parse map", zap.String("map", m.Name), zap.Error(err))
		return exitError
	}
	if !mk.HasStart || !mk.HasGoal {
		log.Error("map needs both S and G markers", zap.String("map", m.Name))
		return exitError
	}
	log.Debug("map loaded",
		zap.String("map", m.Name),
		zap.Int("width", gg.Width),
		zap.Int("height", gg.Height),
		zap.Stringer("start", mk.Start),
		zap.Stringer("goal", mk.Goal),
	)

	opts := []astar.Option{astar.WithCornerCutting(cfg.cornerCutting)}
	if cfg.trace {
		opts = append(opts,
			astar.WithOnExpand(func(c gridgraph.Cell) error {
				log.Info("expand", zap.Stringer("cell", c))
				return nil
			}),
			astar.WithOnBacktrack(func(c gridgraph.Cell) error {
				log.Info("backtrack", zap.Stringer("cell", c))
				return nil
			}),
		)
	}

	res, err := astar.FindPath(gg, mk.Start, mk.Goal, opts...)
	if err != nil {
		log.Error("search", zap.Error(err))
		return exitError
	}

	if err = render.Render(stdout, gg, mk.Start, mk.Goal, res,
		render.WithColor(cfg.color), render.WithLegend(true)); err != nil {
		log.Error("render", zap.Error(err))
		return exitError
	}
	if !res.Found {
		return exitNoPath
	}
	fmt.Fprintf(stdout, "path: %v\n", res.Path)
	return exitFound
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapName, "map", "", "built-in map name ("+strings.Join(samplemaps.Names(), ", ")+")")
	fs.StringVar(&cfg.file, "file", "", "ASCII map file")
	fs.StringVar(&cfg.maze, "maze", "", "generate a WxH maze, e.g. 21x11")
	fs.Int64Var(&cfg.seed, "seed", 1, "maze seed")
	fs.BoolVar(&cfg.cornerCutting, "corner-cutting", true, "allow diagonal moves between two walls")
	fs.BoolVar(&cfg.color, "color", false, "colour the rendering")
	fs.BoolVar(&cfg.trace, "trace", false, "log every expansion and backtrack")
	fs.BoolVar(&cfg.debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	n := 0
	for _, s := range []string{cfg.mapName, cfg.file, cfg.maze} {
		if s != "" {
			n++
		}
	}
	if n > 1 {
		return cfg, errTooManySources
	}
	if n == 0 {
		cfg.mapName = "gap"
	}
	return cfg, nil
}

// loadMap resolves the configured map source.
func loadMap(cfg config) (samplemaps.Map, error) {
	switch {
	case cfg.file != "":
		rows, err := readRows(cfg.file)
		if err != nil {
			return samplemaps.Map{}, err
		}
		return samplemaps.Map{Name: cfg.file, Rows: rows}, nil
	case cfg.maze != "":
		var w, h int
		if _, err := fmt.Sscanf(cfg.maze, "%dx%d", &w, &h); err != nil {
			return samplemaps.Map{}, fmt.Errorf("gridpath: -maze %q: want WxH: %w", cfg.maze, err)
		}
		return samplemaps.Maze(w, h, cfg.seed)
	default:
		return samplemaps.Get(cfg.mapName)
	}
}

// readRows reads non-blank lines of an ASCII map file.
func readRows(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridpath: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("gridpath: read %s: %w", path, err)
	}
	return rows, nil
}

// newLogger writes console-encoded logs to w, at debug level if debug is set.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zap.NewProductionEncoderConfig()
	if debug {
		level = zapcore.DebugLevel
		enc = zap.NewDevelopmentEncoderConfig()
	}
	enc.TimeKey = "" // deterministic output
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}
