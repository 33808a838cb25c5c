package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/rules"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

const defaultConfigFile = "config.json"

// Options holds the command line arguments
type Options struct {
	ConfigPath  string
	Inputs      []string
	Iterations  int
	Parallelism int
	All         bool
	Print       bool
	StopOnCycle bool

	set map[string]bool
}

// processOptions parses args into Options; flag.ErrHelp is returned for -help
func processOptions(flags *flag.FlagSet, args []string) (Options, error) {
	var (
		opts  = Options{set: map[string]bool{}}
		input string
	)
	flags.StringVar(&opts.ConfigPath, "config", defaultConfigFile, "Path to a JSON configuration file. Missing file means defaults.")
	flags.StringVar(&input, "input", "", "Path to the input board. Further boards may follow as arguments.")
	flags.IntVar(&opts.Iterations, "iterations", 0, "A positive number of generations to compute.")
	flags.IntVar(&opts.Parallelism, "parallelism", 0, "How many boards are processed at the same time.")
	flags.BoolVar(&opts.All, "all", false, "Write every generation. If absent, only the last one is written.")
	flags.BoolVar(&opts.Print, "print", false, "Print written generations to standard output.")
	flags.BoolVar(&opts.StopOnCycle, "stop-on-cycle", false, "Stop once a pattern repeats.")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	flags.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if input != "" {
		opts.Inputs = append(opts.Inputs, input)
	}
	opts.Inputs = append(opts.Inputs, flags.Args()...)
	if len(opts.Inputs) == 0 {
		flags.Usage()
		return opts, errors.New("[processOptions] input is mandatory")
	}
	return opts, nil
}

// buildConfig reads the configuration file and applies the command line on top of it
func buildConfig(opts Options) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.ConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	if opts.set["iterations"] {
		config.Iterations = opts.Iterations
	}
	if opts.set["parallelism"] {
		config.Parallelism = opts.Parallelism
	}
	if opts.set["all"] {
		config.DumpAll = opts.All
	}
	if opts.set["print"] {
		config.Print = opts.Print
	}
	if opts.set["stop-on-cycle"] {
		config.StopOnCycle = opts.StopOnCycle
	}

	return config, config.Validate()
}

// game bundles everything shared by the runs of a single invocation
type game struct {
	config   utils.Config
	enc      model.CellEncoding
	rules    rules.GameRules
	pool     *model.BoardPool
	renderer *model.TerminalRenderer
}

// newGame validates the encoding and rules described by config
func newGame(config utils.Config, out io.Writer) (*game, error) {
	enc, err := model.NewCellEncoding(config.AliveCell[0], config.DeadCell[0], config.RowSeparator[0])
	if err != nil {
		return nil, err
	}

	r, err := rules.New(
		config.MinNeighborsToSurvive, config.MaxNeighborsToSurvive,
		config.MinNeighborsToSpawn, config.MaxNeighborsToSpawn,
	)
	if err != nil {
		return nil, err
	}

	g := &game{config: config, enc: enc, rules: r}
	if config.UseMemoryPool {
		g.pool = model.NewBoardPool()
	}
	if config.Print {
		g.renderer = model.NewTerminalRenderer(out, enc)
	}
	return g, nil
}

func (g *game) newBoard() *model.Board {
	if g.pool != nil {
		return g.pool.Get(0, 0)
	}
	return &model.Board{}
}

// loadBoardFromFile reads the initial board stored at path
func (g *game) loadBoardFromFile(path string) (*model.Board, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadBoardFromFile] %s is not a valid path to an input file", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("[loadBoardFromFile] %s is a directory, not an input file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadBoardFromFile] failed to open file: %+v", path)
	}
	defer f.Close()

	board := g.newBoard()
	if err = g.enc.LoadBoard(f, board); err != nil {
		model.BoardToPool(board, g.pool)
		return nil, errors.Wrapf(err, "[loadBoardFromFile] failed to load data from input file: %+v", path)
	}
	return board, nil
}

// outputFilename returns <dir>/<stem>_<iteration><ext> for the given input path
func outputFilename(input string, iteration int) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), fmt.Sprintf("%s_%d%s", stem, iteration, ext))
}

// saveBoardToFile writes the occupied area of b to path
func (g *game) saveBoardToFile(path string, b *model.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[saveBoardToFile] failed to create file: %+v", path)
	}
	if err = g.enc.SaveBoard(f, b); err != nil {
		f.Close()
		return errors.Wrapf(err, "[saveBoardToFile] failed to write file: %+v", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[saveBoardToFile] failed to close file: %+v", path)
	}

	if g.renderer != nil {
		return g.renderer.Display(path, b)
	}
	return nil
}

// runGame computes the configured number of generations of a single board
func (g *game) runGame(ctx context.Context, input string) (*utils.Stats, error) {
	board, err := g.loadBoardFromFile(input)
	if err != nil {
		return nil, err
	}

	engine := model.NewEngine(board, g.rules)
	defer engine.Release(g.pool)

	var history *model.History
	if g.config.StopOnCycle {
		history = model.NewHistory(g.config.CycleWindow)
		history.Observe(engine.Board())
	}

	stats := utils.NewStats()
	for it := 1; it <= g.config.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return stats, errors.Wrapf(err, "[runGame] %s stopped before iteration %d", input, it)
		}

		engine.Next()
		current := engine.Board()
		rect := current.GetOccupiedCellsBoundingRectangle()
		stats.Update(it, current.CountLivingCells(), rect.Length()*rect.Height())

		last := it == g.config.Iterations
		if history != nil && history.Observe(current) {
			last = true
		}
		if last || g.config.DumpAll {
			if err = g.saveBoardToFile(outputFilename(input, it), current); err != nil {
				return stats, err
			}
		}
		if last {
			break
		}
	}
	return stats, nil
}

// runAll runs every input on its own engine, at most config.Parallelism at a time
func (g *game) runAll(ctx context.Context, inputs []string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Parallelism)

	for _, input := range inputs {
		input := input
		eg.Go(func() error {
			stats, err := g.runGame(ctx, input)
			if err != nil {
				return err
			}
			log.Printf("%s | %s", input, stats)
			return nil
		})
	}

	return eg.Wait()
}
