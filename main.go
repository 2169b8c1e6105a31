// Spelling Wasp: a venomous clone of the NY Times Spelling Bee.
//
// Settings come from .env / environment variables (see internal/config) and
// can be overridden with flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kbseah/spelling-wasp/internal/config"
	"github.com/kbseah/spelling-wasp/internal/daily"
	"github.com/kbseah/spelling-wasp/internal/frontend"
	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/metrics"
	"github.com/kbseah/spelling-wasp/internal/phrases"
	"github.com/kbseah/spelling-wasp/internal/puzzle"
	"github.com/kbseah/spelling-wasp/internal/session"
	"github.com/kbseah/spelling-wasp/internal/store"
	"github.com/kbseah/spelling-wasp/internal/words"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Deferred closes (log file, results DB)
// have all run by the time main exits.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var history, leaderboard bool
	fs := flag.NewFlagSet("spelling-wasp", flag.ExitOnError)
	bindFlags(fs, &cfg, &history, &leaderboard)
	_ = fs.Parse(args)

	closer, err := config.SetupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	st, err := openStore(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open results store")
		return 1
	}
	defer st.Close()

	ctx := context.Background()
	switch {
	case history:
		err = printHistory(ctx, os.Stdout, st)
	case leaderboard:
		err = printLeaderboard(ctx, os.Stdout, st, daily.DateKey(time.Now()))
	default:
		err = play(ctx, cfg, st)
	}
	if err != nil {
		log.Error().Err(err).Msg("spelling wasp")
		return 1
	}
	return 0
}

func bindFlags(fs *flag.FlagSet, cfg *config.Config, history, leaderboard *bool) {
	fs.StringVar(&cfg.DictPath, "dict", cfg.DictPath, "Path to dictionary file (empty for the built-in list)")
	fs.StringVar(&cfg.DictPath, "d", cfg.DictPath, "Shorthand for -dict")
	fs.IntVar(&cfg.Letters, "n", cfg.Letters, "Number of letters to play")
	fs.IntVar(&cfg.MinLength, "min", cfg.MinLength, "Minimum length of a word to accept")
	fs.IntVar(&cfg.MinSolutions, "minsolutions", cfg.MinSolutions, "Minimum number of solutions that a letter combination must have")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "Letter combinations to try before giving up (0 = until -timeout)")
	fs.DurationVar(&cfg.GenerateTimeout, "timeout", cfg.GenerateTimeout, "Time limit for finding a letter combination")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Play in fullscreen mode")
	fs.BoolVar(&cfg.Fullscreen, "f", cfg.Fullscreen, "Shorthand for -fullscreen")
	fs.BoolVar(&cfg.SkipSplash, "skip_splash", cfg.SkipSplash, "Skip splash screen in fullscreen mode")
	fs.BoolVar(&cfg.SkipSplash, "s", cfg.SkipSplash, "Shorthand for -skip_splash")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "Play today's puzzle (same letters for everyone)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.BoolVar(history, "history", false, "Print recent results and exit")
	fs.BoolVar(leaderboard, "leaderboard", false, "Print today's daily leaderboard and exit")
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.ResultsDB == "" {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(cfg.ResultsDB)
}

// builtinMinSolutions is the most solutions the embedded word list can
// reliably offer within the default attempt budget.
const builtinMinSolutions = 20

// loadDictionary reads cfg.DictPath, falling back to the embedded list when
// the path is empty or missing. With the embedded list cfg.MinSolutions is
// capped at builtinMinSolutions.
func loadDictionary(cfg *config.Config) (*words.Dictionary, error) {
	if cfg.DictPath != "" {
		d, err := words.Load(cfg.DictPath)
		if !errors.Is(err, os.ErrNotExist) {
			return d, err
		}
		log.Warn().Str("path", cfg.DictPath).Msg("dictionary not found, using built-in word list")
	}
	d, err := words.Default()
	if err != nil {
		return nil, err
	}
	if cfg.MinSolutions > builtinMinSolutions {
		log.Warn().
			Int("requested", cfg.MinSolutions).
			Int("using", builtinMinSolutions).
			Msg("built-in word list is small, lowering minimum solutions")
		cfg.MinSolutions = builtinMinSolutions
	}
	return d, nil
}

func puzzleParams(cfg config.Config) puzzle.Params {
	return puzzle.Params{
		LetterCount:   cfg.Letters,
		MinSolutions:  cfg.MinSolutions,
		MinWordLength: cfg.MinLength,
		MaxAttempts:   cfg.MaxAttempts,
	}
}

func play(ctx context.Context, cfg config.Config, st store.Store) error {
	dict, err := loadDictionary(&cfg)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	ph, err := phrases.Load(cfg.PhrasesFile)
	if err != nil {
		return fmt.Errorf("load phrases: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	playRng := rand.New(rand.NewPCG(seed, seed>>1|1))
	genRng := playRng

	var opts []session.Option
	if cfg.Daily {
		now := time.Now()
		genRng = daily.Rand(now, cfg.DailySalt)
		opts = append(opts, session.WithDate(daily.DateKey(now)))
	}

	gctx, cancel := context.WithTimeout(ctx, cfg.GenerateTimeout)
	defer cancel()
	pz, err := puzzle.Generate(gctx, genRng, puzzleParams(cfg), dict)
	if err != nil {
		if errors.Is(err, puzzle.ErrAttemptsExhausted) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w (try a lower -minsolutions or a bigger dictionary)", err)
		}
		return err
	}
	log.Info().
		Str("key", string(pz.Key)).
		Str("allowed", string(pz.Allowed)).
		Int("solutions", len(pz.Solutions)).
		Int("attempts", pz.Attempts).
		Int("dictionary", dict.Len()).
		Msg("puzzle generated")

	m := metrics.New()
	m.ObservePuzzle(pz.Attempts, len(pz.Solutions))
	s := session.New(game.New(pz, playRng, ph), append(opts, session.WithMetrics(m))...)

	fopts := frontend.Options{
		Fact:       func() string { return ph.Fact(playRng) },
		SkipSplash: cfg.SkipSplash,
	}
	if cfg.Fullscreen {
		restore, err := frontend.RawMode(os.Stdin)
		if err != nil {
			return err
		}
		err = frontend.RunFullscreen(os.Stdin, os.Stdout, s, fopts)
		restore()
		if err != nil {
			return err
		}
	} else if err := frontend.RunCLI(os.Stdin, os.Stdout, s, fopts); err != nil {
		return err
	}

	if _, err := s.Finish(ctx, st); err != nil {
		log.Warn().Err(err).Msg("save result")
	}
	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("write metrics")
		}
	}
	return nil
}

func printHistory(ctx context.Context, w io.Writer, st store.Store) error {
	rs, err := st.Recent(ctx, 20)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FINISHED\tLETTERS\tSCORE\tFOUND\tHINTS\tDAILY")
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s %s\t%d\t%d/%d\t%d\t%s\n",
			r.FinishedAt.Local().Format(time.DateTime), r.Key, r.Letters, r.Score, r.Found, r.Total, r.Hints, r.Date)
	}
	return tw.Flush()
}

func printLeaderboard(ctx context.Context, w io.Writer, st store.Store, date string) error {
	rs, err := st.Leaderboard(ctx, date, 20)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Daily leaderboard %s\n", date)
	if len(rs) == 0 {
		fmt.Fprintln(w, "No results yet.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tFOUND\tTIME\tHINTS")
	for i, r := range rs {
		fmt.Fprintf(tw, "%d\t%d\t%d/%d\t%s\t%s\n",
			i+1, r.Score, r.Found, r.Total, r.Elapsed().Round(time.Second), strings.Repeat("!", r.Hints))
	}
	return tw.Flush()
}
