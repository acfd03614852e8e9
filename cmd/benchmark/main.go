package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	symspell "github.com/morezian/go-symspell"
	"github.com/morezian/go-symspell/internal/logger"
	"github.com/morezian/go-symspell/verbosity"
)

type flags struct {
	config     string
	dictionary string
	bigrams    string
	snapshot   string
	queries    string
	mode       string
	verbosity  string
	distance   int
	workers    int
	repeat     int
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "benchmark [query...]",
		Short: "Load dictionaries and time lookups",
		Long: `Loads a frequency dictionary (and optionally a bigram dictionary or a snapshot),
then runs every query through the engine and reports timings.

Queries come from the arguments or, with --queries, from a file with one query per line.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "TOML file with engine options")
	fl.StringVar(&f.dictionary, "dictionary", "frequency_en.txt", "frequency dictionary, one \"term count\" per line")
	fl.StringVar(&f.bigrams, "bigrams", "", "bigram dictionary, one \"term term count\" per line")
	fl.StringVar(&f.snapshot, "snapshot", "", "load this snapshot if it exists, otherwise save one after loading the dictionaries")
	fl.StringVar(&f.queries, "queries", "", "file with one query per line")
	fl.StringVar(&f.mode, "mode", "lookup", "lookup, compound or segment")
	fl.StringVar(&f.verbosity, "verbosity", verbosity.Top.String(), "top, closest or all")
	fl.IntVar(&f.distance, "distance", -1, "max edit distance per query, defaults to the dictionary's")
	fl.IntVar(&f.workers, "workers", 4, "concurrent query workers")
	fl.IntVar(&f.repeat, "repeat", 1, "run every query this many times")
	fl.BoolVar(&f.debug, "debug", false, "log skipped dictionary lines")
	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	if f.debug {
		log.SetLevel(log.DebugLevel)
	}
	lg := logger.New("benchmark")

	opts := symspell.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = symspell.LoadOptions(f.config); err != nil {
			return err
		}
	}
	v, err := verbosity.Parse(f.verbosity)
	if err != nil {
		return err
	}
	s, err := symspell.NewFromOptions(opts, symspell.WithLogger(logger.New("symspell")))
	if err != nil {
		return err
	}

	start := time.Now()
	if err := load(s, f); err != nil {
		return err
	}
	lg.Info("Ready", "words", s.WordCount(), "entries", s.EntryCount(), "max_length", s.MaxLength(),
		"bigrams", s.BigramCount(), "took", time.Since(start))

	queries, err := readQueries(f.queries, args)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return nil
	}

	distance := f.distance
	if distance < 0 {
		distance = s.MaxDictionaryEditDistance()
	}

	results := make([]string, len(queries))
	var calls atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(max(f.workers, 1))

	start = time.Now()
	for i, q := range queries {
		g.Go(func() error {
			var out string
			for range max(f.repeat, 1) {
				res, err := query(s, f.mode, q, v, distance)
				if err != nil {
					return fmt.Errorf("query %q: %w", q, err)
				}
				out = res
				calls.Add(1)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	for i, q := range queries {
		fmt.Fprintf(w, "%s\t%s\n", q, results[i])
	}
	n := calls.Load()
	lg.Info("Done", "mode", f.mode, "calls", n, "took", elapsed, "per_call", elapsed/time.Duration(n))
	return nil
}

func load(s *symspell.SymSpell, f flags) error {
	if f.snapshot != "" {
		if _, err := os.Stat(f.snapshot); err == nil {
			return s.LoadSnapshot(f.snapshot)
		}
	}
	if !s.LoadDictionary(f.dictionary, 0, 1, symspell.DefaultSeparator) {
		return fmt.Errorf("failed to load dictionary %s", f.dictionary)
	}
	if f.bigrams != "" && !s.LoadBigramDictionary(f.bigrams, 0, 2, symspell.DefaultSeparator) {
		return fmt.Errorf("failed to load bigram dictionary %s", f.bigrams)
	}
	if f.snapshot != "" {
		return s.SaveSnapshot(f.snapshot)
	}
	return nil
}

func query(s *symspell.SymSpell, mode, q string, v verbosity.Verbosity, distance int) (string, error) {
	switch mode {
	case "lookup":
		suggestions, err := s.LookupEditDistance(q, v, distance)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(suggestions))
		for i, sugg := range suggestions {
			parts[i] = sugg.String()
		}
		return strings.Join(parts, " | "), nil
	case "compound":
		suggestions, err := s.LookupCompoundWithEditDistance(q, distance)
		if err != nil {
			return "", err
		}
		return suggestions[0].String(), nil
	case "segment":
		c, err := s.WordSegmentationWithOptions(q, distance, s.MaxLength())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s, %d, %.4f", c.CorrectedString, c.DistanceSum, c.ProbabilityLogSum), nil
	}
	return "", fmt.Errorf("unknown mode %q", mode)
}

func readQueries(path string, args []string) ([]string, error) {
	if path == "" {
		return args, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	queries := append([]string(nil), args...)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			queries = append(queries, line)
		}
	}
	return queries, scanner.Err()
}
