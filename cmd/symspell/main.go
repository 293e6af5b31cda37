// Command symspell is the CLI front end for the symmetric-delete spelling
// correction engine: load a frequency dictionary, look up single terms or
// whole phrases, measure edit distance directly, or start the HTTP API.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eskriett/strmet"
	"github.com/spf13/cobra"

	"github.com/lexicore/symspell/internal/config"
	"github.com/lexicore/symspell/internal/editdist"
	"github.com/lexicore/symspell/internal/httpapi"
	"github.com/lexicore/symspell/internal/symspell"
)

// engine is the process-wide SymSpell instance. Every subcommand except
// "distance" and "dict load" (which takes its file as an argument) needs a
// dictionary loaded into it first via --dictionary.
var engine *symspell.SymSpell

func main() {
	rootCmd := &cobra.Command{
		Use:   "symspell",
		Short: "Symmetric-delete spelling correction",
		Long:  `A command-line interface over the symspell engine: dictionary loading, single-term and compound lookup, edit distance, and an HTTP API server.`,
	}

	var dictPath string
	var termIndex, countIndex int
	var maxEditDistance, prefixLength, compactLevel int
	var countThreshold int64

	rootCmd.PersistentFlags().StringVar(&dictPath, "dictionary", "", "path to a frequency dictionary file (term/count columns, whitespace separated)")
	rootCmd.PersistentFlags().IntVar(&termIndex, "term-index", 0, "column index of the term in the dictionary file")
	rootCmd.PersistentFlags().IntVar(&countIndex, "count-index", 1, "column index of the count in the dictionary file")
	rootCmd.PersistentFlags().IntVar(&maxEditDistance, "max-edit-distance", 2, "maximum edit distance considered during lookup and dictionary construction")
	rootCmd.PersistentFlags().IntVar(&prefixLength, "prefix-length", 7, "prefix length used to bound delete-variant generation")
	rootCmd.PersistentFlags().IntVar(&compactLevel, "compact-level", 5, "hash compaction level in [0, 16]; higher trades lookup speed for memory")
	rootCmd.PersistentFlags().Int64Var(&countThreshold, "count-threshold", 1, "minimum cumulative count before a staged term goes live")

	cobra.OnInitialize(func() {
		if err := config.LoadEnv(); err != nil {
			log.Printf("loading .env: %v", err)
		}

		cfg := symspell.DefaultEngineConfig()
		cfg.MaxDictionaryEditDistance = maxEditDistance
		cfg.PrefixLength = prefixLength
		cfg.CompactLevel = compactLevel
		cfg.CountThreshold = countThreshold

		var err error
		engine, err = symspell.New(cfg)
		if err != nil {
			log.Fatalf("constructing engine: %v", err)
		}

		if dictPath != "" {
			if _, err := engine.LoadDictionary(dictPath, termIndex, countIndex); err != nil {
				log.Fatalf("loading dictionary %s: %v", dictPath, err)
			}
		}
	})

	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createDistanceCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createDictCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createLookupCmd() *cobra.Command {
	var verbosityFlag string
	var includeUnknown bool

	cmd := &cobra.Command{
		Use:   "lookup [word]",
		Short: "Look up correction candidates for a single term",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			verbosity := symspell.Top
			switch verbosityFlag {
			case "closest":
				verbosity = symspell.Closest
			case "all":
				verbosity = symspell.All
			}

			maxEditDistance, _ := cmd.Flags().GetInt("max-edit-distance")
			items, err := engine.Lookup(args[0], verbosity, maxEditDistance, includeUnknown)
			if err != nil {
				log.Fatalf("lookup failed: %v", err)
			}

			for _, item := range items {
				fmt.Printf("%s\t%d\t%d\n", item.Term, item.Distance, item.Count)
			}
		},
	}

	cmd.Flags().StringVar(&verbosityFlag, "verbosity", "top", "one of top, closest, all")
	cmd.Flags().BoolVar(&includeUnknown, "include-unknown", false, "append the original term as a sentinel suggestion when nothing else matches")

	return cmd
}

func createCorrectCmd() *cobra.Command {
	var ignoreNonWords bool

	cmd := &cobra.Command{
		Use:   "correct [phrase]",
		Short: "Correct a full phrase via merge/split compound lookup",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			maxEditDistance, _ := cmd.Flags().GetInt("max-edit-distance")
			items, err := engine.LookupCompound(args[0], maxEditDistance, symspell.LookupCompoundOptions{IgnoreNonWords: ignoreNonWords})
			if err != nil {
				log.Fatalf("correct failed: %v", err)
			}
			fmt.Println(items[0].Term)
		},
	}

	cmd.Flags().BoolVar(&ignoreNonWords, "ignore-non-words", false, "pass acronyms and integers through uncorrected")

	return cmd
}

func createDistanceCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "distance [a] [b]",
		Short: "Print the edit distance between two strings",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			maxEditDistance, _ := cmd.Flags().GetInt("max-edit-distance")

			comparer := editdist.NewComparer()
			fmt.Printf("osa\t%d\n", comparer.Compare(args[0], args[1], maxEditDistance))

			if algo == "strmet" {
				fmt.Printf("strmet\t%d\n", strmet.DamerauLevenshtein(args[0], args[1], maxEditDistance))
			}
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "osa", "osa, or strmet to also print the eskriett/strmet cross-check")

	return cmd
}

func createServeCmd() *cobra.Command {
	var addr, apiKey string
	var ignoreNonWords bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			maxEditDistance, _ := cmd.Flags().GetInt("max-edit-distance")
			server := httpapi.NewServer(engine, maxEditDistance, ignoreNonWords, addr, apiKey)
			if err := server.Start(); err != nil {
				log.Fatalf("server error: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "if set, required via the X-API-Key header")
	cmd.Flags().BoolVar(&ignoreNonWords, "ignore-non-words", false, "pass acronyms and integers through uncorrected")

	return cmd
}

func createStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dictionary and delete-index statistics",
		Run: func(cmd *cobra.Command, args []string) {
			stats := engine.Stats()
			fmt.Printf("terms:       %d\n", stats.TermCount)
			fmt.Printf("staged:      %d\n", stats.StagedCount)
			fmt.Printf("buckets:     %d\n", stats.BucketCount)
			fmt.Printf("max length:  %d\n", stats.MaxTermLength)
		},
	}
}

func createDictCmd() *cobra.Command {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary maintenance commands",
	}
	dictCmd.AddCommand(createDictLoadCmd())
	return dictCmd
}

func createDictLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Load a frequency dictionary and print the resulting stats",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			termIndex, _ := cmd.Flags().GetInt("term-index")
			countIndex, _ := cmd.Flags().GetInt("count-index")

			if _, err := engine.LoadDictionary(args[0], termIndex, countIndex); err != nil {
				log.Fatalf("loading dictionary: %v", err)
			}

			stats := engine.Stats()
			fmt.Printf("loaded %d terms (%d staged, %d buckets)\n", stats.TermCount, stats.StagedCount, stats.BucketCount)
		},
	}
}
