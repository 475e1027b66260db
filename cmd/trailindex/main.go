package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hikelab/trailindex/mountain"
	"github.com/hikelab/trailindex/trietable"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.0.1"

var (
	loglevel string

	rootCmd = &cobra.Command{
		Use:     "trailindex",
		Short:   "trailindex",
		Long:    "Inspect the trailindex table engines from the command line",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(loglevel)
		},
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Seed a peak registry and print it by difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var (
				manager   = mountain.NewManager()
				organiser = mountain.NewOrganiser()

				peaks = []mountain.Peak{
					{Name: "kosciuszko", Difficulty: 3, Length: 2228},
					{Name: "bogong", Difficulty: 4, Length: 1986},
					{Name: "feathertop", Difficulty: 4, Length: 1922},
					{Name: "townsend", Difficulty: 3, Length: 2209},
					{Name: "buller", Difficulty: 2, Length: 1805},
				}
			)

			for _, p := range peaks {
				if err := manager.Add(p); err != nil {
					return fmt.Errorf("failed to seed registry: %w", err)
				}
			}

			organiser.Add(peaks...)

			log.Infof("seeded %d peaks", manager.Len())

			for _, d := range manager.Difficulties() {
				fmt.Printf("difficulty %d:\n", d)

				for _, p := range manager.ByDifficulty(d) {
					rank, err := organiser.Rank(p)
					if err != nil {
						return fmt.Errorf("failed to rank %q: %w", p.Name, err)
					}

					fmt.Printf("  #%d %s\n", rank, p)
				}
			}

			return nil
		},
	}

	sortCmd = &cobra.Command{
		Use:   "sort [keys...]",
		Short: "Insert keys into a trie table and print them sorted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			table := trietable.New[int]()

			for i, key := range args {
				table.Set(key, i)
			}

			log.Debugf("trie layout:\n%s", table)

			fmt.Println(strings.Join(table.SortKeys(), "\n"))

			return nil
		},
	}
)

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&loglevel, "loglevel", "o", "info", "Loglevel, e.g., INFO, DEBUG, . . .")
	rootCmd.AddCommand(demoCmd, sortCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all", "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		fmt.Printf("Invalid log level '%s'. Setting log level to 'info'\n", level)
	}
}
