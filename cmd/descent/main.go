// Package main is the entry point for the descent level generator
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed      uint64
	redisAddr string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "descent",
	Short: "Procedural room-graph dungeon generator",
	Long: `Descent assembles dungeon levels from authored room templates: a golden path from a start
room to a boss room, with every leftover doorway sealed or capped with a terminal room.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "",
		`Template catalog source: a Redis address, "memory" for an in-process server, or empty for the built-in tileset`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(catalogCmd)
}
