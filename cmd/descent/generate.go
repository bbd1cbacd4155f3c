package main

import (
	"context"

	"github.com/spf13/cobra"
)

var generateLength int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and print its rooms",
	Long:  `Generate a level against an in-memory engine and print the rooms along the golden path.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateLength, "length", 8, "Golden path length, including start and boss")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	s, err := newSession(ctx, generateLength, false)
	if err != nil {
		return err
	}

	out, err := s.gen.Generate(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.gen.Release(ctx)
	}()

	renderLevel(cmd.OutOrStdout(), out, s.seed)
	return nil
}
