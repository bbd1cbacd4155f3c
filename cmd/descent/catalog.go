package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/descent/internal/catalog"
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/repositories/templates"
)

var (
	catalogType string
	pruneDryRun bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage room templates stored in Redis",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		rootCmd.PersistentPreRun(cmd, nil)
		if redisAddr == "" {
			return fmt.Errorf("--redis is required for catalog commands")
		}
		return nil
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the built-in demo tileset",
	RunE:  runCatalogSeed,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored room templates",
	RunE:  runCatalogList,
}

var catalogPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove stored templates that no longer decode or validate",
	RunE:  runCatalogPrune,
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogType, "type", "", "Only list templates of this room type")
	catalogPruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report corrupt templates without removing them")

	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogPruneCmd)
}

func runCatalogSeed(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := seedTemplates(ctx, repo); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d templates\n", len(catalog.DemoTemplates()))
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	roomType := entities.RoomType(catalogType)
	if roomType != "" && !roomType.Valid() {
		return fmt.Errorf("unknown room type %q", catalogType)
	}

	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.List(ctx, templates.ListInput{Type: roomType})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, t := range out.Templates {
		fmt.Fprintf(w, "%s %s size %dm height %dm doors %s\n",
			roomStyle(t.Type).Sprintf("%-12s", t.ID),
			colorSubtle.Sprintf("%-10s", t.Type),
			t.Size, t.Height,
			t.Doors,
		)
	}
	fmt.Fprintln(w, colorSubtle.Sprintf("%d templates", len(out.Templates)))

	return nil
}

func runCatalogPrune(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Prune(ctx, templates.PruneInput{DryRun: pruneDryRun})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, entry := range out.Removed {
		fmt.Fprintf(w, "%s %s\n", colorBoss.Sprintf("✗ %s", entry.ID), colorSubtle.Sprint(entry.Reason))
	}

	verb := "removed"
	if pruneDryRun {
		verb = "would remove"
	}
	fmt.Fprintf(w, "Checked %d templates, %s %d\n", out.Checked, verb, len(out.Removed))

	return nil
}
