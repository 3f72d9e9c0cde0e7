package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/modalstack/app"
	"github.com/jask/modalstack/core"
	"github.com/jask/modalstack/internal/config"
	"github.com/jask/modalstack/internal/database"
	"github.com/jask/modalstack/internal/database/repository"
	"github.com/jask/modalstack/internal/logging"
)

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "modaldemo",
		Short: "Stacked dialog demo",
		Long:  "modaldemo opens namespaced dialogs on one shared stack and awaits their results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "Config file (TOML)")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Print the recorded dialog decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return printHistory(cmd.Context(), cmd.OutOrStdout(), cfg.Journal.Path, limit)
		},
	}
	historyCmd.Flags().Int("limit", 20, "Number of rows to print")
	rootCmd.AddCommand(historyCmd)

	configCmd := &cobra.Command{Use: "config", Short: "Config file operations"}
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", cfgPath)
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := config.Save(cfgPath, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", cfgPath)
			return nil
		},
	}
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	var journal app.Journal
	if cfg.Journal.Enabled {
		db, err := database.OpenJournal(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		journal = repository.NewActivityRepo(db)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	store := core.NewStore(core.WithLogger(logger))
	ctx = core.WithStore(ctx, store)

	model := app.NewModel(ctx, app.Options{
		Journal:      journal,
		Logger:       logger,
		Bindings:     app.ApplyActionKeybindings(app.DefaultKeyBindings(), cfg.Keys),
		ConfirmDelay: cfg.Demo.ConfirmDelay,
		DefaultNote:  cfg.Demo.DefaultNote,
	})
	defer model.Close()

	logger.Info("starting demo", "journal", cfg.Journal.Enabled)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func printHistory(ctx context.Context, w io.Writer, path string, limit int) error {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(w, "no journal at", path)
		return nil
	}
	db, err := database.OpenJournal(path)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewActivityRepo(db)
	rows, err := repo.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("recent activity: %w", err)
	}
	counts, err := repo.CountByAction(ctx)
	if err != nil {
		return fmt.Errorf("count activity: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tDIALOG\tACTION\tDETAIL")
	for _, a := range rows {
		fmt.Fprintf(tw, "%s\t%s/%s\t%s\t%s\n", a.At.Local().Format("2006-01-02 15:04:05"), a.Namespace, a.Key, a.Action, a.Detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	actions := make([]string, 0, len(counts))
	for a := range counts {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	fmt.Fprintln(w)
	for _, a := range actions {
		fmt.Fprintf(w, "%s: %d\n", a, counts[a])
	}
	return nil
}
