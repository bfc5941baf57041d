package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zaryabali001/roommate/internal/seed"
	"github.com/zaryabali001/roommate/internal/storage/sqlite"
)

func seedCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect and convert household seeds",
	}
	cmd.AddCommand(seedExportCmd(flags), seedValidateCmd(flags))
	return cmd
}

func seedExportCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured seed as YAML or into a SQLite database",
		Long: `Export loads the seed selected by the config (the built-in demo
household by default) and writes it out. YAML goes to stdout unless --out is
given; the sqlite format requires --out and replaces the database contents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(flags)
			if err != nil {
				return err
			}
			s, err := loadSeed(cmd.Context(), cfg.Seed)
			if err != nil {
				return err
			}

			switch format {
			case "yaml":
				if out == "" {
					return seed.EncodeYAML(cmd.OutOrStdout(), s)
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				if err := seed.EncodeYAML(f, s); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
			case "sqlite":
				if out == "" {
					return fmt.Errorf("--out is required for the sqlite format")
				}
				db, err := sqlite.New(out)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.SaveSeed(cmd.Context(), s); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want yaml or sqlite)", format)
			}

			logger.Info("Seed exported", "format", format, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, sqlite)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	return cmd
}

func seedValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured seed for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(flags)
			if err != nil {
				return err
			}
			s, err := loadSeed(cmd.Context(), cfg.Seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed ok: %d users, %d todos, %d expenses\n", len(s.Users), len(s.Todos), len(s.Expenses))
			return nil
		},
	}
}
