package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/zaryabali001/roommate/internal/store"
	"github.com/zaryabali001/roommate/internal/views"
)

func viewCmd(flags *globalFlags) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "view [page]",
		Short: "Render a page view model from the configured seed as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(flags)
			if err != nil {
				return err
			}

			page := ""
			if len(args) == 1 {
				page = args[0]
			}
			p, err := views.ParsePage(page)
			if err != nil {
				return err
			}

			now := time.Now()
			if at != "" {
				if now, err = time.Parse(time.RFC3339, at); err != nil {
					return err
				}
			}

			s, err := loadSeed(cmd.Context(), cfg.Seed)
			if err != nil {
				return err
			}
			st := store.New(s, store.WithLogger(logger))
			router := views.NewRouter(views.Options{InviteBaseURL: cfg.Views.InviteBaseURL})

			rendered, err := router.Render(p, st.Snapshot(), now)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rendered)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Render as of this RFC3339 time instead of now")
	return cmd
}
