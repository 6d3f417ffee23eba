package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-news-backend/internal/config"
)

func newSeedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Drop all tables and load the fixture dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := openStore(*cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := loadFixtures(cmd.Context(), db); err != nil {
				return err
			}
			log.Info().Str("driver", cfg.DBDriver).Msg("fixtures loaded")
			return nil
		},
	}
}
