package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"showbook/internal/cache"
	"showbook/internal/config"
	"showbook/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample venues, artists and shows that are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			cfg, database, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			var opts []seed.Option
			if client := config.NewRedisClient(cfg); client != nil {
				defer client.Close()
				opts = append(opts, seed.WithArtistCache(cache.NewArtistCache(client, cfg.ArtistCacheTTL)))
			}

			res, err := seed.NewSeeder(database.DB, opts...).Run(cmd.Context(), fixtures)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"venues":  res.VenuesCreated,
				"artists": res.ArtistsCreated,
				"shows":   res.ShowsCreated,
			}).Info("seed complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures file (defaults to the built-in sample data)")
	return cmd
}
