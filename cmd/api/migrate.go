package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			logrus.Info("database schema is up to date")
			return nil
		},
	}
}
