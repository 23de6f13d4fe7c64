package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/database/seeders"
	"github.com/shashiranjanraj/kirana/pkg/database"
)

// kirana seed — load the sample catalogue into MongoDB.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx := cmd.Context()
		client, err := database.Connect(ctx, config.MongoURI())
		if err != nil {
			return err
		}
		defer database.Disconnect(client) //nolint:errcheck

		fmt.Println("Seeding database…")
		if err := seeders.RunAll(ctx, client.Database(config.MongoDB())); err != nil {
			return err
		}
		fmt.Println("✅  Seeding complete")
		return nil
	},
}
