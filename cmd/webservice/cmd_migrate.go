package main

import (
	"github.com/alimikegami/point-of-sales/ecommerce-service/config"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the products and orders indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.CreateNewConfig()
		app.SetupLogger(conf.Environment, conf.LogLevel)

		return app.Migrate(cmd.Context(), conf)
	},
}
