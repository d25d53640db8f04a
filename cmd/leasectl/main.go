package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/havenridge/leasing/internal/config"
	"github.com/havenridge/leasing/internal/database"
	init_ "github.com/havenridge/leasing/internal/modules/init"
	"github.com/havenridge/leasing/internal/modules/notify"
	"github.com/havenridge/leasing/internal/pkg/logger"
	"github.com/havenridge/leasing/internal/pkg/mail"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "leasectl",
	Short:        "Maintenance commands for the leasing site backend",
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := database.EnsureSchema(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%s).\n", cfg.Database.Driver)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo floor plans, amenities and gallery images",
	Long:  "Insert the demo catalog. Seeding is not idempotent: running it twice inserts the rows twice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		db, err := database.Connect(cfg, true)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		counts, err := init_.Seed(db, time.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d floor plans, %d amenities, %d gallery images.\n",
			counts.FloorPlans, counts.Amenities, counts.GalleryImages)
		return nil
	},
}

var testEmailCmd = &cobra.Command{
	Use:   "test-email",
	Short: "Send a sample contact notification through the configured transport",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log := logger.New(cfg.Env)
		defer log.Sync()

		transport, err := mail.New(cfg.Mail)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res := notify.New(transport, cfg.Mail, log).Notify(ctx, notify.SampleSubmission(time.Now()))
		if !res.Success {
			return fmt.Errorf("send via %s failed: %s", res.Transport, res.Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent via %s, message id %s\n", res.Transport, res.MessageID)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to YAML config file")
	rootCmd.AddCommand(migrateCmd, seedCmd, testEmailCmd)
}
