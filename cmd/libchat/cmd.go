package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/readerhub/libchat/config"
	"github.com/readerhub/libchat/internal"
	"github.com/readerhub/libchat/pkg/store/postgres"
	"github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool

	seedCounts postgres.FixtureCounts
	seedValue  int64
)

var cmd = &cobra.Command{
	Use:   "libchat",
	Short: "libchat answers library administration questions with statistics from the reading database",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test utilities",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the library tables and fill them with fake data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error configuring libchat: %w", err)
		}
		config.SetLogLevel(cfg)

		db, err := postgres.NewPostgresConn(cfg.Store.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if cfg.Log.Level == "debug" {
			pgDebugLogging(db)
		}

		if err := postgres.Seed(context.Background(), db, seedCounts, seedValue); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		fmt.Println("Database seeded successfully.")
		return nil
	},
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for libchat's configuration file",
	Example: "libchat json-schema > libchat_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

func init() {
	testCmd.AddCommand(seedCmd)
	cmd.AddCommand(testCmd)
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")

	seedCmd.Flags().IntVar(&seedCounts.Users, "users", 200, "Number of users to generate")
	seedCmd.Flags().IntVar(&seedCounts.Authors, "authors", 25, "Number of distinct author ids")
	seedCmd.Flags().IntVar(&seedCounts.Books, "books", 300, "Number of books to generate")
	seedCmd.Flags().IntVar(&seedCounts.Titles, "titles", 120, "Number of distinct book titles")
	seedCmd.Flags().IntVar(&seedCounts.PageViews, "page-views", 2000, "Number of page views to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "Random seed (0 picks a random one)")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
