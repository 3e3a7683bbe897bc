package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

// the database/mysql and source/file drivers must be registered by the caller

func newMigrate(sourceDir string, dsn string) *migrate.Migrate {
	m, err := migrate.New("file://"+sourceDir, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the root command with up / down / force / version sub commands,
// migration files are read from --dir, ./migrations by default
func MigrateCommand(dsn string) *cobra.Command {
	var sourceDir string

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "database schema migration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&sourceDir, "dir", "migrations", "directory of the migration files")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(sourceDir, dsn)
			defer closeMigrate(m)
			return ignoreNoChange(m.Up())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "roll back migrations, 1 step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				steps = n
			}

			m := newMigrate(sourceDir, dsn)
			defer closeMigrate(m)
			return ignoreNoChange(m.Steps(-steps))
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "set version without running migrations, used to fix a dirty state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			m := newMigrate(sourceDir, dsn)
			defer closeMigrate(m)
			return m.Force(version)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(sourceDir, dsn)
			defer closeMigrate(m)

			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Println("VERSION:", version, "DIRTY:", dirty)
			return nil
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd, versionCmd)
	return rootCmd
}

// MigrateUpForTesting drops everything then migrates up, using rootDir/migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceDir := path.Join(rootDir, "migrations")

	dropAll := newMigrate(sourceDir, dsn)
	err := dropAll.Drop()
	closeMigrate(dropAll)
	if err != nil {
		panic(err)
	}

	m := newMigrate(sourceDir, dsn)
	defer closeMigrate(m)

	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
