package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stacklok/descriptor-registry-server/database"
	"github.com/stacklok/descriptor-registry-server/internal/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tool",
		Long:  `Database migration tool for managing schema versions. Use with 'up' or 'down' subcommands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	cmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to all questions")
	cmd.PersistentFlags().UintP("num-steps", "n", 0, "Number of steps to migrate down (0 = all)")
	cmd.PersistentFlags().String("config", "", "Path to configuration file (YAML format, required)")

	if err := cmd.MarkPersistentFlagRequired("config"); err != nil {
		panic(err)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending database migrations",
		Long: `Apply all pending database migrations to bring the schema up to date.
The database connection parameters are read from the config file.`,
		RunE: runMigrateUp,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert database migrations",
		Long: `Revert applied database migrations. Without --num-steps every migration is
reverted and all descriptors are lost.`,
		RunE: runMigrateDown,
	})
	cmd.AddCommand(newPrimeDBCmd())

	return cmd
}

// migrationTarget loads the configuration and returns the connection string of its database
func migrationTarget(cmd *cobra.Command) (*config.DatabaseConfig, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database == nil {
		return nil, "", fmt.Errorf("database configuration is required")
	}

	connString, err := cfg.Database.GetConnectionString()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get connection string: %w", err)
	}
	return cfg.Database, connString, nil
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbCfg, connString, err := migrationTarget(cmd)
	if err != nil {
		return err
	}

	ok, err := confirmFromFlags(cmd, fmt.Sprintf("About to apply migrations to database %s.", dbCfg))
	if err != nil || !ok {
		return err
	}

	slog.Info("Applying database migrations", "database", dbCfg.String())
	if err := database.MigrateUp(ctx, connString); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	reportVersion(ctx, connString)
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	steps, err := cmd.Flags().GetUint("num-steps")
	if err != nil {
		return fmt.Errorf("failed to get num-steps flag: %w", err)
	}

	dbCfg, connString, err := migrationTarget(cmd)
	if err != nil {
		return err
	}

	what := "all migrations"
	if steps > 0 {
		what = fmt.Sprintf("%d migration(s)", steps)
	}
	ok, err := confirmFromFlags(cmd, fmt.Sprintf("About to revert %s on database %s.", what, dbCfg))
	if err != nil || !ok {
		return err
	}

	slog.Info("Reverting database migrations", "database", dbCfg.String(), "steps", steps)
	if err := database.MigrateDown(ctx, connString, int(steps)); err != nil {
		return fmt.Errorf("failed to revert migrations: %w", err)
	}

	reportVersion(ctx, connString)
	return nil
}

func reportVersion(ctx context.Context, connString string) {
	version, dirty, err := database.GetVersion(ctx, connString)
	switch {
	case err != nil:
		slog.Warn("Unable to get migration version", "error", err)
	case dirty:
		slog.Warn("Database is in a dirty state", "version", version)
	default:
		slog.Info("Migrations completed", "version", version)
	}
}

// confirmFromFlags asks for confirmation unless --yes is set. Without --yes a
// terminal is required on stdin.
func confirmFromFlags(cmd *cobra.Command, prompt string) (bool, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false, fmt.Errorf("failed to get yes flag: %w", err)
	}
	if yes {
		return true, nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal, pass --yes to confirm")
	}
	return confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
}

// confirm prints prompt and reads a yes/no answer
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s Continue? (yes/no): ", prompt); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	default:
		slog.Info("Migration cancelled by user")
		return false, nil
	}
}
