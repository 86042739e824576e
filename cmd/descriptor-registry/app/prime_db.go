package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stacklok/descriptor-registry-server/database"
)

func newPrimeDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime-db [username]",
		Short: "Create the registry role and login user",
		Long: `Prime the database for a least-privilege server user.

This command:
- Creates the role 'descriptor_registry_server' with read/write access to the descriptor tables
- Creates the login user given as argument, or updates its password
- Grants the role to the user
- Reads the password from STDIN

Run it after 'migrate up' with the credentials of the schema owner.`,
		Args: cobra.ExactArgs(1),
		RunE: runPrimeDB,
	}
	cmd.Flags().Bool("dry-run", false, "Print the SQL that would be executed to standard output")
	return cmd
}

func runPrimeDB(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	primeSQL, err := database.RenderPrimeSQL(args[0], password)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), primeSQL)
		return err
	}

	_, connString, err := migrationTarget(cmd)
	if err != nil {
		return err
	}

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(ctx); closeErr != nil {
			slog.Error("Error closing database connection", "error", closeErr)
		}
	}()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable, AccessMode: pgx.ReadWrite})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, primeSQL); err != nil {
		return fmt.Errorf("failed to prime database: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Database primed successfully", "role", database.RegistryRoleName, "user", args[0])
	return nil
}

// readPassword reads the password without echo from a terminal, or whole from piped stdin
func readPassword(cmd *cobra.Command) (string, error) {
	var reader io.Reader = cmd.InOrStdin()
	if f, ok := reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
			return "", err
		}
		passwordBytes, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		reader = bytes.NewReader(passwordBytes)
	}

	passwordBytes, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(passwordBytes)), nil
}
