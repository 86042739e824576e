package database

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jackc/pgx/v5"
)

// RegistryRoleName is the role holding the privileges the registry server needs
const RegistryRoleName = "descriptor_registry_server"

//go:embed prime.sql.tmpl
var primeTemplate string

// GetPrimeTemplate returns the SQL template that creates the registry role and user
func GetPrimeTemplate() string {
	return primeTemplate
}

// RenderPrimeSQL renders the SQL that creates the registry role, creates or updates the
// login user with the given password and grants the role to it. The schema must already
// be migrated.
func RenderPrimeSQL(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	tmpl, err := template.New("prime").Parse(primeTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Role            string
		RoleLiteral     string
		User            string
		UserLiteral     string
		PasswordLiteral string
	}{
		Role:            pgx.Identifier{RegistryRoleName}.Sanitize(),
		RoleLiteral:     quoteLiteral(RegistryRoleName),
		User:            pgx.Identifier{username}.Sanitize(),
		UserLiteral:     quoteLiteral(username),
		PasswordLiteral: quoteLiteral(password),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// quoteLiteral quotes s as a standard-conforming SQL string literal
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
