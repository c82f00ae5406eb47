//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAuditlensWithMySQL tests the auditlens CLI with a MySQL report backend.
func TestAuditlensWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "auditlens",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/auditlens?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("AUDITLENS_REPORT_BACKEND", "mysql")
	_ = os.Setenv("AUDITLENS_REPORT_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("AUDITLENS_REPORT_BACKEND") }()
	defer func() { _ = os.Unsetenv("AUDITLENS_REPORT_DB_CONNECT") }()

	runBackendCommands(t)
}

// TestAuditlensWithPostgres tests the auditlens CLI with a PostgreSQL report backend.
func TestAuditlensWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("AUDITLENS_REPORT_BACKEND", "postgresql")
	_ = os.Setenv("AUDITLENS_REPORT_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("AUDITLENS_REPORT_BACKEND") }()
	defer func() { _ = os.Unsetenv("AUDITLENS_REPORT_DB_CONNECT") }()

	runBackendCommands(t)
}

// runBackendCommands exercises the store lifecycle against the configured backend.
func runBackendCommands(t *testing.T) {
	fixture := writeFixtureProgram(t)

	// Clear any stale rows from previous runs
	err := runAuditlensCommand(t, "report", "clear")
	require.NoError(t, err)

	// Run a scan so a report lands in the store
	err = runAuditlensCommand(t, "scan", fixture)
	require.NoError(t, err)

	// Check the store sees the run
	err = runAuditlensCommand(t, "report", "status")
	require.NoError(t, err)

	// Apply schema migrations on top of the populated store
	err = runAuditlensCommand(t, "report", "migrate")
	require.NoError(t, err)
}

func runAuditlensCommand(t *testing.T, args ...string) error {
	binaryPath := getAuditlensBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
