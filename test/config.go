package test

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
)

// Postgres test database configuration
const (
	PostgresUser     = "financemail"
	PostgresPassword = "financemail_pwd"
	PostgresDB       = "financemail_test"
	PostgresHost     = "localhost"
)

// PostgresDSN returns the data source name for Postgres connection with dynamic port
func PostgresDSN(port string) string {
	return "postgres://" + PostgresUser + ":" + PostgresPassword + "@" + PostgresHost + ":" + port + "/" + PostgresDB + "?sslmode=disable"
}

// PostgresDockerEnv returns the environment variables for Postgres Docker container
func PostgresDockerEnv() []string {
	return []string{
		"POSTGRES_USER=" + PostgresUser,
		"POSTGRES_PASSWORD=" + PostgresPassword,
		"POSTGRES_DB=" + PostgresDB,
	}
}

// SetupPostgresDB runs a throwaway Postgres container and waits until it
// accepts connections. Callers own purging the returned resource.
func SetupPostgresDB(t *testing.T, pool *dockertest.Pool) (*sql.DB, string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env:        PostgresDockerEnv(),
	})
	if err != nil {
		t.Fatalf("Could not run postgres from docker: %s", err)
		return nil, "", nil
	}

	// Get the dynamically assigned port
	port := resource.GetPort("5432/tcp")

	var db *sql.DB
	// Retry connection until Docker container is ready
	if err = pool.Retry(func() error {
		var err error
		db, err = sql.Open("pgx", PostgresDSN(port))
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("Could not connect to postgres: %s", err)
	}

	return db, port, resource
}

func ExecFile(t *testing.T, db *sql.DB, file string) {
	if t.Failed() {
		return
	}
	fileContent, err := os.ReadFile(file)
	if err != nil {
		t.Errorf("cannot read sql file %v", err)
		return
	}
	sql := string(fileContent)
	_, err = db.Exec(sql)
	if err != nil {
		t.Errorf("cannot execute sql file %v", err)
		return
	}
}
