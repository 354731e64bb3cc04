//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgImage    = "postgres:17"
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// postgresServer is one throwaway cluster per test binary. Every suite in
// the process gets its own database inside it.
type postgresServer struct {
	Host string
	Port nat.Port
}

func (p postgresServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, p.Host, p.Port.Port(), database)
}

var (
	serverOnce sync.Once
	server     postgresServer
	serverErr  error
)

func sharedPostgres(t *testing.T) postgresServer {
	t.Helper()
	serverOnce.Do(func() {
		server, serverErr = startPostgres()
	})
	require.NoError(t, serverErr, "start postgres container")
	return server
}

// startPostgres trades durability for speed: data lives on tmpfs and every
// fsync knob is off. The container outlives any single test; ryuk reaps it
// when the binary exits.
func startPostgres() (postgresServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
				"TZ":                "Asia/Kolkata",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return postgresServer{Host: host, Port: port}.dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "jewelry-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return postgresServer{}, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return postgresServer{}, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return postgresServer{}, err
	}
	return postgresServer{Host: host, Port: port}, nil
}
