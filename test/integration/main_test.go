package integration_test

import (
	"os"
	"sync"
	"testing"

	"wagenmarkt_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first
// use.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("DATABASE_URL", "file::memory:?cache=shared")
		os.Setenv("DATABASE_DRIVER", "sqlite")
		os.Setenv("JWT_SECRET", "integration_test_secret_key_12345")

		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
