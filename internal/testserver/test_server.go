// Package testserver boots a full bidboard server over an in-memory
// database for functional tests.
package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/bidboard/bidboard/internal/domain/theme"
	"github.com/bidboard/bidboard/internal/mcp"
	"github.com/bidboard/bidboard/internal/sqlite"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Query  *query.Service
	Theme  *theme.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	projectRepo := sqlite.NewProjectRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	querySvc := query.NewService(projectRepo, settingsRepo, nil, 0)
	themeSvc := theme.NewService(settingsRepo, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Query: querySvc,
			Theme: themeSvc,
		},
	})

	handler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.Handle("/mcp/", handler)

	server := httptest.NewServer(mux)

	ts := &TestServer{
		Server: server,
		DB:     db,
		Query:  querySvc,
		Theme:  themeSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
