package mcp

import (
	"context"
	"log/slog"

	"github.com/bidboard/bidboard/internal/domain/query"
	"github.com/bidboard/bidboard/internal/domain/theme"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryService defines the query-engine operations needed by MCP.
type QueryService interface {
	Import(ctx context.Context, wire []query.WireRecord) (int, error)
	Query(ctx context.Context, state query.FilterState, spec query.SortSpec, page int) (query.Page, error)
	SavePreset(ctx context.Context, name string, state query.FilterState) error
	LoadPreset(ctx context.Context, name string) (query.FilterState, error)
	DeletePreset(ctx context.Context, name string) error
	ListPresets(ctx context.Context) []string
	SetDefault(ctx context.Context, state query.FilterState) error
	DefaultFilter(ctx context.Context) (query.FilterState, bool)
}

// ThemeService defines the theme-engine operations needed by MCP.
type ThemeService interface {
	Current(ctx context.Context) (theme.ThemeColors, theme.DerivedTheme)
	Preview(colors theme.ThemeColors) (theme.DerivedTheme, error)
	Apply(ctx context.Context, colors theme.ThemeColors) (theme.DerivedTheme, error)
	Reset() (theme.ThemeColors, theme.DerivedTheme)
	Layout(ctx context.Context) theme.Layout
	SaveLayout(ctx context.Context, layout theme.Layout) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Query QueryService
	Theme ThemeService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "bidboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(sessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
