package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/toolbox-mcp/internal/config"
	"github.com/ironsheep/toolbox-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("toolbox-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("toolbox-mcp - MCP server with greeting, calculator, clock,")
			fmt.Println("image-generation and color tools")
			fmt.Println()
			fmt.Println("Usage: toolbox-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  TOOLBOX_MCP_LOG_LEVEL         debug|info|warn|error (default info)")
			fmt.Println("  TOOLBOX_MCP_DEFAULT_TIMEZONE  Default zone for current_time (default UTC)")
			fmt.Println("  IMAGE_API_URL                 Image-generation backend endpoint")
			fmt.Println("  IMAGE_API_TOKEN               Image-generation backend credential")
			fmt.Println("  IMAGE_API_TIMEOUT             Per-call backend timeout (default 60s)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is reserved for the protocol.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Debug("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// logLevel maps the config value onto a slog level. Config validation has
// already constrained the input.
func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
