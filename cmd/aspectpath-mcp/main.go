// Command aspectpath-mcp serves the path solver over the Model Context
// Protocol on stdio, for use from agent runtimes. Logs go to stderr;
// stdout carries the protocol.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thaumic/aspectpath/pkg/fetch"
	"github.com/thaumic/aspectpath/pkg/graph"
	"github.com/thaumic/aspectpath/pkg/inventory"
	"github.com/thaumic/aspectpath/pkg/mcp"
	"github.com/thaumic/aspectpath/pkg/solver"
	"github.com/thaumic/aspectpath/pkg/store"
)

func main() {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	blob, err := loadSnapshot(config)
	if err != nil {
		slog.Error("Failed to load player snapshot", "error", err, "username", config.Username)
		os.Exit(1)
	}

	inv, err := inventory.DecodeBytes(blob)
	if err != nil {
		slog.Error("Failed to decode player snapshot", "error", err, "username", config.Username)
		os.Exit(1)
	}

	g := graph.NewComposition()
	s := solver.New(g, inv, solver.WithMaxExpansions(config.MaxExpansions))

	if err := mcp.NewServer(s, g, config.Slack).Serve(); err != nil {
		slog.Error("MCP server exited", "error", err)
		os.Exit(1)
	}
}

func loadSnapshot(config Config) ([]byte, error) {
	cache, err := store.NewStore(config.CachePath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot cache: %w", err)
	}
	defer cache.Close()

	if config.Offline {
		blob, _, err := cache.Snapshot(config.Username)
		return blob, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := fetch.NewClient(config.FTPAddr, config.FTPUser, config.FTPPassword)
	blob, err := client.PlayerData(ctx, config.Username)
	if err != nil {
		return nil, err
	}
	if err := cache.PutSnapshot(config.Username, blob); err != nil {
		slog.Warn("Failed to cache snapshot", "error", err, "username", config.Username)
	}
	return blob, nil
}
