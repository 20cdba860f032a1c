package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultSlack         = 3
	defaultMaxExpansions = 5_000_000
)

type Config struct {
	Username      string
	FTPAddr       string
	FTPUser       string
	FTPPassword   string
	CachePath     string
	Offline       bool
	Slack         int
	MaxExpansions int
	LogLevel      slog.Level
}

func LoadConfig(args []string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get cwd: %w", err)
	}

	defaultCachePath := filepath.Join(cwd, "aspectpath.db")

	username := os.Getenv("ASPECTPATH_USERNAME")
	ftpAddr := os.Getenv("ASPECTPATH_FTP_ADDR")
	ftpUser := os.Getenv("ASPECTPATH_FTP_USER")
	ftpPassword := os.Getenv("ASPECTPATH_FTP_PASSWORD")
	cachePath := envOrDefault("ASPECTPATH_CACHE_PATH", defaultCachePath)
	slack := defaultSlack
	if slackEnv := os.Getenv("ASPECTPATH_SLACK"); slackEnv != "" {
		parsed, err := strconv.Atoi(slackEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ASPECTPATH_SLACK: %w", err)
		}
		slack = parsed
	}

	flagSet := flag.NewFlagSet("aspectpath", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagUsername := flagSet.String("username", username, "Minecraft username whose research pool to price against")
	flagFTPAddr := flagSet.String("ftp-addr", ftpAddr, "game server FTP address (host:port)")
	flagFTPUser := flagSet.String("ftp-user", ftpUser, "FTP username")
	flagFTPPassword := flagSet.String("ftp-password", ftpPassword, "FTP password")
	flagCache := flagSet.String("cache", cachePath, "path to the local snapshot cache")
	flagOffline := flagSet.Bool("offline", false, "skip the FTP fetch and use the cached snapshot")
	flagSlack := flagSet.Int("slack", slack, "how many longer lengths to probe for cheaper paths")
	flagBudget := flagSet.Int("budget", defaultMaxExpansions, "per-query frontier expansion budget (0 = unbounded)")
	flagLogLevel := flagSet.String("log-level", envOrDefault("ASPECTPATH_LOG_LEVEL", "info"), "log level: debug|info|warn|error")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
			return Config{}, err
		}
		return Config{}, err
	}

	level, err := parseLogLevel(*flagLogLevel)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Username:      *flagUsername,
		FTPAddr:       *flagFTPAddr,
		FTPUser:       *flagFTPUser,
		FTPPassword:   *flagFTPPassword,
		CachePath:     resolvePath(*flagCache, cwd),
		Offline:       *flagOffline,
		Slack:         *flagSlack,
		MaxExpansions: *flagBudget,
		LogLevel:      level,
	}

	if config.Username == "" {
		return Config{}, errors.New("username is required (flag -username or ASPECTPATH_USERNAME)")
	}
	if config.Slack < 1 {
		return Config{}, errors.New("slack must be at least 1")
	}
	if !config.Offline {
		if config.FTPAddr == "" {
			return Config{}, errors.New("ftp address is required unless -offline (flag -ftp-addr or ASPECTPATH_FTP_ADDR)")
		}
		if config.FTPUser == "" {
			return Config{}, errors.New("ftp user is required unless -offline (flag -ftp-user or ASPECTPATH_FTP_USER)")
		}
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path, cwd string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
