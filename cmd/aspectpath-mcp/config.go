package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
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
}

func LoadConfig(args []string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get cwd: %w", err)
	}

	flagSet := flag.NewFlagSet("aspectpath-mcp", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagUsername := flagSet.String("username", os.Getenv("ASPECTPATH_USERNAME"), "Minecraft username whose research pool to price against")
	flagFTPAddr := flagSet.String("ftp-addr", os.Getenv("ASPECTPATH_FTP_ADDR"), "game server FTP address (host:port)")
	flagFTPUser := flagSet.String("ftp-user", os.Getenv("ASPECTPATH_FTP_USER"), "FTP username")
	flagFTPPassword := flagSet.String("ftp-password", os.Getenv("ASPECTPATH_FTP_PASSWORD"), "FTP password")
	flagCache := flagSet.String("cache", envOrDefault("ASPECTPATH_CACHE_PATH", filepath.Join(cwd, "aspectpath.db")), "path to the local snapshot cache")
	flagOffline := flagSet.Bool("offline", false, "skip the FTP fetch and use the cached snapshot")
	flagSlack := flagSet.Int("slack", defaultSlack, "default length slack for find_paths")
	flagBudget := flagSet.Int("budget", defaultMaxExpansions, "per-query frontier expansion budget (0 = unbounded)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
			return Config{}, err
		}
		return Config{}, err
	}

	config := Config{
		Username:      *flagUsername,
		FTPAddr:       *flagFTPAddr,
		FTPUser:       *flagFTPUser,
		FTPPassword:   *flagFTPPassword,
		CachePath:     *flagCache,
		Offline:       *flagOffline,
		Slack:         *flagSlack,
		MaxExpansions: *flagBudget,
	}

	if config.Username == "" {
		return Config{}, errors.New("username is required (flag -username or ASPECTPATH_USERNAME)")
	}
	if !config.Offline && config.FTPAddr == "" {
		return Config{}, errors.New("ftp address is required unless -offline")
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
