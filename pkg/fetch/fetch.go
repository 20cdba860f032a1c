// Package fetch retrieves player-data blobs from a game server over FTP.
// It is transport glue only: it hands back raw bytes and leaves decoding
// to the inventory package.
package fetch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jlaffaye/ftp"
)

const (
	// playerDataPath templates where servers keep per-player research data.
	playerDataPath = "/World/playerdata/%s.%s"

	defaultExtension = "thaum"
	defaultTimeout   = 15 * time.Second
)

// Client fetches player data from one FTP endpoint.
type Client struct {
	addr      string
	user      string
	password  string
	extension string
	timeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithExtension overrides the player-data file extension.
func WithExtension(ext string) Option {
	return func(c *Client) { c.extension = ext }
}

// WithTimeout overrides the dial timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient builds a client for the given FTP address and credentials.
// No connection is made until PlayerData is called.
func NewClient(addr, user, password string, opts ...Option) *Client {
	c := &Client{
		addr:      addr,
		user:      user,
		password:  password,
		extension: defaultExtension,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PlayerData dials the server, logs in, and retrieves the raw
// (gzip-compressed) player-data blob for username. One connection per
// call; the tool fetches once per run.
func (c *Client) PlayerData(ctx context.Context, username string) ([]byte, error) {
	conn, err := ftp.Dial(c.addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(c.timeout))
	if err != nil {
		return nil, fmt.Errorf("fetch: dialing %s: %w", c.addr, err)
	}
	defer conn.Quit()

	if err := conn.Login(c.user, c.password); err != nil {
		return nil, fmt.Errorf("fetch: logging in as %s: %w", c.user, err)
	}

	path := fmt.Sprintf(playerDataPath, username, c.extension)
	resp, err := conn.Retr(path)
	if err != nil {
		return nil, fmt.Errorf("fetch: retrieving %s: %w", path, err)
	}
	defer resp.Close()

	blob, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("fetch: reading %s: %w", path, err)
	}
	return blob, nil
}
