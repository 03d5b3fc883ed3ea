package client

import "time"

const (
	DefaultTimeout = 5 * time.Second
	DefaultBuffer  = 1024
)

// Config carries the operator-tunable knobs for a Client. The zero value
// uses the defaults.
type Config struct {
	// Timeout bounds the connect and the read of one exchange.
	Timeout time.Duration
	// Buffer is the size in bytes of each read call; a chunk shorter than
	// this ends the response.
	Buffer int
	// Verbose routes the package debug log to stderr.
	Verbose bool
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Buffer <= 0 {
		c.Buffer = DefaultBuffer
	}
	return c
}
