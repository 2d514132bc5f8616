package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/c2h5oh/datasize"
	"github.com/pelletier/go-toml/v2"

	"github.com/Giulio2002/keccak"
)

// Config controls how keccaksum hashes its inputs. It can be loaded from a
// TOML file; flags set on the command line take precedence.
type Config struct {
	Size       int               `toml:"size"`
	Encoding   string            `toml:"encoding"`
	Prefix     bool              `toml:"prefix"`
	Jobs       int               `toml:"jobs"`
	ReadBuffer datasize.ByteSize `toml:"read_buffer"`

	// Input mode, command line only.
	Text bool `toml:"-"`
	Hex  bool `toml:"-"`
}

// maxReadBuffer caps --read-buffer; one buffer is allocated per job.
const maxReadBuffer = 256 * datasize.MB

// DefaultConfig returns the settings used when neither a config file nor
// flags override them.
func DefaultConfig() Config {
	return Config{
		Size:       keccak.Size,
		Encoding:   "utf-8",
		Jobs:       runtime.NumCPU(),
		ReadBuffer: 64 * datasize.KB,
	}
}

// LoadConfig decodes the TOML file at path over cfg. Unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first setting keccaksum cannot run with.
func (c *Config) Validate() error {
	if !keccak.Supported(c.Size) {
		return fmt.Errorf("unsupported digest size %d", c.Size)
	}
	if _, err := keccak.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.ReadBuffer == 0 {
		return errors.New("read buffer must not be empty")
	}
	if c.ReadBuffer > maxReadBuffer {
		return fmt.Errorf("read buffer %s exceeds %s", c.ReadBuffer, maxReadBuffer)
	}
	if c.Text && c.Hex {
		return errors.New("--string and --hex are mutually exclusive")
	}
	return nil
}
