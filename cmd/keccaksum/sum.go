package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Giulio2002/keccak"
)

const stdinName = "-"

type hashed struct {
	digest []byte
	n      int64
}

type result struct {
	name   string
	digest []byte
}

func (r result) format(prefix bool) string {
	d := hex.EncodeToString(r.digest)
	if prefix {
		d = "0x" + d
	}
	return d + "  " + r.name
}

// hashAll hashes args with at most cfg.Jobs in flight, one Hasher per
// goroutine. Results keep the order of args. Stdin is read once and every
// "-" argument shares its digest.
func hashAll(ctx context.Context, logger *zap.Logger, cfg Config, args []string, stdin io.Reader) ([]result, error) {
	results := make([]result, len(args))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	stdinDigest := sync.OnceValues(func() (hashed, error) {
		d, n, err := hashReader(ctx, cfg, stdin)
		return hashed{digest: d, n: n}, err
	})
	for i, arg := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			digest, n, err := hashOne(ctx, cfg, arg, stdinDigest)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			logger.Debug("hashed", zap.String("input", arg), zap.Int64("bytes", n), zap.Duration("elapsed", time.Since(start)))
			results[i] = result{name: arg, digest: digest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func hashOne(ctx context.Context, cfg Config, arg string, stdinDigest func() (hashed, error)) ([]byte, int64, error) {
	switch {
	case cfg.Text:
		return hashText(cfg, arg)
	case cfg.Hex:
		return hashHex(cfg, arg)
	case arg == stdinName:
		h, err := stdinDigest()
		return h.digest, h.n, err
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		return hashReader(ctx, cfg, f)
	}
}

func hashText(cfg Config, s string) ([]byte, int64, error) {
	enc, err := keccak.LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Size == keccak.Size {
		d, err := keccak.FromStringEncoding(s, enc)
		return d[:], int64(len(s)), err
	}
	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, 0, err
	}
	d, err := keccak.ComputeHash(b, cfg.Size)
	return d, int64(len(b)), err
}

func hashHex(cfg Config, s string) ([]byte, int64, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if cfg.Size == keccak.Size {
		d, err := keccak.FromHex(s)
		return d[:], int64(len(s) / 2), err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", keccak.ErrInvalidHex, err)
	}
	d, err := keccak.ComputeHash(b, cfg.Size)
	return d, int64(len(b)), err
}

// hashReader streams r through a Hasher using a cfg.ReadBuffer sized buffer.
func hashReader(ctx context.Context, cfg Config, r io.Reader) ([]byte, int64, error) {
	h, err := keccak.New(cfg.Size)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, cfg.ReadBuffer.Bytes())
	n, err := io.CopyBuffer(h, &ctxReader{ctx: ctx, r: r}, buf)
	if err != nil {
		return nil, n, err
	}
	return h.Digest(), n, nil
}

// ctxReader stops reading once ctx is done. It also hides any WriterTo on
// the underlying reader so io.CopyBuffer uses the configured buffer.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
