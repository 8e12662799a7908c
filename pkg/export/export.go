// Package export publishes rendered snapshots.
//
// A Publisher stores a snapshot body under a key. FilePublisher writes
// into a local directory; S3Publisher puts objects into an S3 bucket (or
// any S3-compatible endpoint).
//
//	pub, err := export.FromConfig(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	err = pub.Publish(ctx, "counter.html", markup)
package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/vango-dev/weave/internal/config"
	werrors "github.com/vango-dev/weave/internal/errors"
)

// ErrInvalidKey is returned for keys that are empty or escape the
// publisher's root.
var ErrInvalidKey = errors.New("export: invalid key")

// Publisher stores snapshot bodies.
type Publisher interface {
	// Publish stores body under key, replacing any previous body.
	Publish(ctx context.Context, key string, body []byte) error

	// Location describes where key is stored, for display.
	Location(key string) string
}

// FromConfig returns an S3Publisher when a bucket is configured and a
// FilePublisher under the config's export directory otherwise.
func FromConfig(ctx context.Context, cfg *config.Config) (Publisher, error) {
	if cfg.Export.Bucket != "" {
		return NewS3Publisher(ctx, S3Options{
			Bucket:   cfg.Export.Bucket,
			Prefix:   cfg.Export.Prefix,
			Region:   cfg.Export.Region,
			Endpoint: cfg.Export.Endpoint,
		})
	}
	return NewFilePublisher(cfg.ExportPath()), nil
}

// FilePublisher writes snapshots as files under Dir.
type FilePublisher struct {
	Dir string
}

// NewFilePublisher creates a publisher rooted at dir.
func NewFilePublisher(dir string) *FilePublisher {
	return &FilePublisher{Dir: dir}
}

// Publish writes body to Dir/key, creating parent directories.
func (p *FilePublisher) Publish(ctx context.Context, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	path := p.Location(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failed(key, err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return failed(key, err)
	}
	return nil
}

// Location returns the file path for key.
func (p *FilePublisher) Location(key string) string {
	return filepath.Join(p.Dir, filepath.FromSlash(key))
}

func checkKey(key string) error {
	if key == "" || !filepath.IsLocal(filepath.FromSlash(key)) {
		return werrors.New("E143").WithDetailf("invalid key %q", key).Wrap(ErrInvalidKey)
	}
	return nil
}

func failed(key string, err error) error {
	return werrors.New("E143").WithDetailf("publish %s: %v", key, err).Wrap(err)
}
