// Package cache implements a very trivial filesystem cache for rendered images.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"
)

const (
	// How long until a entry is considered stale.
	maxCacheAge = time.Hour * 24 * 7
)

var (
	ErrCacheMiss = errors.New("cache miss error")
	errCacheSet  = errors.New("cache set error")
	errCacheDir  = errors.New("cache dir error")
)

// Key identifies one rendering of a source image at a specific cell size.
type Key struct {
	// Source is anything that changes when the image does, usually a content digest.
	Source string
	Width  int
	Height int
}

func (k Key) name() string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%dx%d", k.Source, k.Width, k.Height))

	return hex.EncodeToString(sum[:16])
}

type Cache interface {
	Get(key Key) ([]byte, error)
	Set(key Key, content []byte) error
}

// Filesystem implements the default filesystem based Cache interface.
type Filesystem struct {
	cacheDir string
	maxAge   time.Duration
}

func New(cachePath string) (Filesystem, error) {
	if err := os.MkdirAll(cachePath, 0o700); err != nil {
		slog.Error("Failed to make cache root", slog.String("error", err.Error()),
			slog.String("path", cachePath))

		return Filesystem{}, errors.Join(err, errCacheDir)
	}

	return Filesystem{cacheDir: cachePath, maxAge: maxCacheAge}, nil
}

// WithMaxAge returns a copy of the cache using a different staleness limit.
func (c Filesystem) WithMaxAge(age time.Duration) Filesystem {
	c.maxAge = age

	return c
}

func (c Filesystem) Set(key Key, content []byte) error {
	file, errFile := os.Create(path.Join(c.cacheDir, key.name()))
	if errFile != nil {
		return errors.Join(errFile, errCacheSet)
	}

	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close cache file", slog.String("error", err.Error()))
		}
	}(file)

	if _, err := file.Write(content); err != nil {
		return errors.Join(err, errCacheSet)
	}

	return nil
}

func (c Filesystem) Get(key Key) ([]byte, error) {
	fullPath := path.Join(c.cacheDir, key.name())
	file, errFile := os.Open(fullPath)
	if errFile != nil {
		return nil, errors.Join(errFile, ErrCacheMiss)
	}

	stat, errStat := file.Stat()
	if errStat != nil {
		if err := file.Close(); err != nil {
			return nil, errors.Join(errStat, err, ErrCacheMiss)
		}

		return nil, errors.Join(errStat, ErrCacheMiss)
	}

	if time.Since(stat.ModTime()) > c.maxAge {
		if err := file.Close(); err != nil {
			return nil, errors.Join(err, ErrCacheMiss)
		}

		if err := os.Remove(fullPath); err != nil {
			return nil, errors.Join(err, ErrCacheMiss)
		}

		return nil, ErrCacheMiss
	}

	body, errRead := io.ReadAll(file)
	if errRead != nil {
		if err := file.Close(); err != nil {
			return nil, errors.Join(err, ErrCacheMiss)
		}

		return nil, errors.Join(errRead, ErrCacheMiss)
	}

	if err := file.Close(); err != nil {
		return nil, errors.Join(err, ErrCacheMiss)
	}

	return body, nil
}

// Noop never stores anything. Used when caching is disabled.
type Noop struct{}

func (Noop) Get(_ Key) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (Noop) Set(_ Key, _ []byte) error {
	return nil
}
