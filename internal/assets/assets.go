// Package assets supplies the carousel images. Images are addressed by index and rendered into
// terminal cells using the upper half block, giving two vertical pixels per cell.
package assets

import (
	"bytes"
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // decoder
	_ "image/jpeg" // decoder
	_ "image/png"  // decoder
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/dyn-scroll/internal/cache"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	errAssetLoad   = errors.New("failed to load asset")
	errAssetDecode = errors.New("failed to decode asset")
)

// extensions are tried in order for each index.
var extensions = []string{".png", ".jpg", ".jpeg", ".gif"} //nolint:gochecknoglobals

// Provider is what the carousel needs from an image source.
type Provider interface {
	Count() int
	Name(index int) string
	Lines(index int, width int, height int) []string
}

// Source is one loaded image.
type Source struct {
	Index     int
	Name      string
	Path      string
	Size      int64
	Digest    string
	Generated bool
	Image     image.Image
}

// Gallery is the default Provider. Rendered images are memoised per size and optionally
// persisted to a cache.Cache.
type Gallery struct {
	sources  []Source
	cache    cache.Cache
	rendered map[cache.Key][]string
}

// Load reads count images from dir. Missing or broken images fall back to a generated image so
// the gallery always holds exactly count entries. An empty dir generates everything.
func Load(ctx context.Context, dir string, count int, renderCache cache.Cache) (*Gallery, error) {
	count = max(count, 1)
	if renderCache == nil {
		renderCache = cache.Noop{}
	}

	sources := make([]Source, count)
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(4)

	for index := range count {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if dir == "" {
				sources[index] = Generate(index, count)

				return nil
			}

			source, err := loadFile(dir, index)
			if err != nil {
				slog.Warn("Using generated image", slog.Int("index", index), slog.String("error", err.Error()))
				sources[index] = Generate(index, count)

				return nil
			}

			sources[index] = source

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Join(err, errAssetLoad)
	}

	return &Gallery{sources: sources, cache: renderCache, rendered: map[cache.Key][]string{}}, nil
}

func loadFile(dir string, index int) (Source, error) {
	for _, ext := range extensions {
		fullPath := filepath.Join(dir, strconv.Itoa(index)+ext)
		body, errRead := os.ReadFile(fullPath)
		if errRead != nil {
			if errors.Is(errRead, os.ErrNotExist) {
				continue
			}

			return Source{}, errors.Join(errRead, errAssetLoad)
		}

		img, _, errDecode := image.Decode(bytes.NewReader(body))
		if errDecode != nil {
			return Source{}, errors.Join(errDecode, errAssetDecode)
		}

		sum := sha256.Sum256(body)

		return Source{
			Index:  index,
			Name:   filepath.Base(fullPath),
			Path:   fullPath,
			Size:   int64(len(body)),
			Digest: hex.EncodeToString(sum[:16]),
			Image:  img,
		}, nil
	}

	return Source{}, errors.Join(fmt.Errorf("no image for index %d in %s", index, dir), errAssetLoad) //nolint:err113
}

func (g *Gallery) Count() int {
	return len(g.sources)
}

func (g *Gallery) Name(index int) string {
	if index < 0 || index >= len(g.sources) {
		return ""
	}

	return g.sources[index].Name
}

// Sources returns the loaded sources ordered by size, largest first.
func (g *Gallery) Sources() []Source {
	sorted := slices.Clone(g.sources)
	slices.SortStableFunc(sorted, func(a, b Source) int {
		return cmp.Compare(b.Size, a.Size)
	})

	return sorted
}

// Lines renders the image at index scaled to fill width x height cells.
func (g *Gallery) Lines(index int, width int, height int) []string {
	if index < 0 || index >= len(g.sources) || width <= 0 || height <= 0 {
		return nil
	}

	source := g.sources[index]
	key := cache.Key{
		Source: source.Digest + ":" + strconv.Itoa(int(lipgloss.ColorProfile())),
		Width:  width,
		Height: height,
	}

	if lines, found := g.rendered[key]; found {
		return lines
	}

	if !source.Generated {
		if body, err := g.cache.Get(key); err == nil {
			lines := strings.Split(string(body), "\n")
			if len(lines) == height {
				g.rendered[key] = lines

				return lines
			}
		}
	}

	lines := Render(source.Image, width, height)
	g.rendered[key] = lines

	if !source.Generated {
		if err := g.cache.Set(key, []byte(strings.Join(lines, "\n"))); err != nil {
			slog.Warn("Failed to cache render", slog.String("name", source.Name), slog.String("error", err.Error()))
		}
	}

	return lines
}
