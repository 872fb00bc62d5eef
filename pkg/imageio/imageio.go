// Package imageio loads sticker sources from a directory and encodes
// generated frames to disk.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/stickerframe/internal/utils"
	"github.com/menta2k/stickerframe/pkg/frame"
)

// Loader reads sticker source images from disk. Files that fail to decode
// are skipped with a warning rather than failing the load.
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader that warns through the default logger.
func NewLoader() *Loader {
	return &Loader{logger: log.Default()}
}

// NewLoaderWithLogger creates a loader that warns through the given logger.
func NewLoaderWithLogger(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{logger: logger}
}

// LoadDirectory decodes every supported image file directly inside dir into
// an NRGBA bitmap, in lexical filename order. An unreadable or corrupt file
// is skipped with a warning. The returned slice may be empty; the compositor
// turns that into its no-sources failure.
func (l *Loader) LoadDirectory(dir string) ([]*image.NRGBA, error) {
	if !utils.DirExists(dir) {
		return nil, fmt.Errorf("sticker directory not found: %s", dir)
	}

	files, err := utils.ListImageFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sticker directory: %w", err)
	}

	var sources []*image.NRGBA
	for _, file := range files {
		img, err := Open(file)
		if err != nil {
			l.logger.Warn("skipping unreadable sticker", "file", file, "err", err)
			continue
		}
		sources = append(sources, imaging.Clone(img))
	}

	return sources, nil
}

// Open decodes a single image file with WebP support.
func Open(path string) (image.Image, error) {
	// Registered decoders cover png/jpeg and x/image webp.
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode for encoder variants the registered
	// decoder rejects.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err == nil {
			if img, _, err := image.Decode(f); err == nil {
				return img, nil
			}
		}
	} else {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// SaveOptions controls output encoding.
type SaveOptions struct {
	Format   frame.Format
	Quality  int  // JPEG/WebP quality (1-100)
	Lossless bool // WebP only
	// Background fills behind transparent pixels for encodings without an
	// alpha channel.
	Background color.NRGBA
}

// DefaultSaveOptions returns the stock encoding options for a format.
func DefaultSaveOptions(format frame.Format) SaveOptions {
	return SaveOptions{
		Format:     format,
		Quality:    90,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Save encodes an image to path according to the options.
func Save(img image.Image, path string, opts SaveOptions) error {
	switch opts.Format {
	case frame.FormatWebP:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)})
	case frame.FormatPNG:
		return imaging.Save(img, path)
	case frame.FormatJPEG:
		return imaging.Save(Flatten(img, opts.Background), path, imaging.JPEGQuality(opts.Quality))
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// Flatten composites an image over an opaque background, dropping alpha.
func Flatten(img image.Image, background color.NRGBA) *image.NRGBA {
	background.A = 255
	b := img.Bounds()
	out := imaging.New(b.Dx(), b.Dy(), background)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
