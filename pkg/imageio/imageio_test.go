package imageio

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/stickerframe/pkg/frame"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 50, B: 50, A: 255})
	require.NoError(t, imaging.Save(img, path))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 40, 40)
	writeTestPNG(t, filepath.Join(dir, "b.png"), 30, 20)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644))

	sources, err := NewLoader().LoadDirectory(dir)
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, 40, sources[0].Bounds().Dx())
	assert.Equal(t, 30, sources[1].Bounds().Dx())
}

func TestLoadDirectorySkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "good.png"), 10, 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0644))

	sources, err := NewLoader().LoadDirectory(dir)
	require.NoError(t, err, "a corrupt file must not fail the load")
	assert.Len(t, sources, 1)
}

func TestLoadDirectoryMissing(t *testing.T) {
	_, err := NewLoader().LoadDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadDirectoryEmpty(t *testing.T) {
	sources, err := NewLoader().LoadDirectory(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sources, "an empty directory is not a load error")
}

func TestSavePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := imaging.New(64, 48, color.NRGBA{G: 255, A: 255})

	require.NoError(t, Save(img, path, DefaultSaveOptions(frame.FormatPNG)))

	loaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 64, loaded.Bounds().Dx())
	assert.Equal(t, 48, loaded.Bounds().Dy())
}

func TestSaveJPEGFlattensAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	img := imaging.New(32, 32, color.NRGBA{}) // fully transparent

	opts := DefaultSaveOptions(frame.FormatJPEG)
	opts.Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	require.NoError(t, Save(img, path, opts))

	loaded, err := Open(path)
	require.NoError(t, err)

	r, g, b, _ := loaded.At(16, 16).RGBA()
	assert.Greater(t, r, uint32(0xf000), "transparent input should flatten to the background")
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	img := imaging.New(20, 20, color.NRGBA{B: 255, A: 255})

	require.NoError(t, Save(img, path, DefaultSaveOptions(frame.FormatWebP)))

	loaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.Bounds().Dx())
}

func TestSaveUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	img := imaging.New(8, 8, color.NRGBA{A: 255})

	err := Save(img, path, SaveOptions{Format: "bmp"})
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{R: 255, A: 128}) // half-transparent red

	flat := Flatten(img, color.NRGBA{R: 0, G: 0, B: 0})

	got := flat.NRGBAAt(2, 2)
	assert.Equal(t, uint8(255), got.A)
	// Red blended over black at about half strength.
	assert.InDelta(t, 128, int(got.R), 2)
	assert.Equal(t, uint8(0), got.G)
}
