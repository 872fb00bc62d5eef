package cli

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/menta2k/stickerframe/internal/utils"
	"github.com/menta2k/stickerframe/pkg/frame"
	"github.com/menta2k/stickerframe/pkg/imageio"
)

// samplePalette are the fill colors the sample painter cycles through.
var samplePalette = []color.NRGBA{
	{R: 255, G: 99, B: 71, A: 255},
	{R: 255, G: 200, B: 0, A: 255},
	{R: 60, G: 179, B: 113, A: 255},
	{R: 65, G: 105, B: 225, A: 255},
	{R: 186, G: 85, B: 211, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
}

func newSamplesCmd() *cobra.Command {
	var (
		outDir string
		count  int
		size   int
	)

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Paint a set of simple test stickers",
		Long:  `Samples writes a batch of colored shape stickers (circle, ring, diamond, star) as transparent PNGs, so the generator can be tried without hunting for sticker assets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if size < 8 {
				return fmt.Errorf("size must be at least 8px, got %d", size)
			}
			if err := utils.EnsureDir(outDir); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			painters := []func(*image.NRGBA, color.NRGBA){
				paintCircle, paintRing, paintDiamond, paintStar,
			}

			for i := 0; i < count; i++ {
				img := imaging.New(size, size, color.NRGBA{})
				painters[i%len(painters)](img, samplePalette[i%len(samplePalette)])

				path := utils.GenerateOutputFilename(outDir, fmt.Sprintf("sticker_%02d", i+1), string(frame.FormatPNG))
				if err := imageio.Save(img, path, imageio.DefaultSaveOptions(frame.FormatPNG)); err != nil {
					return fmt.Errorf("failed to save %s: %w", path, err)
				}
				logger.Debug("wrote sample sticker", "path", path)
			}

			logger.Info("wrote sample stickers", "count", count, "dir", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "test_stickers", "output directory")
	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of stickers to paint")
	cmd.Flags().IntVar(&size, "size", 120, "sticker edge size (px)")

	return cmd
}

func paintCircle(img *image.NRGBA, fill color.NRGBA) {
	paintPolar(img, fill, func(radius, _ float64) bool {
		return radius <= 0.45
	})
}

func paintRing(img *image.NRGBA, fill color.NRGBA) {
	paintPolar(img, fill, func(radius, _ float64) bool {
		return radius >= 0.28 && radius <= 0.45
	})
}

func paintDiamond(img *image.NRGBA, fill color.NRGBA) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	r := 0.45 * float64(min(b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if math.Abs(float64(x)-cx)+math.Abs(float64(y)-cy) <= r {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
}

func paintStar(img *image.NRGBA, fill color.NRGBA) {
	// Five spikes: the fill radius oscillates with the angle.
	paintPolar(img, fill, func(radius, angle float64) bool {
		threshold := 0.2 + 0.25*(math.Cos(5*angle)+1)/2
		return radius <= threshold
	})
}

// paintPolar fills every pixel whose normalized polar coordinates satisfy
// inside. The radius is normalized so 0.5 reaches the nearest edge.
func paintPolar(img *image.NRGBA, fill color.NRGBA, inside func(radius, angle float64) bool) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	scale := float64(min(b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			radius := math.Hypot(dx, dy) / scale
			angle := math.Atan2(dy, dx)
			if inside(radius, angle) {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
}
