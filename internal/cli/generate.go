package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/menta2k/stickerframe"
	"github.com/menta2k/stickerframe/internal/config"
	"github.com/menta2k/stickerframe/internal/utils"
	"github.com/menta2k/stickerframe/pkg/frame"
	"github.com/menta2k/stickerframe/pkg/imageio"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		stickerDir string
		outPath    string
		template   string
		output     string

		density  float64
		minSize  int
		maxSize  int
		border   int
		overlap  int

		allowOverlap  bool
		rotation      bool
		randomOpacity bool
		minOpacity    float64
		maxOpacity    float64

		sides        string
		algorithm    string
		gradient     bool
		gradientType string
		format       string
		missPolicy   string

		attempts int
		seed     int64
		quality  int
		lossless bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sticker frame image",
		Long:  `Generate loads every sticker image from a directory, scatters randomized copies around the template border using the selected placement algorithm, and writes the composited frame.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Explicit flags win over the config file.
			f := cmd.Flags()
			if f.Changed("stickers") {
				cfg.Frame.StickerDir = stickerDir
			}
			if f.Changed("out") {
				cfg.Output.Path = outPath
			}
			if f.Changed("template") {
				sz, err := parseSize(template)
				if err != nil {
					return fmt.Errorf("invalid --template: %w", err)
				}
				cfg.Frame.TemplateSize = sz
			}
			if f.Changed("output") {
				sz, err := parseSize(output)
				if err != nil {
					return fmt.Errorf("invalid --output: %w", err)
				}
				cfg.Frame.OutputSize = sz
			}
			if f.Changed("density") {
				cfg.Frame.Density = density
			}
			if f.Changed("min-size") {
				cfg.Frame.MinStickerSize = minSize
			}
			if f.Changed("max-size") {
				cfg.Frame.MaxStickerSize = maxSize
			}
			if f.Changed("border") {
				cfg.Frame.BorderWidth = border
			}
			if f.Changed("overlap") {
				cfg.Frame.BorderOverlap = overlap
			}
			if f.Changed("allow-overlap") {
				cfg.Frame.OverlapAllowed = allowOverlap
			}
			if f.Changed("rotation") {
				cfg.Frame.RandomRotation = rotation
			}
			if f.Changed("random-opacity") {
				cfg.Frame.RandomOpacity = randomOpacity
			}
			if f.Changed("min-opacity") {
				cfg.Frame.MinOpacity = minOpacity
			}
			if f.Changed("max-opacity") {
				cfg.Frame.MaxOpacity = maxOpacity
			}
			if f.Changed("sides") {
				cfg.Frame.BorderSides = frame.Side(sides)
			}
			if f.Changed("algorithm") {
				cfg.Frame.Algorithm = frame.Variant(algorithm)
			}
			if f.Changed("gradient") {
				cfg.Frame.GradientDensity = gradient
			}
			if f.Changed("gradient-type") {
				cfg.Frame.GradientType = frame.GradientType(gradientType)
			}
			if f.Changed("miss-policy") {
				cfg.Frame.MissPolicy = frame.MissPolicy(missPolicy)
			}
			if f.Changed("quality") {
				cfg.Output.Quality = quality
			}
			if f.Changed("lossless") {
				cfg.Output.Lossless = lossless
			}
			switch {
			case f.Changed("format"):
				cfg.Frame.OutputFormat = frame.Format(format)
			default:
				// Infer the encoding from the output extension.
				switch utils.GetFileExtension(cfg.Output.Path) {
				case "jpg", "jpeg":
					cfg.Frame.OutputFormat = frame.FormatJPEG
				case "webp":
					cfg.Frame.OutputFormat = frame.FormatWebP
				case "png":
					cfg.Frame.OutputFormat = frame.FormatPNG
				}
			}

			if cfg.Frame.StickerDir == "" {
				return fmt.Errorf("no sticker directory: pass --stickers or set frame.sticker_dir in the config file")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
				logger.Debug("using fixed seed", "seed", seed)
			}

			gen := stickerframe.NewWithRand(cfg.Frame, rng)
			gen.SetLogger(logger)

			count, err := gen.LoadStickers()
			if err != nil {
				return err
			}
			logger.Info("loaded stickers", "count", count, "dir", cfg.Frame.StickerDir)

			start := time.Now()
			result, err := gen.Generate(cmd.Context(), attempts)
			if err != nil {
				return err
			}
			logger.Info("generated frame",
				"placed", len(result.Placed),
				"attempts", result.Attempts,
				"elapsed", time.Since(start).Round(time.Millisecond))
			if len(result.Placed) == 0 {
				logger.Warn("no stickers were placed; writing the bare canvas")
			}

			opts := imageio.SaveOptions{
				Format:     cfg.Frame.OutputFormat,
				Quality:    cfg.Output.Quality,
				Lossless:   cfg.Output.Lossless,
				Background: cfg.Frame.Background.NRGBA(),
			}
			if err := imageio.Save(result.Image, cfg.Output.Path, opts); err != nil {
				return err
			}
			logger.Info("wrote frame", "path", cfg.Output.Path, "format", cfg.Frame.OutputFormat)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (JSON)")
	cmd.Flags().StringVarP(&stickerDir, "stickers", "s", "", "directory of sticker source images (png/jpg/webp)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "frame.png", "output image path")
	cmd.Flags().StringVar(&template, "template", "1200x800", "template canvas size, WxH")
	cmd.Flags().StringVar(&output, "output", "1920x1080", "final output size, WxH")
	cmd.Flags().Float64VarP(&density, "density", "d", 0.6, "probability a candidate position is used (0-1)")
	cmd.Flags().IntVar(&minSize, "min-size", 40, "minimum sticker long-edge size (px)")
	cmd.Flags().IntVar(&maxSize, "max-size", 150, "maximum sticker long-edge size (px)")
	cmd.Flags().IntVar(&border, "border", 100, "border band width (px)")
	cmd.Flags().IntVar(&overlap, "overlap", 20, "allowed excursion beyond the template edge (px)")
	cmd.Flags().BoolVar(&allowOverlap, "allow-overlap", true, "let stickers overlap each other")
	cmd.Flags().BoolVar(&rotation, "rotation", true, "randomly rotate stickers")
	cmd.Flags().BoolVar(&randomOpacity, "random-opacity", false, "randomize sticker opacity")
	cmd.Flags().Float64Var(&minOpacity, "min-opacity", 0.7, "minimum random opacity")
	cmd.Flags().Float64Var(&maxOpacity, "max-opacity", 1.0, "maximum random opacity")
	cmd.Flags().StringVar(&sides, "sides", "all", "active sides: all|top|bottom|left|right|top-bottom|left-right|corners")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "base", "placement algorithm: base|uniform|gradient|corner")
	cmd.Flags().BoolVar(&gradient, "gradient", false, "enable gradient density weighting")
	cmd.Flags().StringVar(&gradientType, "gradient-type", "linear", "gradient density mode: linear|radial")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output encoding: png|jpg|webp (default: from --out extension)")
	cmd.Flags().StringVar(&missPolicy, "miss-policy", "halt-on-miss", "on failed placement search: halt-on-miss|continue-on-miss")
	cmd.Flags().IntVar(&attempts, "attempts", 500, "maximum placement attempts")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: time-based)")
	cmd.Flags().IntVarP(&quality, "quality", "q", 90, "JPEG/WebP quality (1-100)")
	cmd.Flags().BoolVar(&lossless, "lossless", false, "WebP lossless mode")

	return cmd
}

// parseSize parses a "WxH" dimension string.
func parseSize(s string) (frame.Size, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return frame.Size{}, fmt.Errorf("expected WxH, got %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return frame.Size{}, fmt.Errorf("bad width in %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return frame.Size{}, fmt.Errorf("bad height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return frame.Size{}, fmt.Errorf("dimensions must be positive in %q", s)
	}
	return frame.Size{Width: w, Height: h}, nil
}
