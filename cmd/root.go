package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/junkpiano/resizer/internal/encoder"
	"github.com/junkpiano/resizer/internal/fit"
	"github.com/junkpiano/resizer/internal/hasher"
	"github.com/junkpiano/resizer/internal/imageio"
	"github.com/junkpiano/resizer/internal/report"
)

var (
	version = "0.1.0"
	verbose bool
)

var (
	flagTargetKB   int64
	flagFormat     string
	flagMaxWidth   int
	flagMaxHeight  int
	flagMinQuality int
	flagMaxQuality int
	flagMaxRounds  int
	flagPNGLevel   int
	flagReport     string
)

var rootCmd = &cobra.Command{
	Use:   "resizer <input> <output>",
	Short: "Compress an image to be <= target size (KB)",
	Long: `resizer — compresses a raster image so the encoded file stays within a
caller-specified size budget, keeping as much quality (lossy formats)
or resolution (PNG) as the budget allows.

Runs a binary search over encoding quality at each resolution, and
downscales by 10% between rounds when even minimum quality is too
large. An output file is always written: a run that cannot reach the
target finishes with a warning, not an error.`,
	Args:         cobra.ExactArgs(2),
	RunE:         runRoot,
	Version:      version,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"resizer %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))

	rootCmd.Flags().Int64Var(&flagTargetKB, "target-kb", 0, "target size in KB (upper bound)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "webp", "output format: jpeg, webp, or png")
	rootCmd.Flags().IntVar(&flagMaxWidth, "max-width", 0, "optional max width (0 = unconstrained)")
	rootCmd.Flags().IntVar(&flagMaxHeight, "max-height", 0, "optional max height (0 = unconstrained)")
	rootCmd.Flags().IntVar(&flagMinQuality, "min-quality", 30, "min quality (1-100); if still too big, the tool downscales")
	rootCmd.Flags().IntVar(&flagMaxQuality, "max-quality", 95, "max quality (1-100)")
	rootCmd.Flags().IntVar(&flagMaxRounds, "max-downscale-rounds", 10, "downscale rounds to attempt if min quality is still too large")
	rootCmd.Flags().IntVar(&flagPNGLevel, "png-compression-level", 6, "PNG compression level (0-9, higher = slower but smaller)")
	rootCmd.Flags().StringVar(&flagReport, "report", "", "write a JSON run report to this path")
	rootCmd.MarkFlagRequired("target-kb")
}

func runRoot(_ *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if flagTargetKB <= 0 {
		return fmt.Errorf("--target-kb must be positive, got %d", flagTargetKB)
	}
	targetBytes := flagTargetKB * 1024

	enc, err := encoder.ForFormat(flagFormat)
	if err != nil {
		return err
	}

	img, srcFormat, err := imageio.Load(input)
	if err != nil {
		return err
	}
	origBounds := img.Bounds()
	logVerbose("decoded %s: %dx%d %s (alpha=%v)",
		input, origBounds.Dx(), origBounds.Dy(), srcFormat, imageio.HasAlpha(img))

	img = fit.ClampDimensions(img, flagMaxWidth, flagMaxHeight)
	if b := img.Bounds(); b.Dx() != origBounds.Dx() || b.Dy() != origBounds.Dy() {
		logVerbose("clamped to %dx%d (max %dx%d)", b.Dx(), b.Dy(), flagMaxWidth, flagMaxHeight)
	}

	res, err := fit.Fit(img, enc, fit.Config{
		TargetBytes: targetBytes,
		MinQuality:  flagMinQuality,
		MaxQuality:  flagMaxQuality,
		MaxRounds:   flagMaxRounds,
		PNGLevel:    flagPNGLevel,
		Observer: &tracer{
			w:           os.Stderr,
			targetBytes: targetBytes,
			maxRounds:   flagMaxRounds,
			lossless:    enc.Lossless(),
		},
	})
	if err != nil {
		return err
	}

	if err := imageio.Write(output, res.Data); err != nil {
		return err
	}

	info := fmt.Sprintf("quality=%d", res.Quality)
	if enc.Lossless() {
		info = fmt.Sprintf("compression_level=%d", res.Quality)
	}
	if res.MetTarget {
		fmt.Fprintf(os.Stderr, "✓ SUCCESS: %s -> %s  %s  size=%dx%d  %s  format=%s\n",
			input, output, formatKB(int64(len(res.Data))), res.Width, res.Height, info, enc.Format())
	} else {
		fmt.Fprintf(os.Stderr, "⚠ WARNING: Could not reach target. Output=%s (target=%s) size=%dx%d %s format=%s\n",
			formatKB(int64(len(res.Data))), formatKB(targetBytes), res.Width, res.Height, info, enc.Format())
	}

	if flagReport != "" {
		if err := writeReport(input, output, origBounds.Dx(), origBounds.Dy(), enc.Format(), targetBytes, res); err != nil {
			return err
		}
		logVerbose("report written to %s", flagReport)
	}
	return nil
}

func writeReport(input, output string, origW, origH int, format string, targetBytes int64, res *fit.Result) error {
	r := report.New()
	r.Format = format
	r.Quality = res.Quality
	r.TargetBytes = targetBytes
	r.Rounds = res.Rounds
	r.MetTarget = res.MetTarget

	r.Input = report.FileInfo{Path: input, Width: origW, Height: origH}
	if info, err := os.Stat(input); err == nil {
		r.Input.Size = info.Size()
	}
	r.Output = report.FileInfo{
		Path:   output,
		Width:  res.Width,
		Height: res.Height,
		Size:   int64(len(res.Data)),
		Hash:   hasher.ContentHash(res.Data),
	}
	return r.WriteJSON(flagReport)
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[resizer] "+format+"\n", args...)
	}
}

func formatKB(b int64) string {
	return fmt.Sprintf("%.1fKB", float64(b)/1024)
}
