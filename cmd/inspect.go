package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/junkpiano/resizer/internal/hasher"
	"github.com/junkpiano/resizer/internal/imageio"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <image>",
	Short: "Show image properties relevant to size fitting",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	img, format, err := imageio.Load(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := int64(w) * int64(h)

	fmt.Println()
	fmt.Printf("  Path:          %s\n", path)
	fmt.Printf("  Format:        %s\n", format)
	fmt.Printf("  Dimensions:    %dx%d (%.1f MP)\n", w, h, float64(pixels)/1e6)
	fmt.Printf("  Alpha:         %v\n", imageio.HasAlpha(img))
	fmt.Printf("  File size:     %s\n", formatKB(info.Size()))
	fmt.Printf("  Content hash:  %s\n", hasher.ContentHash(data))
	// 2 bytes/pixel is the high-quality estimate the lossy fit uses
	// when deciding whether to pre-downscale.
	fmt.Printf("  Est. size at high quality: %s\n", formatKB(pixels*2))
	fmt.Println()
	return nil
}
