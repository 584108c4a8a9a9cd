package assets

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = "▀"

// FillRect returns the centered region of bounds with the aspect ratio of width x height, the
// crop used to scale an image to fill without distortion.
func FillRect(bounds image.Rectangle, width int, height int) image.Rectangle {
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || width == 0 || height == 0 {
		return bounds
	}

	// Compare srcW/srcH against width/height without floats.
	if srcW*height > width*srcH {
		cropW := srcH * width / height
		x0 := bounds.Min.X + (srcW-cropW)/2

		return image.Rect(x0, bounds.Min.Y, x0+cropW, bounds.Max.Y)
	}

	cropH := srcW * height / width
	y0 := bounds.Min.Y + (srcH-cropH)/2

	return image.Rect(bounds.Min.X, y0, bounds.Max.X, y0+cropH)
}

// Render scales img to fill width x height cells and returns one string per row.
func Render(img image.Image, width int, height int) []string {
	pixels := image.NewRGBA(image.Rect(0, 0, width, height*2))
	xdraw.ApproxBiLinear.Scale(pixels, pixels.Bounds(), img, FillRect(img.Bounds(), width, height*2), xdraw.Src, nil)

	lines := make([]string, height)
	for row := range height {
		var builder strings.Builder
		for col := range width {
			top := hexColor(pixels.At(col, row*2))
			bottom := hexColor(pixels.At(col, row*2+1))
			builder.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
		lines[row] = builder.String()
	}

	return lines
}

func hexColor(c color.Color) string {
	converted, _ := colorful.MakeColor(c)

	return converted.Hex()
}
