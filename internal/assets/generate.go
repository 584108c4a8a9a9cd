package assets

import (
	"image"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	generatedWidth  = 64
	generatedHeight = 80
)

// Generate draws a placeholder landscape for index. Hues are spread evenly over count so
// neighbouring items are easy to tell apart while scrolling.
func Generate(index int, count int) Source {
	count = max(count, 1)
	hue := math.Mod(float64(index)*360/float64(count)+200, 360)

	skyTop := colorful.Hcl(hue, 0.35, 0.35).Clamped()
	skyBottom := colorful.Hcl(math.Mod(hue+40, 360), 0.45, 0.8).Clamped()
	sun := colorful.Hcl(math.Mod(hue+180, 360), 0.6, 0.9).Clamped()
	ground := colorful.Hcl(math.Mod(hue+320, 360), 0.4, 0.3).Clamped()

	img := image.NewRGBA(image.Rect(0, 0, generatedWidth, generatedHeight))
	sunX := float64(generatedWidth) * (0.25 + 0.5*float64(index)/float64(count))
	sunY := float64(generatedHeight) * 0.35
	horizon := float64(generatedHeight) * 0.68

	for y := range generatedHeight {
		for x := range generatedWidth {
			fy := float64(y)
			// Rolling hills.
			hill := horizon + 4*math.Sin(float64(x)/7+float64(index))

			var pixel colorful.Color
			switch {
			case fy >= hill:
				pixel = ground.BlendLab(colorful.Color{}, (fy-hill)/float64(generatedHeight)*1.5).Clamped()
			case math.Hypot(float64(x)-sunX, fy-sunY) < 9:
				pixel = sun
			default:
				pixel = skyTop.BlendLab(skyBottom, fy/horizon).Clamped()
			}

			img.Set(x, y, pixel)
		}
	}

	return Source{
		Index:     index,
		Name:      "Generated #" + strconv.Itoa(index+1),
		Digest:    "generated-" + strconv.Itoa(index) + "-" + strconv.Itoa(count),
		Generated: true,
		Image:     img,
	}
}
