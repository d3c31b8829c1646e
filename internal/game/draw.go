package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/rosette/internal/config"
	"github.com/iburimskiy/rosette/internal/rosette"
)

// drawTrail fades whatever is already on screen towards the background. The
// screen is never cleared, so older frames linger as a trail.
func drawTrail(screen *ebiten.Image, first bool) {
	alpha := config.TrailAlpha
	if first {
		alpha = 1
	}
	grey := uint8(math.Round(config.Background * 255))
	bg := color.NRGBA{R: grey, G: grey, B: grey, A: uint8(math.Round(alpha * 255))}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), bg, false)
}

// drawStroke draws consecutive samples as segments coloured by their start.
// Rosette coordinates have the origin at the centre and y pointing up.
func drawStroke(screen *ebiten.Image, s rosette.Stroke) {
	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2
	for i := 1; i < len(s.Curve); i++ {
		from, to := s.Curve[i-1], s.Curve[i]
		vector.StrokeLine(screen,
			float32(cx+from.Point.X), float32(cy-from.Point.Y),
			float32(cx+to.Point.X), float32(cy-to.Point.Y),
			float32(s.Weight), from.Color.Clamped(), true)
	}
}

// drawStatus prints text on an opaque bar so earlier lines don't show through
// the trail.
func drawStatus(screen *ebiten.Image, text string) {
	const x, y, lineHeight = 12, 12, 16
	grey := uint8(math.Round(config.Background * 255))
	w := float32(screen.Bounds().Dx() - 2*x)
	vector.DrawFilledRect(screen, x-4, y-2, w+8, lineHeight+4, color.NRGBA{R: grey, G: grey, B: grey, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
