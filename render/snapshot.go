package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/scenes"
	"github.com/fogleman/gg"
)

var (
	BackgroundColor = color.RGBA{12, 12, 28, 255}
	GroundColor     = color.RGBA{58, 62, 78, 255}
	WallColor       = color.RGBA{120, 110, 96, 255}
	PedestalColor   = color.RGBA{200, 200, 220, 255}
	PlayerColor     = color.RGBA{83, 200, 255, 255}
	EnemyColor      = color.RGBA{255, 62, 62, 255}
	DeadColor       = color.RGBA{90, 90, 90, 255}
	HealthBackColor = color.RGBA{51, 51, 51, 255}
	HealthColor     = color.RGBA{83, 255, 69, 255}
)

// Snapshot maps the arena onto a top-down image. World x runs right and world z runs up.
type Snapshot struct {
	ArenaWidth    float64
	ArenaHeight   float64
	PixelsPerUnit float64
}

func (s Snapshot) size() (int, int) {
	return int(math.Ceil(s.ArenaWidth * s.PixelsPerUnit)), int(math.Ceil(s.ArenaHeight * s.PixelsPerUnit))
}

// ToScreen converts a world position to pixel coordinates.
func (s Snapshot) ToScreen(x, z float64) (float64, float64) {
	return x * s.PixelsPerUnit, (s.ArenaHeight - z) * s.PixelsPerUnit
}

// Draw renders params into a new image.
func (s Snapshot) Draw(params *scenes.RenderParams) image.Image {
	return s.context(params).Image()
}

// EncodePNG renders params and writes them to w as a PNG.
func (s Snapshot) EncodePNG(w io.Writer, params *scenes.RenderParams) error {
	return s.context(params).EncodePNG(w)
}

func (s Snapshot) context(params *scenes.RenderParams) *gg.Context {
	width, height := s.size()
	dc := gg.NewContext(width, height)

	dc.SetColor(BackgroundColor)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	for _, r := range params.Ground {
		s.drawRegion(dc, r, GroundColor)
	}
	for _, r := range params.Walls {
		s.drawRegion(dc, r, WallColor)
	}
	for _, m := range params.Pedestals {
		s.drawPedestal(dc, m)
	}
	for _, ind := range params.Indicators {
		s.drawIndicator(dc, ind)
	}
	for _, b := range params.Bodies {
		s.drawBody(dc, b)
	}
	return dc
}

func (s Snapshot) drawRegion(dc *gg.Context, r scenes.Region, c color.Color) {
	x, y := s.ToScreen(r.X, r.Y+r.H)
	dc.SetColor(c)
	dc.DrawRectangle(x, y, r.W*s.PixelsPerUnit, r.H*s.PixelsPerUnit)
	dc.Fill()
}

func (s Snapshot) drawPedestal(dc *gg.Context, m scenes.Marker) {
	x, y := s.ToScreen(m.Position.X, m.Position.Y)
	dc.SetColor(PedestalColor)
	dc.SetLineWidth(2)
	dc.DrawCircle(x, y, m.Radius*s.PixelsPerUnit)
	if m.Active {
		dc.FillPreserve()
	}
	dc.Stroke()
}

func (s Snapshot) drawIndicator(dc *gg.Context, ind scenes.Indicator) {
	x, y := s.ToScreen(ind.Position.X, ind.Position.Y)
	faint := ind.Color
	faint.A = 64

	if ind.Shape == components.PreviewCircle {
		r := ind.Scale.X * 0.5 * s.PixelsPerUnit
		dc.SetColor(faint)
		dc.DrawCircle(x, y, r)
		dc.Fill()
		dc.SetColor(ind.Color)
		dc.DrawCircle(x, y, r*ind.Fill)
		dc.Fill()
		return
	}

	halfLen := ind.Scale.Y * s.PixelsPerUnit
	halfWidth := ind.Scale.X * s.PixelsPerUnit

	dc.Push()
	dc.Translate(x, y)
	dc.Rotate(math.Atan2(-ind.Forward.Y, ind.Forward.X))
	dc.SetColor(faint)
	dc.DrawRectangle(-halfLen, -halfWidth, 2*halfLen, 2*halfWidth)
	dc.Fill()
	dc.SetColor(ind.Color)
	dc.DrawRectangle(-halfLen, -halfWidth, 2*halfLen*ind.Fill, 2*halfWidth)
	dc.Fill()
	if ind.Arrow {
		dc.SetLineWidth(2)
		dc.DrawLine(-halfLen, 0, halfLen, 0)
		dc.DrawLine(halfLen, 0, halfLen-halfWidth, -halfWidth)
		dc.DrawLine(halfLen, 0, halfLen-halfWidth, halfWidth)
		dc.Stroke()
	}
	dc.Pop()
}

func (s Snapshot) drawBody(dc *gg.Context, b scenes.Body) {
	x, y := s.ToScreen(b.Position.X, b.Position.Y)
	r := b.Radius * s.PixelsPerUnit

	c := PlayerColor
	if b.Faction == components.FactionEnemy {
		c = EnemyColor
	}
	if b.Dead {
		c = DeadColor
	}
	if b.Dodging {
		c.A = 128
	}

	dc.SetColor(c)
	dc.DrawCircle(x, y, r)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	if b.Attacking {
		dc.DrawCircle(x, y, r)
	}
	dc.DrawLine(x, y, x+math.Sin(b.Facing)*r*1.4, y-math.Cos(b.Facing)*r*1.4)
	dc.Stroke()

	// Health bar
	barWidth := r * 2
	barHeight := math.Max(2, r*0.25)
	dc.SetColor(HealthBackColor)
	dc.DrawRectangle(x-r, y-r-barHeight*2, barWidth, barHeight)
	dc.Fill()
	dc.SetColor(HealthColor)
	dc.DrawRectangle(x-r, y-r-barHeight*2, barWidth*b.Health, barHeight)
	dc.Fill()
}
