package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/scenes"
	"github.com/automoto/maskfall/shared/gamemath"
)

func testSnapshot() Snapshot {
	return Snapshot{ArenaWidth: 10, ArenaHeight: 10, PixelsPerUnit: 10}
}

func TestToScreen(t *testing.T) {
	s := testSnapshot()
	tests := []struct {
		name         string
		x, z         float64
		wantX, wantY float64
	}{
		{"origin is bottom left", 0, 0, 0, 100},
		{"far corner is top right", 10, 10, 100, 0},
		{"centre", 5, 5, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := s.ToScreen(tt.x, tt.z)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.z, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDrawPaintsScene(t *testing.T) {
	s := testSnapshot()
	params := &scenes.RenderParams{
		Ground: []scenes.Region{{X: 0, Y: 0, W: 5, H: 10}},
		Bodies: []scenes.Body{{
			Faction:  components.FactionEnemy,
			Position: gamemath.V(7.5, 5),
			Radius:   1,
			Health:   1,
		}},
	}

	img := s.Draw(params)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("image bounds = %v, want 100x100", b)
	}

	pixel := func(x, y int) [3]uint32 {
		r, g, b, _ := img.At(x, y).RGBA()
		return [3]uint32{r >> 8, g >> 8, b >> 8}
	}
	if got := pixel(20, 50); got != [3]uint32{uint32(GroundColor.R), uint32(GroundColor.G), uint32(GroundColor.B)} {
		t.Errorf("ground pixel = %v", got)
	}
	if got := pixel(90, 10); got != [3]uint32{uint32(BackgroundColor.R), uint32(BackgroundColor.G), uint32(BackgroundColor.B)} {
		t.Errorf("background pixel = %v", got)
	}
	// Left of the facing line, inside the body.
	if got := pixel(71, 52); got != [3]uint32{uint32(EnemyColor.R), uint32(EnemyColor.G), uint32(EnemyColor.B)} {
		t.Errorf("enemy body pixel = %v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := testSnapshot().EncodePNG(&buf, &scenes.RenderParams{}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("width = %d, want 100", img.Bounds().Dx())
	}
}
