package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/automoto/maskfall/components"
	"github.com/automoto/maskfall/config"
	"github.com/automoto/maskfall/input"
	"github.com/automoto/maskfall/input/ebiteninput"
	"github.com/automoto/maskfall/render"
	"github.com/automoto/maskfall/scenes"
	"github.com/automoto/maskfall/shared/gamemath"
	"github.com/automoto/maskfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const pixelsPerUnit = 16

var hudColor = color.RGBA{230, 230, 230, 255}

type Game struct {
	tuning  *config.Tuning
	world   *scenes.World
	view    render.Snapshot
	poller  *ebiteninput.Poller
	device  *input.Device
	watcher *config.Watcher
	paused  bool
}

func NewGame(tuning *config.Tuning, watcher *config.Watcher) (*Game, error) {
	g := &Game{
		tuning:  tuning,
		poller:  &ebiteninput.Poller{},
		watcher: watcher,
		view: render.Snapshot{
			ArenaWidth:    float64(tuning.Arena.Width),
			ArenaHeight:   float64(tuning.Arena.Height),
			PixelsPerUnit: pixelsPerUnit,
		},
	}
	g.device = input.NewDevice(g.poller, ebiteninput.AnalogDeadzone)
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	world, err := scenes.NewWorld(g.tuning, scenes.Options{Audio: systems.LogAudio{}})
	if err != nil {
		return err
	}
	g.world = world
	return nil
}

func (g *Game) Update() error {
	g.applyTuning()

	player := g.world.Player
	pos := components.Object.Get(player).Center()
	sx, sy := g.view.ToScreen(pos.X, pos.Y)

	g.poller.Refresh()
	g.device.Update(components.Input.Get(player), gamemath.V(sx, sy))

	if g.device.JustPressed(input.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if g.world.PlayerDead() || g.world.EnemiesAlive() == 0 {
		if g.device.JustPressed(input.ActionDodge) {
			return g.reset()
		}
	}

	g.world.Advance(1 / float64(ebiten.TPS()))
	return nil
}

// applyTuning picks up a pending hot reload without blocking the frame.
func (g *Game) applyTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case t, ok := <-g.watcher.Updates:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.world.Retune(t); err != nil {
			log.Printf("Warning: tuning rejected: %v", err)
			return
		}
		g.tuning = t
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor)
	params := g.world.Render

	for _, r := range params.Ground {
		g.drawRegion(screen, r, render.GroundColor)
	}
	for _, r := range params.Walls {
		g.drawRegion(screen, r, render.WallColor)
	}
	for _, m := range params.Pedestals {
		x, y := g.view.ToScreen(m.Position.X, m.Position.Y)
		radius := float32(m.Radius * pixelsPerUnit)
		if m.Active {
			vector.DrawFilledCircle(screen, float32(x), float32(y), radius, render.PedestalColor, true)
		} else {
			vector.StrokeCircle(screen, float32(x), float32(y), radius, 2, render.PedestalColor, true)
		}
	}
	for _, ind := range params.Indicators {
		g.drawIndicator(screen, ind)
	}
	for _, b := range params.Bodies {
		g.drawBody(screen, b)
	}

	g.drawHUD(screen)
}

func (g *Game) drawRegion(screen *ebiten.Image, r scenes.Region, c color.Color) {
	x, y := g.view.ToScreen(r.X, r.Y+r.H)
	vector.FillRect(screen, float32(x), float32(y), float32(r.W*pixelsPerUnit), float32(r.H*pixelsPerUnit), c, false)
}

func (g *Game) drawIndicator(screen *ebiten.Image, ind scenes.Indicator) {
	x, y := g.view.ToScreen(ind.Position.X, ind.Position.Y)
	faint := ind.Color
	faint.A = 64

	if ind.Shape == components.PreviewCircle {
		r := float32(ind.Scale.X * 0.5 * pixelsPerUnit)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, faint, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r*float32(ind.Fill), ind.Color, true)
		return
	}

	// Boxes are drawn as a thick line along the aim.
	fx, fy := ind.Forward.X, -ind.Forward.Y
	halfLen := ind.Scale.Y * pixelsPerUnit
	width := float32(ind.Scale.X * 2 * pixelsPerUnit)
	x0, y0 := x-fx*halfLen, y-fy*halfLen
	x1, y1 := x+fx*halfLen, y+fy*halfLen
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, faint, true)
	fill := 2 * halfLen * ind.Fill
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x0+fx*fill), float32(y0+fy*fill), width, ind.Color, true)
	if ind.Arrow {
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, color.White, true)
	}
}

func (g *Game) drawBody(screen *ebiten.Image, b scenes.Body) {
	x, y := g.view.ToScreen(b.Position.X, b.Position.Y)
	r := b.Radius * pixelsPerUnit

	c := render.PlayerColor
	if b.Faction == components.FactionEnemy {
		c = render.EnemyColor
	}
	if b.Dead {
		c = render.DeadColor
	}
	if b.Dodging {
		c.A = 128
	}

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
	if b.Attacking {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, color.White, true)
	}
	fx, fy := x+math.Sin(b.Facing)*r*1.4, y-math.Cos(b.Facing)*r*1.4
	vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), 2, color.White, true)

	// Health bar
	vector.FillRect(screen, float32(x-r), float32(y-r-6), float32(2*r), 3, render.HealthBackColor, false)
	vector.FillRect(screen, float32(x-r), float32(y-r-6), float32(2*r*b.Health), 3, render.HealthColor, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	combat := components.Combat.Get(g.world.Player)
	health := components.Health.Get(g.world.Player)

	attacks := components.Character.Get(g.world.Player).Config.Attacks
	attack := "none"
	if i := combat.AttackIndex; i >= 0 && i < len(attacks) {
		attack = attacks[i].Name
	}
	hud := fmt.Sprintf("HP %.0f/%.0f  Attack %s  Enemies %d  Difficulty %s",
		health.Current, health.Max, attack, g.world.EnemiesAlive(), g.tuning.Brain.Difficulty)
	text.Draw(screen, hud, face, 8, 16, hudColor)

	switch {
	case g.paused:
		text.Draw(screen, "PAUSED", face, 8, 32, hudColor)
	case g.world.PlayerDead():
		text.Draw(screen, "You died. Dodge to restart.", face, 8, 32, hudColor)
	case g.world.EnemiesAlive() == 0:
		text.Draw(screen, "Arena cleared. Dodge to restart.", face, 8, 32, hudColor)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(g.view.ArenaWidth * pixelsPerUnit), int(g.view.ArenaHeight * pixelsPerUnit)
}

func main() {
	configPath := flag.String("config", "", "Tuning YAML file (empty = built-in defaults)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	flag.Parse()

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		watcher = w
	}

	game, err := NewGame(tuning, watcher)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle("maskfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
