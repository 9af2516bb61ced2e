package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"snake/internal/engine"
	"snake/internal/tilemap"
)

const (
	hudHeight     = 48
	hudPadding    = 8
	buttonWidth   = 72
	buttonHeight  = 20
	glyphWidth    = 7 // basicfont.Face7x13 advance
	glyphAscent   = 10
	hudLineHeight = 18
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x14, B: 0x1f, A: 0xff}
	labelColor      = color.RGBA{R: 0xe6, G: 0xed, B: 0xf3, A: 0xff}
	statusColor     = color.RGBA{R: 0x9a, G: 0xa5, B: 0xb1, A: 0xff}
	buttonColor     = color.RGBA{R: 0x2e, G: 0xc4, B: 0xb6, A: 0xff}
	buttonTextColor = color.RGBA{R: 0x10, G: 0x14, B: 0x1f, A: 0xff}
)

// Game adapts an engine to ebiten.Game.
type Game struct {
	engine  *engine.Engine
	board   *tilemap.Board
	audio   *AudioManager
	field   *ebiten.Image
	restart image.Rectangle
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func New(eng *engine.Engine, audio *AudioManager) *Game {
	cfg := eng.Settings()
	g := &Game{
		engine: eng,
		board:  tilemap.NewBoard(cfg.TileCount, cfg.TileSize),
		audio:  audio,
	}
	w := g.ScreenWidth()
	g.restart = image.Rect(w-hudPadding-buttonWidth, hudPadding, w-hudPadding, hudPadding+buttonHeight)
	return g
}

func (g *Game) ScreenWidth() int {
	return g.board.Pixels()
}

func (g *Game) ScreenHeight() int {
	return g.board.Pixels() + hudHeight
}

func (g *Game) Update() error {
	g.handleInput()
	out := g.engine.Advance()
	switch {
	case out.Crashed:
		g.audio.PlayCrash()
	case out.Ate:
		g.audio.PlayEat()
	}
	return nil
}

func (g *Game) handleInput() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name, ok := keyNames[k]; ok {
			g.engine.HandleKey(name)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.onRestart(ebiten.CursorPosition()) {
			g.engine.Reset()
		}
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if g.onRestart(ebiten.TouchPosition(id)) {
			g.engine.Reset()
		}
	}
}

func (g *Game) onRestart(x, y int) bool {
	return image.Pt(x, y).In(g.restart)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.engine.Snapshot()
	g.drawHUD(screen, snap)

	if g.field == nil {
		g.field = ebiten.NewImage(g.board.Pixels(), g.board.Pixels())
	}
	Render(g.field, snap, g.board)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.field, op)
}

func (g *Game) drawHUD(dst *ebiten.Image, snap engine.Snapshot) {
	face := basicfont.Face7x13
	text.Draw(dst, fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best), face, hudPadding, hudPadding+glyphAscent+4, labelColor)
	text.Draw(dst, snap.Status, face, hudPadding, hudPadding+glyphAscent+4+hudLineHeight, statusColor)

	r := g.restart
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
	label := "Restart"
	lx := r.Min.X + (r.Dx()-len(label)*glyphWidth)/2
	ly := r.Min.Y + (r.Dy()+glyphAscent)/2
	text.Draw(dst, label, face, lx, ly, buttonTextColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
