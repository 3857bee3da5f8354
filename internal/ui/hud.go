//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifecanvas/internal/anim"
	"lifecanvas/internal/metrics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable control in the HUD panel.
type Button struct {
	Key     string
	Label   func() string
	OnClick func()

	rect image.Rectangle
}

// HUD renders the control panel and frame rate readout to the right of the
// universe view.
type HUD struct {
	width   int
	buttons []Button
	readout func() metrics.Snapshot
	face    text.Face

	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	snapshot     metrics.Snapshot
}

// NewHUD constructs a HUD of the given panel width.
func NewHUD(width int, buttons []Button, readout func() metrics.Snapshot) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		width:   width,
		buttons: buttons,
		readout: readout,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	h.layoutButtons()
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the readout and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if h.readout != nil {
		h.snapshot = h.readout()
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.buttons {
		if p.In(h.buttons[i].rect) && h.buttons[i].OnClick != nil {
			h.buttons[i].OnClick()
			return
		}
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	h.drawText("Game of Life", panelPadding, panelPadding, titleColor)
	for _, b := range h.buttons {
		h.drawButton(b)
	}
	readoutY := buttonsTop + len(h.buttons)*lineHeight + panelPadding
	h.drawText(h.snapshot.String(), panelPadding, readoutY, readoutColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText(s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = textLineSpacing
	text.Draw(h.panel, s, h.face, op)
}

func (h *HUD) drawButton(b Button) {
	r := b.rect
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
	label := b.Key
	if b.Label != nil {
		label = "[" + b.Key + "] " + asciiLabel(b.Label())
	}
	tw, th := text.Measure(label, h.face, textLineSpacing)
	x := r.Min.X + (r.Dx()-int(tw))/2
	y := r.Min.Y + (r.Dy()-int(th))/2
	h.drawText(label, x, y, buttonTextColor)
}

func (h *HUD) layoutButtons() {
	for i := range h.buttons {
		top := buttonsTop + i*lineHeight
		h.buttons[i].rect = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonHeight)
	}
}

// asciiLabel maps the play/pause glyphs, which the bitmap font cannot draw,
// onto words.
func asciiLabel(s string) string {
	switch s {
	case anim.GlyphPlay:
		return "Play"
	case anim.GlyphPause:
		return "Pause"
	}
	return s
}

var (
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	readoutColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonTextColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

const (
	panelPadding    = 12
	lineHeight      = 32
	buttonHeight    = 24
	textLineSpacing = 14
	buttonsTop      = panelPadding + 24
)
