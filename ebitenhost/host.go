package ebitenhost

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pickergrid"
)

// clearButtonWidth is the hit width of a header's clear button.
const clearButtonWidth = 24

// debugGlyphHeight is the line height of ebitenutil.DebugPrint text.
const debugGlyphHeight = 16

// Options configures a Host and the window Run opens.
type Options struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	Style  Style
	Insets pickergrid.Insets
	// WheelStep is the scroll distance of one wheel notch, in points.
	WheelStep float64
	// DragDeadZone is how far the pointer must travel before a press turns
	// into a drag.
	DragDeadZone float64
	// LongPressTicks is how long a press must be held to activate with
	// TriggerLongPress.
	LongPressTicks int
}

// DefaultOptions returns a 400x640 window with the default style.
func DefaultOptions() Options {
	return Options{
		Title:          "gridpick",
		Width:          400,
		Height:         640,
		Style:          DefaultStyle(),
		WheelStep:      48,
		DragDeadZone:   defaultDragDeadZone,
		LongPressTicks: defaultLongPressTicks,
	}
}

// Host is an ebiten.Game driving a GridView.
type Host struct {
	grid    *pickergrid.GridView
	opts    Options
	gesture gesture

	updateFn func() error

	width, height int
	white         *ebiten.Image
	op            ebiten.DrawImageOptions
}

// New creates a host for grid.
func New(grid *pickergrid.GridView, opts Options) *Host {
	if opts.WheelStep <= 0 {
		opts.WheelStep = DefaultOptions().WheelStep
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Host{
		grid: grid,
		opts: opts,
		gesture: gesture{
			deadZone:       opts.DragDeadZone,
			longPressTicks: opts.LongPressTicks,
		},
		white: white,
	}
}

// Grid returns the hosted grid.
func (h *Host) Grid() *pickergrid.GridView {
	return h.grid
}

// SetUpdateFunc sets a callback run at the start of every Update, before
// input is processed. A non-nil error ends the game.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFn = fn
}

// Run opens a window and blocks until it is closed.
func (h *Host) Run() error {
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run grid host: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if h.updateFn != nil {
		if err := h.updateFn(); err != nil {
			return err
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		h.grid.ScrollBy(-wy * h.opts.WheelStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		h.grid.ScrollToTop(true)
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.handle(h.gesture.step(pressed, float64(mx), float64(my)))

	h.grid.Update(dt)
	return nil
}

// handle applies a recognized gesture to the grid.
func (h *Host) handle(ev gestureEvent) {
	switch ev.kind {
	case gestureTap:
		h.activate(ev.x, ev.y, pickergrid.TriggerTap)
	case gestureLongPress:
		h.activate(ev.x, ev.y, pickergrid.TriggerLongPress)
	case gestureDrag:
		h.grid.ScrollBy(ev.dy)
	}
}

// activate hits cells first, then header clear buttons.
func (h *Host) activate(x, y float64, trigger pickergrid.Trigger) bool {
	if h.grid.ActivateAt(x, y, trigger) {
		return true
	}
	id, ok := h.clearButtonAt(x, y)
	if !ok {
		return false
	}
	return h.grid.ClearGroup(id)
}

// clearButtonAt returns the group whose clear button covers the viewport
// point (x, y).
func (h *Host) clearButtonAt(x, y float64) (pickergrid.GroupID, bool) {
	l := h.grid.Layout()
	cy := h.grid.Viewport().ScreenToContent(y)
	for _, vg := range h.grid.Visible() {
		if !l.Source()[vg.GroupIndex].HasClear {
			continue
		}
		hf := l.HeaderFrame(vg.GroupIndex)
		if hf.IsEmpty() {
			continue
		}
		btn := pickergrid.Rect{X: hf.MaxX() - clearButtonWidth, Y: hf.Y, Width: clearButtonWidth, Height: hf.Height}
		if btn.Contains(x, cy) {
			return l.Groups[vg.GroupIndex].GroupID, true
		}
	}
	return "", false
}

// Layout implements ebiten.Game. A size change resizes the grid.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.grid.SetSize(float64(outsideWidth), float64(outsideHeight), h.opts.Insets)
	}
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	st := &h.opts.Style
	screen.Fill(colorRGBA(st.Background))

	scrollY := h.grid.Viewport().ScrollY
	h.drawHeaders(screen, scrollY)

	shimmer := h.grid.Shimmer()
	phase := -1.0
	if shimmer.Active() {
		phase = shimmer.Phase()
	}
	for _, n := range h.grid.Exiting() {
		h.drawNode(screen, n, scrollY, phase)
	}
	for _, n := range h.grid.Nodes() {
		h.drawNode(screen, n, scrollY, phase)
	}

	if h.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (h *Host) drawHeaders(screen *ebiten.Image, scrollY float64) {
	l := h.grid.Layout()
	st := &h.opts.Style
	for _, vg := range h.grid.Visible() {
		hf := l.HeaderFrame(vg.GroupIndex)
		if hf.IsEmpty() {
			continue
		}
		group := &l.Source()[vg.GroupIndex]
		x := int(l.Groups[vg.GroupIndex].Grid.LeftInset)
		y := int(hf.Y - scrollY + (hf.Height-debugGlyphHeight)/2)
		title := group.Title
		if group.Badge != "" {
			title += " [" + group.Badge + "]"
		}
		ebitenutil.DebugPrintAt(screen, title, x, y)
		if group.HasClear {
			btn := pickergrid.Rect{X: hf.MaxX() - clearButtonWidth, Y: hf.Y - scrollY, Width: clearButtonWidth, Height: hf.Height}
			h.fillRect(screen, btn, st.ClearButton, 1)
			ebitenutil.DebugPrintAt(screen, "x", int(btn.X+btn.Width/2-3), y)
		}
	}
}

func (h *Host) drawNode(screen *ebiten.Image, n *pickergrid.RealizedNode, scrollY, phase float64) {
	st := &h.opts.Style
	rf := n.RenderFrame()
	rf.Y -= scrollY
	if rf.IsEmpty() || rf.MaxY() < 0 || rf.Y > float64(h.height) || n.Alpha <= 0 {
		return
	}

	if n.Label != "" {
		h.fillRect(screen, rf, st.Label, n.Alpha)
		ebitenutil.DebugPrintAt(screen, n.Label, int(rf.X+4), int(rf.Y+(rf.Height-debugGlyphHeight)/2))
		return
	}

	if n.Placeholder != nil && n.ContentAlpha < 1 {
		fill := st.Placeholder
		if n.State == pickergrid.ContentFailed {
			fill = st.Failed
		}
		a := n.Alpha * (1 - n.ContentAlpha)
		h.fillRect(screen, rf, fill, a)
		if n.State == pickergrid.ContentLoading && phase >= 0 {
			if s := shimmerAlpha(phase, rf.X+rf.Width/2, float64(h.width)); s > 0 {
				h.fillRect(screen, rf, st.Shimmer, a*s)
			}
		}
	}

	if n.ContentAlpha > 0 {
		a := n.Alpha * n.ContentAlpha
		switch p := n.Content.Payload.(type) {
		case *ebiten.Image:
			h.drawImage(screen, p, rf, st.tint(n.Item().Tint), a)
		case string:
			ebitenutil.DebugPrintAt(screen, p, int(rf.X+2), int(rf.Y+(rf.Height-debugGlyphHeight)/2))
		}
	}

	if n.Hints.Badge != pickergrid.IconNone {
		size := rf.Width / 4
		h.fillRect(screen, pickergrid.Rect{X: rf.MaxX() - size, Y: rf.Y, Width: size, Height: size}, st.Badge, n.Alpha)
	}
	if n.Hints.Selected {
		h.strokeRect(screen, rf, 2, st.Selection, n.Alpha)
	}
}

// fillRect draws a solid rectangle by scaling a white pixel.
func (h *Host) fillRect(dst *ebiten.Image, r pickergrid.Rect, c pickergrid.Color, alpha float64) {
	op := &h.op
	op.GeoM.Reset()
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	colorScale(&op.ColorScale, c, alpha)
	dst.DrawImage(h.white, op)
}

func (h *Host) strokeRect(dst *ebiten.Image, r pickergrid.Rect, w float64, c pickergrid.Color, alpha float64) {
	h.fillRect(dst, pickergrid.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, c, alpha)
	h.fillRect(dst, pickergrid.Rect{X: r.X, Y: r.MaxY() - w, Width: r.Width, Height: w}, c, alpha)
	h.fillRect(dst, pickergrid.Rect{X: r.X, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, c, alpha)
	h.fillRect(dst, pickergrid.Rect{X: r.MaxX() - w, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, c, alpha)
}

// drawImage fits img into r, preserving its aspect ratio.
func (h *Host) drawImage(dst, img *ebiten.Image, r pickergrid.Rect, tint pickergrid.Color, alpha float64) {
	b := img.Bounds()
	fit := fitRect(b, r)
	op := &h.op
	op.GeoM.Reset()
	op.GeoM.Scale(fit.Width/float64(b.Dx()), fit.Height/float64(b.Dy()))
	op.GeoM.Translate(fit.X, fit.Y)
	colorScale(&op.ColorScale, tint, alpha)
	dst.DrawImage(img, op)
}

// fitRect returns the largest rect with b's aspect ratio centered in r.
func fitRect(b image.Rectangle, r pickergrid.Rect) pickergrid.Rect {
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return pickergrid.Rect{}
	}
	scale := r.Width / float64(b.Dx())
	if s := r.Height / float64(b.Dy()); s < scale {
		scale = s
	}
	w := float64(b.Dx()) * scale
	hgt := float64(b.Dy()) * scale
	return pickergrid.Rect{X: r.X + (r.Width-w)/2, Y: r.Y + (r.Height-hgt)/2, Width: w, Height: hgt}
}

func colorRGBA(c pickergrid.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}
