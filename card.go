package cardgen

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pictora/cardgen/imop"
	"github.com/pictora/cardgen/utils"
	"golang.org/x/image/font"
)

// haloRing is the width of the accent-colored ring drawn around avatars.
const haloRing = 8

// canvas is the drawing surface a single card is composed onto. It is owned
// by one card instance for the duration of one render and never reused. The
// stages mutate it in place; each card type invokes them in a fixed order.
type canvas struct {
	dc *gg.Context
	op *imop.Composite
	w  float64
	h  float64
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		dc: gg.NewContext(width, height),
		op: imop.InitOp(),
		w:  float64(width),
		h:  float64(height),
	}
}

// setColor sets the active drawing color from a hex string.
func (c *canvas) setColor(hex string) {
	c.dc.SetColor(utils.HexToRGBA(hex))
}

// fillBackground floods the whole surface with the background color.
func (c *canvas) fillBackground(hex string) {
	c.setColor(hex)
	c.dc.Clear()
}

// drawCover scales the bitmap to cover the full surface and composites it
// over the current content at the given opacity.
func (c *canvas) drawCover(img image.Image, opacity float64) {
	cover := &imop.Bitmap{
		Img: imaging.Fill(img, int(c.w), int(c.h), imaging.Center, imaging.Lanczos),
	}

	c.op.Set(imop.SrcOver)
	c.op.Draw(c.surface(), cover, opacity)
}

// drawBlurredCover scales the bitmap to cover the full surface, blurs it with
// the given radius and replaces the current content with it.
func (c *canvas) drawBlurredCover(img image.Image, radius float64) {
	cover := imaging.Fill(img, int(c.w), int(c.h), imaging.Center, imaging.Lanczos)

	c.op.Set(imop.Copy)
	c.op.Draw(c.surface(), &imop.Bitmap{Img: imaging.Blur(cover, radius)}, 1)
}

// gradientOverlay darkens the surface with a linear black gradient running
// either from the top-left to the bottom-right corner or straight down,
// with the given alpha stops. It keeps the text legible on busy backgrounds.
func (c *canvas) gradientOverlay(diagonal bool, from, to float64) {
	var grad gg.Gradient
	if diagonal {
		grad = gg.NewLinearGradient(0, 0, c.w, c.h)
	} else {
		grad = gg.NewLinearGradient(0, 0, 0, c.h)
	}
	grad.AddColorStop(0, color.NRGBA{A: uint8(from * 255)})
	grad.AddColorStop(1, color.NRGBA{A: uint8(to * 255)})

	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, c.w, c.h)
	c.dc.Fill()
}

// drawAvatar draws the accent-colored halo circle, clips a circular region
// and blits the avatar scaled into it.
func (c *canvas) drawAvatar(img image.Image, cx, cy, r float64, halo, classifier string) error {
	avatar, err := squareAvatar(img, int(2*r), classifier)
	if err != nil {
		return err
	}

	c.setColor(halo)
	c.dc.DrawCircle(cx, cy, r+haloRing)
	c.dc.Fill()

	c.dc.DrawCircle(cx, cy, r)
	c.dc.Clip()
	c.dc.DrawImageAnchored(avatar, int(cx), int(cy), 0.5, 0.5)
	c.dc.ResetClip()

	return nil
}

// statusDot draws the presence indicator: a filled circle in the status
// color, ringed with the background color so it reads against the avatar.
func (c *canvas) statusDot(cx, cy, r float64, hex, ringHex string) {
	c.setColor(ringHex)
	c.dc.DrawCircle(cx, cy, r+4)
	c.dc.Fill()

	c.setColor(hex)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

// text draws a string with its left edge at x and baseline at y, returning
// the advance width of the drawn string.
func (c *canvas) text(s string, x, y float64, face font.Face, hex string) float64 {
	c.dc.SetFontFace(face)
	c.setColor(hex)
	c.dc.DrawString(s, x, y)

	w, _ := c.dc.MeasureString(s)
	return w
}

// textAnchored draws a string anchored at (x, y); ax and ay run from 0 to 1
// and place the anchor point within the string bounds.
func (c *canvas) textAnchored(s string, x, y, ax, ay float64, face font.Face, hex string) {
	c.dc.SetFontFace(face)
	c.setColor(hex)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// wrap splits a string into lines no wider than max, greedily accumulating
// words by measured width. A single word wider than max is emitted on its
// own line unsplit; the final partial line is always flushed.
func (c *canvas) wrap(s string, face font.Face, max float64) []string {
	c.dc.SetFontFace(face)

	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := c.dc.MeasureString(candidate); w <= max || line == "" {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// progressBar draws the background track rectangle and over it a fill
// rectangle proportional to pct, finished with a one pixel border stroke.
func (c *canvas) progressBar(x, y, w, h, pct float64, trackHex, fillHex, borderHex string) {
	c.setColor(trackHex)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()

	c.setColor(fillHex)
	c.dc.DrawRectangle(x, y, w*pct/100, h)
	c.dc.Fill()

	c.setColor(borderHex)
	c.dc.SetLineWidth(1)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// bar draws a plain filled rectangle.
func (c *canvas) bar(x, y, w, h float64, hex string) {
	c.setColor(hex)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// roundCorners masks the finished surface with a rounded rectangle: four
// straight edges joined by quarter-circle corners traced as quadratic
// curves. Everything outside the path becomes transparent.
func (c *canvas) roundCorners(r float64) {
	mc := gg.NewContext(int(c.w), int(c.h))
	mc.MoveTo(r, 0)
	mc.LineTo(c.w-r, 0)
	mc.QuadraticTo(c.w, 0, c.w, r)
	mc.LineTo(c.w, c.h-r)
	mc.QuadraticTo(c.w, c.h, c.w-r, c.h)
	mc.LineTo(r, c.h)
	mc.QuadraticTo(0, c.h, 0, c.h-r)
	mc.LineTo(0, r)
	mc.QuadraticTo(0, 0, r, 0)
	mc.ClosePath()
	mc.SetRGB(1, 1, 1)
	mc.Fill()

	mask := imop.NewBitmap(image.Rect(0, 0, int(c.w), int(c.h)))
	draw.Draw(mask.Img, mask.Img.Bounds(), mc.Image(), image.Point{}, draw.Src)

	c.op.Set(imop.DstIn)
	c.op.Draw(c.surface(), mask, 1)
}

// encode serializes the surface as PNG.
func (c *canvas) encode(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// surface exposes the mutable pixel buffer backing the drawing context.
func (c *canvas) surface() draw.Image {
	return c.dc.Image().(draw.Image)
}

// renderBytes runs an Encode-shaped render into a byte buffer.
func renderBytes(encode func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
