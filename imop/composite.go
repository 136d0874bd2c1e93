// Package imop implements the pixel compositing operations used by the
// drawing pipeline, most notably drawing a bitmap over the canvas with a
// scalar opacity, which the 2D drawing surface does not support natively.
package imop

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pictora/cardgen/utils"
)

// The supported alpha composition operators.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstIn   = "dst_in"
)

// Bitmap is a drawable pixel buffer.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap creates an empty bitmap of the given bounds.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite selects the active composition operator.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a new composition operation, defaulting to source-over.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstIn,
		},
	}
}

// Set activates a composition operator. Unknown operators are ignored and the
// previously active one is retained.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Draw composites the source bitmap over dst in place using the active
// operator, with the source alpha scaled by opacity. Opacity is clamped to
// [0, 1]. The source is sampled over the destination bounds; both buffers
// are expected to share the same origin.
func (op *Composite) Draw(dst draw.Image, src *Bitmap, opacity float64) {
	opacity = utils.Max(0, utils.Min(1, opacity))
	bounds := dst.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sr, sg, sb, sa := src.Img.At(x, y).RGBA()
			dr, dg, db, da := dst.At(x, y).RGBA()

			// Normalized, alpha-premultiplied components.
			rsn := float64(sr) / 0xffff * opacity
			gsn := float64(sg) / 0xffff * opacity
			bsn := float64(sb) / 0xffff * opacity
			asn := float64(sa) / 0xffff * opacity

			rbn := float64(dr) / 0xffff
			gbn := float64(dg) / 0xffff
			bbn := float64(db) / 0xffff
			abn := float64(da) / 0xffff

			var rn, gn, bn, an float64

			// applying the alpha composition formula
			switch op.current {
			case Copy:
				rn = rsn
				gn = gsn
				bn = bsn
				an = asn
			case SrcOver:
				rn = rsn + rbn*(1-asn)
				gn = gsn + gbn*(1-asn)
				bn = bsn + bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstIn:
				rn = rbn * asn
				gn = gbn * asn
				bn = bbn * asn
				an = abn * asn
			}

			dst.Set(x, y, color.RGBA64{
				R: uint16(rn * 0xffff),
				G: uint16(gn * 0xffff),
				B: uint16(bn * 0xffff),
				A: uint16(an * 0xffff),
			})
		}
	}
}
