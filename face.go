package cardgen

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"github.com/pictora/cardgen/utils"
)

// squareAvatar scales an avatar into a size×size square. Non-square sources
// are cropped to a centered square first; when a cascade classifier is
// configured the crop is centered on the strongest detected face instead of
// the image center.
func squareAvatar(img image.Image, size int, classifier string) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if classifier != "" && bounds.Dx() != bounds.Dy() {
		cropped, err := faceCrop(img, classifier)
		if err != nil {
			return nil, err
		}
		img = cropped
	}
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
}

// faceCrop crops the source to a square centered on the face with the highest
// detection quality. When no face is detected the source is returned
// unchanged and the caller falls back to a center crop.
func faceCrop(src image.Image, classifier string) (image.Image, error) {
	cascade, err := os.ReadFile(classifier)
	if err != nil {
		return nil, fmt.Errorf("unable to read the cascade classifier: %w", err)
	}

	// Unpack the binary cascade file. This will return the number of cascade
	// trees, the tree depth, the threshold and the leaf node predictions.
	faceDetector, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("error unpacking the cascade file: %v", err)
	}

	bounds := src.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()

	cParams := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     utils.Min(cols, rows),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := faceDetector.RunCascade(cParams, 0.0)
	dets = faceDetector.ClusterDetections(dets, 0.2)
	if len(dets) == 0 {
		return src, nil
	}

	best := dets[0]
	for _, det := range dets[1:] {
		if det.Q > best.Q {
			best = det
		}
	}

	// Center a square of the largest possible side on the detection,
	// clamped into the source bounds.
	side := utils.Min(cols, rows)
	x0 := utils.Min(utils.Max(best.Col-side/2, 0), cols-side)
	y0 := utils.Min(utils.Max(best.Row-side/2, 0), rows-side)

	return imaging.Crop(src, image.Rect(x0, y0, x0+side, y0+side)), nil
}
