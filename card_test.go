package cardgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvas_WrapShouldRespectMaxWidth(t *testing.T) {
	assert := assert.New(t)

	cv := newCanvas(400, 100)
	face := regularFace(20)
	maxWidth := 180.0

	bio := "Gopher at large, collecting tiny mechanical keyboards and very long walks on very short piers"
	lines := cv.wrap(bio, face, maxWidth)
	assert.NotEmpty(lines)

	for _, line := range lines {
		w, _ := cv.dc.MeasureString(line)
		if strings.Contains(line, " ") {
			assert.LessOrEqual(w, maxWidth, "line %q overflows the column", line)
		}
	}

	// Every word survives the wrap in order.
	assert.Equal(strings.Join(strings.Fields(bio), " "), strings.Join(lines, " "))
}

func TestCanvas_WrapShouldPassThroughOversizedWord(t *testing.T) {
	assert := assert.New(t)

	cv := newCanvas(400, 100)
	face := regularFace(20)

	word := "Donaudampfschifffahrtsgesellschaftskapitän"
	w, _ := cv.dc.MeasureString(word)
	assert.Greater(w, 60.0)

	lines := cv.wrap("a "+word+" z", face, 60)
	assert.Contains(lines, word)
}

func TestCanvas_WrapShouldFlushFinalPartialLine(t *testing.T) {
	assert := assert.New(t)

	cv := newCanvas(400, 100)
	lines := cv.wrap("one two three", regularFace(20), 10000)

	assert.Equal([]string{"one two three"}, lines)
}

func TestCanvas_RoundCornersShouldClearCornerPixels(t *testing.T) {
	assert := assert.New(t)

	cv := newCanvas(100, 100)
	cv.fillBackground("#FF0000")
	cv.roundCorners(20)

	img := cv.dc.Image()

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(a, "corner pixel should be masked out")

	_, _, _, a = img.At(50, 50).RGBA()
	assert.Equal(uint32(0xffff), a, "center pixel should stay opaque")
}
