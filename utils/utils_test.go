package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldConvertHexToRGBA(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 0x72, G: 0x89, B: 0xDA, A: 0xff}, HexToRGBA("#7289DA"))
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, HexToRGBA("#fff"))
	assert.Equal(color.NRGBA{A: 0xff}, HexToRGBA("not-a-color"))
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidUrl("https://example.com/avatar.png"))
	assert.False(IsValidUrl("./avatar.png"))
	assert.False(IsValidUrl("avatar.png"))
}

func TestUtils_ShouldFormatDuration(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
}

func TestUtils_MathHelpers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(2.5, Min(2.5, 5.0))
	assert.True(Contains([]string{"copy", "src_over"}, "copy"))
	assert.False(Contains([]string{"copy"}, "xor"))
}
