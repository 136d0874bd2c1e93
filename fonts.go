package cardgen

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The cards render with the embedded Go fonts, so no font files need to be
// shipped or configured. The TTF data is parsed once and faces are derived
// per point size on demand.
var (
	fontOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func loadFonts() {
	fontOnce.Do(func() {
		var err error
		regularFont, err = truetype.Parse(goregular.TTF)
		if err != nil {
			panic("cardgen: unable to parse the embedded regular font: " + err.Error())
		}
		boldFont, err = truetype.Parse(gobold.TTF)
		if err != nil {
			panic("cardgen: unable to parse the embedded bold font: " + err.Error())
		}
	})
}

// regularFace derives a regular font face at the given point size.
func regularFace(size float64) font.Face {
	loadFonts()
	return truetype.NewFace(regularFont, &truetype.Options{Size: size})
}

// boldFace derives a bold font face at the given point size.
func boldFace(size float64) font.Face {
	loadFonts()
	return truetype.NewFace(boldFont, &truetype.Options{Size: size})
}
