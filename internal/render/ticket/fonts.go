package ticket

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// The Go fonts ship with the x/image module, so tickets render
// without any font assets on disk.
var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		const op = "render.ticket.loadFonts"

		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("%s:%w", op, fontsErr)
			return
		}

		boldFont, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("%s:%w", op, fontsErr)
		}
	})

	return fontsErr
}

func newFace(bold bool, size float64) (font.Face, error) {
	const op = "render.ticket.newFace"

	if err := loadFonts(); err != nil {
		return nil, err
	}

	src := regularFont
	if bold {
		src = boldFont
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return face, nil
}
