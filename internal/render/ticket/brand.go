package ticket

import "image/color"

var (
	brandGreen     = color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF}
	brandGreenDark = color.RGBA{R: 0x05, G: 0x66, B: 0x2F, A: 0xFF}
)
