package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Dark blue-gray
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTextShadow = color.RGBA{0, 0, 0, 200}
)

const (
	textScale = 2.0
	// mousePointer is the pointer id used for the mouse; touch ids are offset past it
	mousePointer = 0
	touchPointer = 1
)
