package ui

import "image/color"

var (
	colBG       = color.RGBA{20, 20, 30, 255}
	colGridLine = color.RGBA{60, 60, 60, 255}
	colCellFill = color.RGBA{70, 110, 180, 255}

	colBlock     = color.RGBA{200, 160, 40, 255}
	colBlockDrag = color.RGBA{240, 200, 80, 255}

	colShadowOK  = color.RGBA{40, 200, 40, 120}
	colShadowBad = color.RGBA{200, 40, 40, 120}

	colButtonFill   = color.RGBA{40, 40, 40, 255}
	colButtonBorder = color.RGBA{240, 240, 240, 255}
)
