package raycast

// Wall glyphs from nearest to farthest, and their darker Y-side variants.
const (
	GlyphNear    = '#'
	GlyphMid     = 'X'
	GlyphFar     = 'x'
	GlyphDistant = '.'
	GlyphVoid    = ' '

	GlyphNearDark = 'M'
	GlyphFarDark  = '-'

	GlyphFloor = ','
)

// floorBand is the fraction of screen height below which floor rows stay blank.
const floorBand = 0.75

// Shade picks the wall glyph for a distance, darkening Y-side hits one tier.
func Shade(distance float64, side Side) rune {
	var shade rune
	switch {
	case distance <= 1:
		shade = GlyphNear
	case distance < 2:
		shade = GlyphMid
	case distance < 3:
		shade = GlyphFar
	case distance < 5:
		shade = GlyphDistant
	default:
		shade = GlyphVoid
	}

	if side == SideY {
		switch shade {
		case GlyphNear:
			shade = GlyphNearDark
		case GlyphMid:
			shade = GlyphFar
		case GlyphFar:
			shade = GlyphFarDark
		}
	}
	return shade
}

// SliceHeight returns the projected wall height in rows.
// Non-positive distances draw a full-height column.
func SliceHeight(distance float64, screenHeight int) float64 {
	if distance > 0 {
		return float64(screenHeight) / distance
	}
	return float64(screenHeight)
}

// SliceExtent returns the first and last rows of the wall slice, clamped to the screen.
func SliceExtent(distance float64, screenHeight int) (start, end int) {
	// Anything taller than the screen covers every row once centred.
	height := SliceHeight(distance, screenHeight)
	if limit := float64(4 * screenHeight); height > limit {
		height = limit
	}
	lineHeight := int(height)

	start = -lineHeight/2 + screenHeight/2
	if start < 0 {
		start = 0
	}
	end = lineHeight/2 + screenHeight/2
	if end >= screenHeight {
		end = screenHeight - 1
	}
	return start, end
}

// FloorGlyph returns the glyph for a floor row below the wall slice.
func FloorGlyph(row, screenHeight int) rune {
	if float64(row) > float64(screenHeight)*floorBand {
		return GlyphFloor
	}
	return GlyphVoid
}

// DrawColumn writes one full column of the frame: sky, wall slice, floor.
func DrawColumn(fb *FrameBuffer, column int, hit RayHit) {
	h := fb.Height()
	start, end := SliceExtent(hit.Distance, h)
	shade := Shade(hit.Distance, hit.Side)

	for y := 0; y < start; y++ {
		fb.Set(column, y, GlyphVoid)
	}
	for y := start; y <= end; y++ {
		fb.Set(column, y, shade)
	}
	for y := end + 1; y < h; y++ {
		fb.Set(column, y, FloorGlyph(y, h))
	}
}
