package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillLabelRGBA colours each labelled cell with palette[label % len(palette)]
// and every negative label with off.
func fillLabelRGBA(buf []byte, labels []int, palette []color.RGBA, off color.RGBA) {
	for i, label := range labels {
		col := off
		if label >= 0 && len(palette) > 0 {
			col = palette[label%len(palette)]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// CommunityPalette returns n visually distinct opaque colours spread around
// the hue wheel.
func CommunityPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		// Step the hue by the golden ratio.
		h := float64(i) * 0.618033988749895
		h -= float64(int(h))
		palette[i] = hsvToRGBA(h, 0.65, 0.95)
	}
	return palette
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	h6 := h * 6
	sector := int(h6) % 6
	f := h6 - float64(int(h6))
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}
