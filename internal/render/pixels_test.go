package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillLabelRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 10, A: 255}, {G: 20, A: 255}}
	off := color.RGBA{B: 5, A: 255}
	buf := make([]byte, 16)
	fillLabelRGBA(buf, []int{-1, 0, 1, 2}, palette, off)
	want := []byte{
		0, 0, 5, 255,
		10, 0, 0, 255,
		0, 20, 0, 255,
		10, 0, 0, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestCommunityPalette(t *testing.T) {
	if CommunityPalette(0) != nil {
		t.Fatal("empty palette expected for n=0")
	}
	p := CommunityPalette(12)
	if len(p) != 12 {
		t.Fatalf("len = %d, want 12", len(p))
	}
	for i, c := range p {
		if c.A != 255 {
			t.Fatalf("colour %d not opaque: %+v", i, c)
		}
		if i > 0 && c == p[i-1] {
			t.Fatalf("colours %d and %d are identical", i-1, i)
		}
	}
}
