package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Grass       RGB
	GrassDark   RGB
	Dirt        RGB
	DirtEdge    RGB
	StoneLight  RGB
	StoneMid    RGB
	StoneDark   RGB
	StoneMortar RGB
	WallFace    RGB
	WallShadow  RGB
	WallTop     RGB
	Battlement  RGB
	Water       RGB
	WaterDeep   RGB
	WaterFoam   RGB
	Plank       RGB
	PlankDark   RGB
	Counter     RGB
	Rug         RGB
	RugTrim     RGB
	Cobble      RGB
	CobbleDark  RGB
	AwningA     RGB
	AwningB     RGB
	Canvas      RGB
	Crate       RGB
	TrunkBark   RGB
	TrunkCut    RGB
	LeafDark    RGB
	LeafMid     RGB
	LeafLight   RGB
	ShrineStone RGB
	ShrineGlow  RGB
	BuntingA    RGB
	BuntingB    RGB
	Gold        RGB
	Bubble      RGB
	BubbleText  RGB
	NightInk    RGB
}{
	Grass:       RGB{R: 106, G: 146, B: 78},
	GrassDark:   RGB{R: 88, G: 126, B: 64},
	Dirt:        RGB{R: 146, G: 116, B: 82},
	DirtEdge:    RGB{R: 124, G: 98, B: 70},
	StoneLight:  RGB{R: 188, G: 182, B: 168},
	StoneMid:    RGB{R: 158, G: 152, B: 140},
	StoneDark:   RGB{R: 122, G: 118, B: 110},
	StoneMortar: RGB{R: 104, G: 100, B: 94},
	WallFace:    RGB{R: 142, G: 134, B: 120},
	WallShadow:  RGB{R: 98, G: 92, B: 84},
	WallTop:     RGB{R: 168, G: 160, B: 146},
	Battlement:  RGB{R: 150, G: 142, B: 128},
	Water:       RGB{R: 84, G: 140, B: 190},
	WaterDeep:   RGB{R: 58, G: 108, B: 158},
	WaterFoam:   RGB{R: 214, G: 236, B: 248},
	Plank:       RGB{R: 168, G: 128, B: 88},
	PlankDark:   RGB{R: 142, G: 106, B: 72},
	Counter:     RGB{R: 110, G: 78, B: 52},
	Rug:         RGB{R: 158, G: 62, B: 58},
	RugTrim:     RGB{R: 206, G: 168, B: 92},
	Cobble:      RGB{R: 150, G: 146, B: 138},
	CobbleDark:  RGB{R: 126, G: 122, B: 116},
	AwningA:     RGB{R: 190, G: 70, B: 64},
	AwningB:     RGB{R: 226, G: 218, B: 202},
	Canvas:      RGB{R: 222, G: 208, B: 180},
	Crate:       RGB{R: 160, G: 124, B: 80},
	TrunkBark:   RGB{R: 110, G: 82, B: 56},
	TrunkCut:    RGB{R: 196, G: 168, B: 122},
	LeafDark:    RGB{R: 56, G: 96, B: 52},
	LeafMid:     RGB{R: 74, G: 118, B: 62},
	LeafLight:   RGB{R: 98, G: 142, B: 74},
	ShrineStone: RGB{R: 172, G: 168, B: 158},
	ShrineGlow:  RGB{R: 150, G: 210, B: 255},
	BuntingA:    RGB{R: 206, G: 84, B: 76},
	BuntingB:    RGB{R: 96, G: 150, B: 198},
	Gold:        RGB{R: 236, G: 196, B: 92},
	Bubble:      RGB{R: 245, G: 245, B: 238},
	BubbleText:  RGB{R: 40, G: 40, B: 46},
	NightInk:    RGB{R: 24, G: 26, B: 38},
}
