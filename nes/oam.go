package nes

// oamSprite is one 4-byte entry in Object Attribute Memory.
type oamSprite struct {
	y         byte // sprite's top row minus one
	tile      byte // pattern memory tile index
	attribute byte // palette, priority, and flip bits
	x         byte // sprite's left column
}

func (s oamSprite) flipH() bool     { return s.attribute&0x40 != 0 }
func (s oamSprite) flipV() bool     { return s.attribute&0x80 != 0 }
func (s oamSprite) behindBg() bool  { return s.attribute&0x20 != 0 }
func (s oamSprite) paletteHi() byte { return s.attribute & 0x03 }

// oam is the 256-byte, 64-sprite primary OAM table. Adapted from the
// teacher's objectAttributeMemory: this port stores it as a flat byte
// array (matching real hardware's addressing and the OAMDATA read/write
// quirks) instead of a []oamSprite slice, and fixes copyOamEntry, which in
// the teacher's version copied through a by-value loop variable and so
// never actually wrote back to the array.
type oam [256]byte

func (o *oam) read(addr byte) byte { return o[addr] }

func (o *oam) write(addr byte, value byte) { o[addr] = value }

func (o *oam) sprite(index int) oamSprite {
	base := index * 4
	return oamSprite{
		y:         o[base],
		tile:      o[base+1],
		attribute: o[base+2],
		x:         o[base+3],
	}
}

func (o *oam) clear() {
	for i := range o {
		o[i] = 0xFF
	}
}

// dma bulk-loads 256 bytes from CPU page data into OAM, as triggered by a
// $4014 write; the caller is responsible for charging the CPU's 512-cycle
// stall via cpu.oamDmaDelay.
func (o *oam) dma(data []byte) {
	copy(o[:], data)
}
