package nes

// emulateLine drives one scanline's worth of PPU state, called once per
// scanline by Nes.EmulateFrame before the corresponding CPU dots run.
// Grounded on §4.2's startLine/doLine/endLine split and the teacher's
// javidx9-derived Ppu.clock, generalized from per-dot to per-scanline
// granularity since this port interleaves CPU and PPU at scanline
// boundaries rather than dot-by-dot.
func (p *ppu) emulateLine(line int) {
	p.scanline = line

	switch {
	case line < screenH:
		p.startLine()
		p.doLine(line)
		p.endLine()
	case line == screenH: // post-render line, nothing happens
	case line == screenH+1: // 241: vblank begins
		p.status.set(statusVBlank)
		if p.nmiEnabled() {
			p.door.triggerNmi()
		}
	case line == 261: // pre-render line
		p.status.clear(statusVBlank | statusSprite0 | statusOverflow)
		if p.renderingEnabled() {
			p.v.copyVertical(p.t)
		}
		if p.warmup > 0 {
			p.warmup--
		}
		p.oddFrame = !p.oddFrame
	}
}

// skipsDot reports whether the current (pre-render) line is one PPU dot
// short this frame, per the well-known odd-frame skip.
func (p *ppu) skipsDot() bool {
	return p.scanline == 261 && p.oddFrame && p.renderingEnabled()
}

func (p *ppu) startLine() {
	if p.renderingEnabled() {
		p.v.copyHorizontal(p.t)
	}
}

func (p *ppu) endLine() {
	if p.renderingEnabled() {
		p.v.incFineY()
	}
}

func (p *ppu) doLine(line int) {
	p.renderBgLine()
	spr0Candidate := p.renderSpriteLine(line)
	if spr0Candidate && p.mask.showBg() && p.mask.showSprites() {
		p.status.set(statusSprite0)
	}
}

// renderBgLine fills bgLine with 33 tiles' worth of background pixels
// starting at the current v, advancing v's coarse X as it goes (the real
// PPU does this one tile per 8 dots; here it happens once per scanline).
func (p *ppu) renderBgLine() {
	if !p.mask.showBg() {
		bg := p.door.readPpu(0x3F00) & 0x3F
		for i := range p.bgLine {
			p.bgLine[i] = bg | 0x80
		}
		return
	}

	v := p.v
	for tile := 0; tile < 33; tile++ {
		ntAddr := 0x2000 | uint16(v.nametable())<<10 | uint16(v.coarseY())<<5 | uint16(v.coarseX())
		tileIdx := p.door.readPpu(ntAddr)

		patBase := p.ctrl.bgPatternBase() + uint16(tileIdx)*16 + uint16(v.fineY())
		lo := p.door.readPpu(patBase)
		hi := p.door.readPpu(patBase + 8)

		attrAddr := 0x23C0 | uint16(v.nametable())<<10 | uint16(v.coarseY()>>2)<<3 | uint16(v.coarseX()>>2)
		attrByte := p.door.readPpu(attrAddr)
		shift := (v.coarseY()&0x02)<<1 | (v.coarseX() & 0x02)
		attr := (attrByte >> shift) & 0x03

		for px := 0; px < 8; px++ {
			bit := 7 - px
			pixel := (lo>>bit)&1 | ((hi>>bit)&1)<<1

			idx := tile*8 + px
			if pixel == 0 {
				p.bgLine[idx] = (p.door.readPpu(0x3F00) & 0x3F) | 0x80
			} else {
				p.bgLine[idx] = p.door.readPpu(0x3F00|uint16(attr)<<2|uint16(pixel)) & 0x3F
			}
		}

		v.incCoarseX()
	}
}

// renderSpriteLine overlays sprites onto the just-rendered background line
// and writes the combined 256 pixels to screen[line]. It returns whether
// sprite 0 produced an opaque pixel anywhere on this line (the spec's
// documented sprite-0-hit simplification: no background-opacity, no
// left-column-clip, no x=255 exclusion check).
func (p *ppu) renderSpriteLine(line int) bool {
	height := p.ctrl.spriteHeight()
	spr0 := false

	// Opaque sprite pixel already placed at this column, by priority order
	// (lower OAM index wins); line 0 never shows sprites.
	var sprPixel [screenW]byte
	var sprBehind [screenW]bool
	var sprPlaced [screenW]bool

	if p.mask.showSprites() && line != 0 {
		for i := 0; i < 64; i++ {
			s := p.oamMem.sprite(i)
			top := int(s.y) + 1
			if line < top || line >= top+height {
				continue
			}

			row := line - top
			if s.flipV() {
				row = height - 1 - row
			}

			tile := s.tile
			patBase := p.ctrl.spritePatternBase()
			if height == 16 {
				patBase = uint16(tile&1) * 0x1000
				tile &^= 1
				if row >= 8 {
					tile++
					row -= 8
				}
			}

			addr := patBase + uint16(tile)*16 + uint16(row)
			lo := p.door.readPpu(addr)
			hi := p.door.readPpu(addr + 8)
			if s.flipH() {
				lo = flipByte(lo)
				hi = flipByte(hi)
			}

			for px := 0; px < 8; px++ {
				col := int(s.x) + px
				if col < 0 || col >= screenW {
					continue
				}
				if sprPlaced[col] {
					continue
				}

				bit := 7 - px
				pixel := (lo>>uint(bit))&1 | ((hi>>uint(bit))&1)<<1
				if pixel == 0 {
					continue
				}

				if i == 0 {
					spr0 = true
				}

				sprPixel[col] = p.door.readPpu(0x3F10|uint16(s.paletteHi())<<2|uint16(pixel)) & 0x3F
				sprBehind[col] = s.behindBg()
				sprPlaced[col] = true
			}
		}
	}

	for x := 0; x < screenW; x++ {
		bg := p.bgLine[x+int(p.x)]
		bgOpaque := bg&0x80 == 0

		out := bg & 0x3F
		if sprPlaced[x] && (!sprBehind[x] || !bgOpaque) {
			out = sprPixel[x]
		}
		p.screen[line*screenW+x] = out
	}

	return spr0
}
