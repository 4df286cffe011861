package nes

// newTestNes builds a minimal 16 KiB-PRG/8 KiB-CHR cartridge suitable for
// driving the CPU/PPU/APU in isolation. The reset vector is pinned to
// $8000 so tests can lay out code starting at the first PRG byte.
func newTestNes() *Nes {
	prg := make([]byte, prgBankSize)
	chr := make([]byte, chrBankSize)

	// Reset vector -> $8000; NMI/IRQ vectors -> $8000 too (tests that care
	// override these explicitly via pokePrg).
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	prg[0x3FFA] = 0x00
	prg[0x3FFB] = 0x80
	prg[0x3FFE] = 0x00
	prg[0x3FFF] = 0x80

	n := New(prg, chr, MirrorHorizontal)
	return n
}

// pokePrg seeds program bytes directly into the cartridge's backing PRG
// array, using Mapper 0's own address-fold rule. Mapper 0's PRG is
// conceptually ROM but happens to accept the CPU write path too (real
// cartridges just ignore the write; this port's cpuMapWrite returns the
// same mapped offset as cpuMapRead), so this is exactly what a CPU write
// to $8000+ would resolve to.
func (n *Nes) pokePrg(addr uint16, data ...byte) {
	for i, b := range data {
		if mapped, ok := n.cart.mapper.cpuMapWrite(addr + uint16(i)); ok {
			n.cart.prgMem[mapped] = b
		}
	}
}
