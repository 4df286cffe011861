package nes

// Unofficial (undocumented) opcodes. These exist because the NMOS 6502's
// decode PLA is incomplete, not because anyone designed them; some of their
// behaviors (AHX/TAS/SHX/SHY/XAA/LAX immediate) are chip-instance-dependent
// in real hardware and are implemented here via the commonly accepted
// "magic constant" approximation rather than modeled transistor-for-transistor.

func (c *cpu) alr(value byte) {
	c.a &= value
	c.a = c.lsrDo(c.a)
}

func (c *cpu) anc(value byte) {
	c.a &= value
	c.znUpdate(c.a)
	c.fc = c.fn
}

func (c *cpu) arr(value byte) {
	c.a &= value
	c.a = c.rorDo(c.a)
	c.fc = c.a&0x40 != 0
	c.fv = (c.a&0x40 != 0) != (c.a&0x20 != 0)
}

func (c *cpu) axs(value byte) {
	result := uint(c.a&c.x) - uint(value)
	c.fc = result&0x100 == 0
	c.x = byte(result)
	c.znUpdate(c.x)
}

func (c *cpu) laxLoad(value byte) {
	c.a = value
	c.x = value
	c.znUpdate(c.a)
}

func (c *cpu) sax() byte { return c.a & c.x }

func (c *cpu) sloOp(av addrValue) {
	av.value = c.aslDo(av.value)
	c.avWrite(av)
	c.a |= av.value
	c.znUpdate(c.a)
}

func (c *cpu) rlaOp(av addrValue) {
	av.value = c.rolDo(av.value)
	c.avWrite(av)
	c.a &= av.value
	c.znUpdate(c.a)
}

func (c *cpu) sreOp(av addrValue) {
	av.value = c.lsrDo(av.value)
	c.avWrite(av)
	c.a ^= av.value
	c.znUpdate(c.a)
}

func (c *cpu) rraOp(av addrValue) {
	av.value = c.rorDo(av.value)
	c.avWrite(av)
	c.adc(av.value)
}

func (c *cpu) dcpOp(av addrValue) {
	av.value = c.decDo(av.value)
	c.avWrite(av)
	c.cmpDo(c.a, av.value)
}

func (c *cpu) iscOp(av addrValue) {
	av.value = c.incDo(av.value)
	c.avWrite(av)
	c.sbc(av.value)
}

func (c *cpu) lasOp(av addrValue) {
	c.s &= av.value
	c.a = c.s
	c.x = c.s
	c.znUpdate(c.a)
}

// ahxValue computes the A & X & (high-byte-of-address + 1) store value
// shared by AHX (abs,Y / (ind),Y) and TAS. SHX and SHY use the same
// high-byte term but AND it with X or Y alone.
func (c *cpu) ahxValue(addr uint16) byte {
	return c.a & c.x & (byte(addr>>8) + 1)
}

func (c *cpu) tas(arg uint16) {
	addr := c.addrABYWrite(arg)
	c.s = c.a & c.x
	c.write8(addr, c.ahxValue(addr))
}

func (c *cpu) shx(arg uint16) {
	addr := c.addrABYWrite(arg)
	c.write8(addr, c.x&(byte(addr>>8)+1))
}

func (c *cpu) shy(arg uint16) {
	addr := c.addrABXWrite(arg)
	c.write8(addr, c.y&(byte(addr>>8)+1))
}

func (c *cpu) laxIm(value byte) {
	c.a = (c.a | 0xFF) & value
	c.x = c.a
	c.znUpdate(c.a)
}

func (c *cpu) xaa(value byte) {
	c.a = (c.a | 0xEE) & c.x & value
	c.znUpdate(c.a)
}

// opKIL halts the CPU. Real hardware requires a reset line pulse to recover;
// the emulator models that by leaving jammed set until hardReset/softReset.
func opKIL(c *cpu, arg uint16) { c.kil() }

// NOP variants still perform their addressing mode's bus reads (and the
// page-cross extra cycle for abs,X) even though the fetched byte is unused.
func opNopImplied(c *cpu, arg uint16) {}
func opNopImm(c *cpu, arg uint16)     {}
func opNopZp(c *cpu, arg uint16)      { c.ldZP(arg) }
func opNopZpX(c *cpu, arg uint16)     { c.ldZPX(arg) }
func opNopAb(c *cpu, arg uint16)      { c.ldAB(arg) }
func opNopAbX(c *cpu, arg uint16)     { c.ldABX(arg) }

// --- table-bound entries ---

func opALRIm(c *cpu, arg uint16)  { c.alr(byte(arg)) }
func opANCIm(c *cpu, arg uint16)  { c.anc(byte(arg)) }
func opARRIm(c *cpu, arg uint16)  { c.arr(byte(arg)) }
func opAXSIm(c *cpu, arg uint16)  { c.axs(byte(arg)) }
func opLAXImU(c *cpu, arg uint16) { c.laxIm(byte(arg)) }
func opXAAIm(c *cpu, arg uint16)  { c.xaa(byte(arg)) }

func opLAXZp(c *cpu, arg uint16)  { c.laxLoad(c.ldZP(arg)) }
func opLAXZpY(c *cpu, arg uint16) { c.laxLoad(c.ldZPY(arg)) }
func opLAXAb(c *cpu, arg uint16)  { c.laxLoad(c.ldAB(arg)) }
func opLAXAbY(c *cpu, arg uint16) { c.laxLoad(c.ldABY(arg)) }
func opLAXIx(c *cpu, arg uint16)  { c.laxLoad(c.ldIX(arg)) }
func opLAXIy(c *cpu, arg uint16)  { c.laxLoad(c.ldIY(arg)) }

func opSAXZp(c *cpu, arg uint16)  { c.stZP(arg, c.sax()) }
func opSAXZpY(c *cpu, arg uint16) { c.stZPY(arg, c.sax()) }
func opSAXAb(c *cpu, arg uint16)  { c.stAB(arg, c.sax()) }
func opSAXIx(c *cpu, arg uint16)  { c.stIX(arg, c.sax()) }

func opSLOZp(c *cpu, arg uint16)  { c.sloOp(c.rmwZP(arg)) }
func opSLOZpX(c *cpu, arg uint16) { c.sloOp(c.rmwZPX(arg)) }
func opSLOAb(c *cpu, arg uint16)  { c.sloOp(c.rmwAB(arg)) }
func opSLOAbX(c *cpu, arg uint16) { c.sloOp(c.rmwABX(arg)) }
func opSLOAbY(c *cpu, arg uint16) { c.sloOp(c.rmwABY(arg)) }
func opSLOIx(c *cpu, arg uint16)  { c.sloOp(c.rmwIX(arg)) }
func opSLOIy(c *cpu, arg uint16)  { c.sloOp(c.rmwIY(arg)) }

func opRLAZp(c *cpu, arg uint16)  { c.rlaOp(c.rmwZP(arg)) }
func opRLAZpX(c *cpu, arg uint16) { c.rlaOp(c.rmwZPX(arg)) }
func opRLAAb(c *cpu, arg uint16)  { c.rlaOp(c.rmwAB(arg)) }
func opRLAAbX(c *cpu, arg uint16) { c.rlaOp(c.rmwABX(arg)) }
func opRLAAbY(c *cpu, arg uint16) { c.rlaOp(c.rmwABY(arg)) }
func opRLAIx(c *cpu, arg uint16)  { c.rlaOp(c.rmwIX(arg)) }
func opRLAIy(c *cpu, arg uint16)  { c.rlaOp(c.rmwIY(arg)) }

func opSREZp(c *cpu, arg uint16)  { c.sreOp(c.rmwZP(arg)) }
func opSREZpX(c *cpu, arg uint16) { c.sreOp(c.rmwZPX(arg)) }
func opSREAb(c *cpu, arg uint16)  { c.sreOp(c.rmwAB(arg)) }
func opSREAbX(c *cpu, arg uint16) { c.sreOp(c.rmwABX(arg)) }
func opSREAbY(c *cpu, arg uint16) { c.sreOp(c.rmwABY(arg)) }
func opSREIx(c *cpu, arg uint16)  { c.sreOp(c.rmwIX(arg)) }
func opSREIy(c *cpu, arg uint16)  { c.sreOp(c.rmwIY(arg)) }

func opRRAZp(c *cpu, arg uint16)  { c.rraOp(c.rmwZP(arg)) }
func opRRAZpX(c *cpu, arg uint16) { c.rraOp(c.rmwZPX(arg)) }
func opRRAAb(c *cpu, arg uint16)  { c.rraOp(c.rmwAB(arg)) }
func opRRAAbX(c *cpu, arg uint16) { c.rraOp(c.rmwABX(arg)) }
func opRRAAbY(c *cpu, arg uint16) { c.rraOp(c.rmwABY(arg)) }
func opRRAIx(c *cpu, arg uint16)  { c.rraOp(c.rmwIX(arg)) }
func opRRAIy(c *cpu, arg uint16)  { c.rraOp(c.rmwIY(arg)) }

func opDCPZp(c *cpu, arg uint16)  { c.dcpOp(c.rmwZP(arg)) }
func opDCPZpX(c *cpu, arg uint16) { c.dcpOp(c.rmwZPX(arg)) }
func opDCPAb(c *cpu, arg uint16)  { c.dcpOp(c.rmwAB(arg)) }
func opDCPAbX(c *cpu, arg uint16) { c.dcpOp(c.rmwABX(arg)) }
func opDCPAbY(c *cpu, arg uint16) { c.dcpOp(c.rmwABY(arg)) }
func opDCPIx(c *cpu, arg uint16)  { c.dcpOp(c.rmwIX(arg)) }
func opDCPIy(c *cpu, arg uint16)  { c.dcpOp(c.rmwIY(arg)) }

func opISCZp(c *cpu, arg uint16)  { c.iscOp(c.rmwZP(arg)) }
func opISCZpX(c *cpu, arg uint16) { c.iscOp(c.rmwZPX(arg)) }
func opISCAb(c *cpu, arg uint16)  { c.iscOp(c.rmwAB(arg)) }
func opISCAbX(c *cpu, arg uint16) { c.iscOp(c.rmwABX(arg)) }
func opISCAbY(c *cpu, arg uint16) { c.iscOp(c.rmwABY(arg)) }
func opISCIx(c *cpu, arg uint16)  { c.iscOp(c.rmwIX(arg)) }
func opISCIy(c *cpu, arg uint16)  { c.iscOp(c.rmwIY(arg)) }

func opLASAbY(c *cpu, arg uint16) { c.lasOp(c.rmwABY(arg)) }

func opAHXAbY(c *cpu, arg uint16) {
	addr := c.addrABYWrite(arg)
	c.write8(addr, c.ahxValue(addr))
}

func opAHXIy(c *cpu, arg uint16) {
	addr := c.addrIYWrite(arg)
	c.write8(addr, c.ahxValue(addr))
}

func opTASAbY(c *cpu, arg uint16) { c.tas(arg) }
func opSHXAbY(c *cpu, arg uint16) { c.shx(arg) }
func opSHYAbX(c *cpu, arg uint16) { c.shy(arg) }

func opSBCAlias(c *cpu, arg uint16) { c.sbc(byte(arg)) }
