package nes

// Official 6502 opcode semantics. Each function receives the already
// zero/one/two-byte-extended operand as delivered by fetchOp; addressing
// (and its side effects/extra cycles) happens inside, via the cpu_addressing
// helpers, exactly where the real bus access would occur.

func (c *cpu) lda(value byte) {
	c.a = value
	c.znUpdate(c.a)
}

func (c *cpu) ldx(value byte) {
	c.x = value
	c.znUpdate(c.x)
}

func (c *cpu) ldy(value byte) {
	c.y = value
	c.znUpdate(c.y)
}

func (c *cpu) adc(value byte) {
	result := uint(c.a) + uint(value)
	if c.fc {
		result++
	}

	c.fv = (((c.a^value)&0x80)^0x80) != 0 && ((uint(c.a)^result)&0x80) != 0
	c.fc = result&0x100 != 0

	c.a = byte(result)
	c.znUpdate(c.a)
}

func (c *cpu) sbc(value byte) {
	borrow := uint(0)
	if !c.fc {
		borrow = 1
	}
	result := uint(c.a) - uint(value) - borrow

	c.fc = result&0x100 == 0
	c.fv = (uint(c.a)^uint(value))&(uint(c.a)^result)&0x80 != 0

	c.a = byte(result)
	c.znUpdate(c.a)
}

func (c *cpu) ora(value byte) {
	c.a |= value
	c.znUpdate(c.a)
}

func (c *cpu) and(value byte) {
	c.a &= value
	c.znUpdate(c.a)
}

func (c *cpu) eor(value byte) {
	c.a ^= value
	c.znUpdate(c.a)
}

func (c *cpu) aslDo(value byte) byte {
	c.fc = value&0x80 != 0
	value <<= 1
	c.znUpdate(value)
	return value
}

func (c *cpu) aslAcc(arg uint16) { c.a = c.aslDo(c.a) }

func (c *cpu) aslMem(av addrValue) {
	av.value = c.aslDo(av.value)
	c.avWrite(av)
}

func (c *cpu) lsrDo(value byte) byte {
	c.fc = value&1 != 0
	value >>= 1
	c.znUpdate(value)
	return value
}

func (c *cpu) lsrAcc(arg uint16) { c.a = c.lsrDo(c.a) }

func (c *cpu) lsrMem(av addrValue) {
	av.value = c.lsrDo(av.value)
	c.avWrite(av)
}

func (c *cpu) rolDo(value byte) byte {
	carryOut := value&0x80 != 0
	value <<= 1
	if c.fc {
		value |= 1
	}
	c.fc = carryOut
	c.znUpdate(value)
	return value
}

func (c *cpu) rolAcc(arg uint16) { c.a = c.rolDo(c.a) }

func (c *cpu) rolMem(av addrValue) {
	av.value = c.rolDo(av.value)
	c.avWrite(av)
}

func (c *cpu) rorDo(value byte) byte {
	carryOut := value&1 != 0
	value >>= 1
	if c.fc {
		value |= 0x80
	}
	c.fc = carryOut
	c.znUpdate(value)
	return value
}

func (c *cpu) rorAcc(arg uint16) { c.a = c.rorDo(c.a) }

func (c *cpu) rorMem(av addrValue) {
	av.value = c.rorDo(av.value)
	c.avWrite(av)
}

func (c *cpu) bit(value byte) {
	c.fz = c.a&value == 0
	c.fv = value&0x40 != 0
	c.fn = value&0x80 != 0
}

func (c *cpu) incDo(value byte) byte {
	value++
	c.znUpdate(value)
	return value
}

func (c *cpu) incMem(av addrValue) {
	av.value = c.incDo(av.value)
	c.avWrite(av)
}

func (c *cpu) decDo(value byte) byte {
	value--
	c.znUpdate(value)
	return value
}

func (c *cpu) decMem(av addrValue) {
	av.value = c.decDo(av.value)
	c.avWrite(av)
}

func (c *cpu) cmpDo(lhs, rhs byte) {
	result := uint(lhs) - uint(rhs)
	c.fc = result&0x100 == 0
	c.znUpdate(byte(result))
}

func (c *cpu) cmp(value byte) { c.cmpDo(c.a, value) }
func (c *cpu) cpx(value byte) { c.cmpDo(c.x, value) }
func (c *cpu) cpy(value byte) { c.cmpDo(c.y, value) }

func (c *cpu) branch(arg uint16, cond bool) {
	if !cond {
		return
	}
	c.delay(1)
	disp := int8(byte(arg))
	dst := uint16(int32(c.pc) + int32(disp))
	if (c.pc^dst)&0x100 != 0 {
		c.delay(1)
	}
	c.pc = dst
}

func (c *cpu) jmpAB(arg uint16)  { c.pc = arg }
func (c *cpu) jmpIND(arg uint16) { c.pc = c.read16InPage(arg) }

func (c *cpu) jsr(arg uint16) {
	c.push16(c.pc - 1)
	c.pc = arg
}

func (c *cpu) rts() {
	c.pc = c.pop16()
	c.pc++
}

func (c *cpu) rti() {
	c.popP()
	c.pc = c.pop16()
}

func (c *cpu) brk() {
	c.push16(c.pc)
	c.pushP(true)
	c.pc = c.read16(vecIRQ)
	c.fi = true
}

func (c *cpu) kil() {
	c.delay(0xFF)
	c.jammed = true
	c.pc--
}

// --- table-bound entries: one function per (mnemonic, addressing mode). ---

func opLDAIm(c *cpu, arg uint16)  { c.lda(byte(arg)) }
func opLDAZp(c *cpu, arg uint16)  { c.lda(c.ldZP(arg)) }
func opLDAZpX(c *cpu, arg uint16) { c.lda(c.ldZPX(arg)) }
func opLDAAb(c *cpu, arg uint16)  { c.lda(c.ldAB(arg)) }
func opLDAAbX(c *cpu, arg uint16) { c.lda(c.ldABX(arg)) }
func opLDAAbY(c *cpu, arg uint16) { c.lda(c.ldABY(arg)) }
func opLDAIx(c *cpu, arg uint16)  { c.lda(c.ldIX(arg)) }
func opLDAIy(c *cpu, arg uint16)  { c.lda(c.ldIY(arg)) }

func opLDXIm(c *cpu, arg uint16)  { c.ldx(byte(arg)) }
func opLDXZp(c *cpu, arg uint16)  { c.ldx(c.ldZP(arg)) }
func opLDXZpY(c *cpu, arg uint16) { c.ldx(c.ldZPY(arg)) }
func opLDXAb(c *cpu, arg uint16)  { c.ldx(c.ldAB(arg)) }
func opLDXAbY(c *cpu, arg uint16) { c.ldx(c.ldABY(arg)) }

func opLDYIm(c *cpu, arg uint16)  { c.ldy(byte(arg)) }
func opLDYZp(c *cpu, arg uint16)  { c.ldy(c.ldZP(arg)) }
func opLDYZpX(c *cpu, arg uint16) { c.ldy(c.ldZPX(arg)) }
func opLDYAb(c *cpu, arg uint16)  { c.ldy(c.ldAB(arg)) }
func opLDYAbX(c *cpu, arg uint16) { c.ldy(c.ldABX(arg)) }

func opSTAZp(c *cpu, arg uint16)  { c.stZP(arg, c.a) }
func opSTAZpX(c *cpu, arg uint16) { c.stZPX(arg, c.a) }
func opSTAAb(c *cpu, arg uint16)  { c.stAB(arg, c.a) }
func opSTAAbX(c *cpu, arg uint16) { c.stABX(arg, c.a) }
func opSTAAbY(c *cpu, arg uint16) { c.stABY(arg, c.a) }
func opSTAIx(c *cpu, arg uint16)  { c.stIX(arg, c.a) }
func opSTAIy(c *cpu, arg uint16)  { c.stIY(arg, c.a) }

func opSTXZp(c *cpu, arg uint16)  { c.stZP(arg, c.x) }
func opSTXZpY(c *cpu, arg uint16) { c.stZPY(arg, c.x) }
func opSTXAb(c *cpu, arg uint16)  { c.stAB(arg, c.x) }

func opSTYZp(c *cpu, arg uint16)  { c.stZP(arg, c.y) }
func opSTYZpX(c *cpu, arg uint16) { c.stZPX(arg, c.y) }
func opSTYAb(c *cpu, arg uint16)  { c.stAB(arg, c.y) }

func opTAX(c *cpu, arg uint16) { c.x = c.a; c.znUpdate(c.x) }
func opTXA(c *cpu, arg uint16) { c.a = c.x; c.znUpdate(c.a) }
func opTAY(c *cpu, arg uint16) { c.y = c.a; c.znUpdate(c.y) }
func opTYA(c *cpu, arg uint16) { c.a = c.y; c.znUpdate(c.a) }
func opTSX(c *cpu, arg uint16) { c.x = c.s; c.znUpdate(c.x) }
func opTXS(c *cpu, arg uint16) { c.s = c.x }

func opADCIm(c *cpu, arg uint16)  { c.adc(byte(arg)) }
func opADCZp(c *cpu, arg uint16)  { c.adc(c.ldZP(arg)) }
func opADCZpX(c *cpu, arg uint16) { c.adc(c.ldZPX(arg)) }
func opADCAb(c *cpu, arg uint16)  { c.adc(c.ldAB(arg)) }
func opADCAbX(c *cpu, arg uint16) { c.adc(c.ldABX(arg)) }
func opADCAbY(c *cpu, arg uint16) { c.adc(c.ldABY(arg)) }
func opADCIx(c *cpu, arg uint16)  { c.adc(c.ldIX(arg)) }
func opADCIy(c *cpu, arg uint16)  { c.adc(c.ldIY(arg)) }

func opSBCIm(c *cpu, arg uint16)  { c.sbc(byte(arg)) }
func opSBCZp(c *cpu, arg uint16)  { c.sbc(c.ldZP(arg)) }
func opSBCZpX(c *cpu, arg uint16) { c.sbc(c.ldZPX(arg)) }
func opSBCAb(c *cpu, arg uint16)  { c.sbc(c.ldAB(arg)) }
func opSBCAbX(c *cpu, arg uint16) { c.sbc(c.ldABX(arg)) }
func opSBCAbY(c *cpu, arg uint16) { c.sbc(c.ldABY(arg)) }
func opSBCIx(c *cpu, arg uint16)  { c.sbc(c.ldIX(arg)) }
func opSBCIy(c *cpu, arg uint16)  { c.sbc(c.ldIY(arg)) }

func opORAIm(c *cpu, arg uint16)  { c.ora(byte(arg)) }
func opORAZp(c *cpu, arg uint16)  { c.ora(c.ldZP(arg)) }
func opORAZpX(c *cpu, arg uint16) { c.ora(c.ldZPX(arg)) }
func opORAAb(c *cpu, arg uint16)  { c.ora(c.ldAB(arg)) }
func opORAAbX(c *cpu, arg uint16) { c.ora(c.ldABX(arg)) }
func opORAAbY(c *cpu, arg uint16) { c.ora(c.ldABY(arg)) }
func opORAIx(c *cpu, arg uint16)  { c.ora(c.ldIX(arg)) }
func opORAIy(c *cpu, arg uint16)  { c.ora(c.ldIY(arg)) }

func opANDIm(c *cpu, arg uint16)  { c.and(byte(arg)) }
func opANDZp(c *cpu, arg uint16)  { c.and(c.ldZP(arg)) }
func opANDZpX(c *cpu, arg uint16) { c.and(c.ldZPX(arg)) }
func opANDAb(c *cpu, arg uint16)  { c.and(c.ldAB(arg)) }
func opANDAbX(c *cpu, arg uint16) { c.and(c.ldABX(arg)) }
func opANDAbY(c *cpu, arg uint16) { c.and(c.ldABY(arg)) }
func opANDIx(c *cpu, arg uint16)  { c.and(c.ldIX(arg)) }
func opANDIy(c *cpu, arg uint16)  { c.and(c.ldIY(arg)) }

func opEORIm(c *cpu, arg uint16)  { c.eor(byte(arg)) }
func opEORZp(c *cpu, arg uint16)  { c.eor(c.ldZP(arg)) }
func opEORZpX(c *cpu, arg uint16) { c.eor(c.ldZPX(arg)) }
func opEORAb(c *cpu, arg uint16)  { c.eor(c.ldAB(arg)) }
func opEORAbX(c *cpu, arg uint16) { c.eor(c.ldABX(arg)) }
func opEORAbY(c *cpu, arg uint16) { c.eor(c.ldABY(arg)) }
func opEORIx(c *cpu, arg uint16)  { c.eor(c.ldIX(arg)) }
func opEORIy(c *cpu, arg uint16)  { c.eor(c.ldIY(arg)) }

func opASLAcc(c *cpu, arg uint16) { c.aslAcc(arg) }
func opLSRAcc(c *cpu, arg uint16) { c.lsrAcc(arg) }
func opROLAcc(c *cpu, arg uint16) { c.rolAcc(arg) }
func opRORAcc(c *cpu, arg uint16) { c.rorAcc(arg) }

func opASLZp(c *cpu, arg uint16)  { c.aslMem(c.rmwZP(arg)) }
func opASLZpX(c *cpu, arg uint16) { c.aslMem(c.rmwZPX(arg)) }
func opASLAb(c *cpu, arg uint16)  { c.aslMem(c.rmwAB(arg)) }
func opASLAbX(c *cpu, arg uint16) { c.aslMem(c.rmwABX(arg)) }

func opLSRZp(c *cpu, arg uint16)  { c.lsrMem(c.rmwZP(arg)) }
func opLSRZpX(c *cpu, arg uint16) { c.lsrMem(c.rmwZPX(arg)) }
func opLSRAb(c *cpu, arg uint16)  { c.lsrMem(c.rmwAB(arg)) }
func opLSRAbX(c *cpu, arg uint16) { c.lsrMem(c.rmwABX(arg)) }

func opROLZp(c *cpu, arg uint16)  { c.rolMem(c.rmwZP(arg)) }
func opROLZpX(c *cpu, arg uint16) { c.rolMem(c.rmwZPX(arg)) }
func opROLAb(c *cpu, arg uint16)  { c.rolMem(c.rmwAB(arg)) }
func opROLAbX(c *cpu, arg uint16) { c.rolMem(c.rmwABX(arg)) }

func opRORZp(c *cpu, arg uint16)  { c.rorMem(c.rmwZP(arg)) }
func opRORZpX(c *cpu, arg uint16) { c.rorMem(c.rmwZPX(arg)) }
func opRORAb(c *cpu, arg uint16)  { c.rorMem(c.rmwAB(arg)) }
func opRORAbX(c *cpu, arg uint16) { c.rorMem(c.rmwABX(arg)) }

func opBITZp(c *cpu, arg uint16) { c.bit(c.ldZP(arg)) }
func opBITAb(c *cpu, arg uint16) { c.bit(c.ldAB(arg)) }

func opINCZp(c *cpu, arg uint16)  { c.incMem(c.rmwZP(arg)) }
func opINCZpX(c *cpu, arg uint16) { c.incMem(c.rmwZPX(arg)) }
func opINCAb(c *cpu, arg uint16)  { c.incMem(c.rmwAB(arg)) }
func opINCAbX(c *cpu, arg uint16) { c.incMem(c.rmwABX(arg)) }

func opDECZp(c *cpu, arg uint16)  { c.decMem(c.rmwZP(arg)) }
func opDECZpX(c *cpu, arg uint16) { c.decMem(c.rmwZPX(arg)) }
func opDECAb(c *cpu, arg uint16)  { c.decMem(c.rmwAB(arg)) }
func opDECAbX(c *cpu, arg uint16) { c.decMem(c.rmwABX(arg)) }

func opINX(c *cpu, arg uint16) { c.x++; c.znUpdate(c.x) }
func opINY(c *cpu, arg uint16) { c.y++; c.znUpdate(c.y) }
func opDEX(c *cpu, arg uint16) { c.x--; c.znUpdate(c.x) }
func opDEY(c *cpu, arg uint16) { c.y--; c.znUpdate(c.y) }

func opCMPIm(c *cpu, arg uint16)  { c.cmp(byte(arg)) }
func opCMPZp(c *cpu, arg uint16)  { c.cmp(c.ldZP(arg)) }
func opCMPZpX(c *cpu, arg uint16) { c.cmp(c.ldZPX(arg)) }
func opCMPAb(c *cpu, arg uint16)  { c.cmp(c.ldAB(arg)) }
func opCMPAbX(c *cpu, arg uint16) { c.cmp(c.ldABX(arg)) }
func opCMPAbY(c *cpu, arg uint16) { c.cmp(c.ldABY(arg)) }
func opCMPIx(c *cpu, arg uint16)  { c.cmp(c.ldIX(arg)) }
func opCMPIy(c *cpu, arg uint16)  { c.cmp(c.ldIY(arg)) }

func opCPXIm(c *cpu, arg uint16) { c.cpx(byte(arg)) }
func opCPXZp(c *cpu, arg uint16) { c.cpx(c.ldZP(arg)) }
func opCPXAb(c *cpu, arg uint16) { c.cpx(c.ldAB(arg)) }

func opCPYIm(c *cpu, arg uint16) { c.cpy(byte(arg)) }
func opCPYZp(c *cpu, arg uint16) { c.cpy(c.ldZP(arg)) }
func opCPYAb(c *cpu, arg uint16) { c.cpy(c.ldAB(arg)) }

func opBPL(c *cpu, arg uint16) { c.branch(arg, !c.fn) }
func opBMI(c *cpu, arg uint16) { c.branch(arg, c.fn) }
func opBVC(c *cpu, arg uint16) { c.branch(arg, !c.fv) }
func opBVS(c *cpu, arg uint16) { c.branch(arg, c.fv) }
func opBCC(c *cpu, arg uint16) { c.branch(arg, !c.fc) }
func opBCS(c *cpu, arg uint16) { c.branch(arg, c.fc) }
func opBNE(c *cpu, arg uint16) { c.branch(arg, !c.fz) }
func opBEQ(c *cpu, arg uint16) { c.branch(arg, c.fz) }

func opCLC(c *cpu, arg uint16) { c.fc = false }
func opSEC(c *cpu, arg uint16) { c.fc = true }
func opCLI(c *cpu, arg uint16) { c.fi = false }
func opSEI(c *cpu, arg uint16) { c.fi = true }
func opCLD(c *cpu, arg uint16) { c.fd = false }
func opSED(c *cpu, arg uint16) { c.fd = true }
func opCLV(c *cpu, arg uint16) { c.fv = false }

func opJMPAb(c *cpu, arg uint16)  { c.jmpAB(arg) }
func opJMPInd(c *cpu, arg uint16) { c.jmpIND(arg) }
func opJSR(c *cpu, arg uint16)    { c.jsr(arg) }
func opRTS(c *cpu, arg uint16)    { c.rts() }
func opRTI(c *cpu, arg uint16)    { c.rti() }
func opBRK(c *cpu, arg uint16)    { c.brk() }

func opPHA(c *cpu, arg uint16) { c.push8(c.a) }
func opPHP(c *cpu, arg uint16) { c.pushP(true) }
func opPLA(c *cpu, arg uint16) { c.a = c.pop8(); c.znUpdate(c.a) }
func opPLP(c *cpu, arg uint16) { c.popP() }
