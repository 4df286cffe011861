package nes

// opcodeArgLen is the number of operand bytes fetched after the opcode byte
// itself: 0 for implied/accumulator, 1 for immediate/zero-page/indexed
// zero-page/indirect-indexed/relative, 2 for absolute/indirect/absolute
// indexed. BRK is a documented special case: it reads one throwaway padding
// byte even though it has no real operand.
var opcodeArgLen [256]byte

// opcodeCycles is the base instruction cycle count (FCEUX's table), before
// any branch-taken or page-crossing extra cycles charged by cpu_addressing.go.
var opcodeCycles [256]byte

// opcodeExec is the full 256-entry dispatch table, built from plain functions
// that take the cpu as their first argument: no CPU instance needs to exist
// yet for the table to be built,
// so it's a package-level var initialized once at load time rather than a
// per-instance closure table.
var opcodeExec [256]func(c *cpu, arg uint16)

func init() {
	initOpcodeArgLen()
	initOpcodeCycles()
	initOpcodeExec()
}

func setLen(length byte, opcodes ...byte) {
	for _, op := range opcodes {
		opcodeArgLen[op] = length
	}
}

func initOpcodeArgLen() {
	setLen(1, 0x00) // BRK padding byte

	setLen(0,
		0x08, 0x18, 0x28, 0x38, 0x40, 0x48, 0x58, 0x60, 0x68, 0x78,
		0x88, 0x8A, 0x98, 0x9A, 0xA8, 0xAA, 0xB8, 0xBA, 0xC8, 0xCA,
		0xD8, 0xDA, 0xE8, 0xEA, 0xF8, 0xFA, 0x1A, 0x3A, 0x5A, 0x7A,
		0x0A, 0x2A, 0x4A, 0x6A,
		0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2,
	)

	setLen(1,
		0x09, 0x0B, 0x29, 0x2B, 0x49, 0x4B, 0x69, 0x6B, 0x89, 0x8B,
		0xA0, 0xA2, 0xA9, 0xAB, 0xC0, 0xC2, 0xC9, 0xCB, 0xE0, 0xE2, 0xE9, 0xEB,
		0x80, 0x82,
	)

	setLen(1,
		0x04, 0x05, 0x06, 0x07, 0x24, 0x25, 0x26, 0x27, 0x44, 0x45, 0x46, 0x47,
		0x64, 0x65, 0x66, 0x67, 0x84, 0x85, 0x86, 0x87, 0xA4, 0xA5, 0xA6, 0xA7,
		0xC4, 0xC5, 0xC6, 0xC7, 0xE4, 0xE5, 0xE6, 0xE7,
	)

	setLen(1,
		0x14, 0x15, 0x16, 0x17, 0x34, 0x35, 0x36, 0x37, 0x54, 0x55, 0x56, 0x57,
		0x74, 0x75, 0x76, 0x77, 0x94, 0x95, 0xB4, 0xB5, 0xD4, 0xD5, 0xD6, 0xD7,
		0xF4, 0xF5, 0xF6, 0xF7,
	)

	setLen(1, 0x96, 0x97, 0xB6, 0xB7)

	setLen(1, 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0)

	setLen(1,
		0x01, 0x03, 0x21, 0x23, 0x41, 0x43, 0x61, 0x63,
		0x81, 0x83, 0xA1, 0xA3, 0xC1, 0xC3, 0xE1, 0xE3,
	)

	setLen(1,
		0x11, 0x13, 0x31, 0x33, 0x51, 0x53, 0x71, 0x73,
		0x91, 0x93, 0xB1, 0xB3, 0xD1, 0xD3, 0xF1, 0xF3,
	)

	setLen(2,
		0x0C, 0x0D, 0x0E, 0x0F, 0x20, 0x2C, 0x2D, 0x2E, 0x2F,
		0x4C, 0x4D, 0x4E, 0x4F, 0x6D, 0x6E, 0x6F,
		0x8C, 0x8D, 0x8E, 0x8F, 0xAC, 0xAD, 0xAE, 0xAF,
		0xCC, 0xCD, 0xCE, 0xCF, 0xEC, 0xED, 0xEE, 0xEF,
	)

	setLen(2, 0x6C)

	setLen(2,
		0x1C, 0x1D, 0x1E, 0x1F, 0x3C, 0x3D, 0x3E, 0x3F,
		0x5C, 0x5D, 0x5E, 0x5F, 0x7C, 0x7D, 0x7E, 0x7F,
		0x9C, 0x9D, 0xBC, 0xBD, 0xDC, 0xDD, 0xDE, 0xDF, 0xFC, 0xFD, 0xFE, 0xFF,
	)

	setLen(2,
		0x19, 0x1B, 0x39, 0x3B, 0x59, 0x5B, 0x79, 0x7B,
		0x99, 0x9B, 0x9E, 0x9F, 0xB9, 0xBB, 0xBE, 0xBF, 0xD9, 0xDB, 0xF9, 0xFB,
	)
}

func setCycle(cycles byte, opcodes ...byte) {
	for _, op := range opcodes {
		opcodeCycles[op] = cycles
	}
}

func initOpcodeCycles() {
	setCycle(2,
		0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2, // KIL
		0x09, 0x29, 0x49, 0x69, 0xA0, 0xA2, 0xA9, 0xC0, 0xC9, 0xE0, 0xE9,
		0x0B, 0x2B, 0x4B, 0x6B, 0x8B, 0xAB, 0xCB, 0xEB, 0x80, 0x82, 0x89, 0xC2, 0xE2,
		0x0A, 0x2A, 0x4A, 0x6A,
		0x18, 0x38, 0x58, 0x78, 0xB8, 0xD8, 0xF8,
		0x88, 0x8A, 0x98, 0x9A, 0xA8, 0xAA, 0xBA, 0xC8, 0xCA, 0xE8,
		0xEA, 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA,
		0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0,
	)

	setCycle(3,
		0x04, 0x44, 0x64,
		0x05, 0x25, 0x45, 0x65, 0x85,
		0x84, 0x86, 0x24,
		0xA4, 0xA5, 0xA6, 0xA7,
		0xC4, 0xC5, 0xE4, 0xE5,
		0x87,
		0x08, 0x48, 0x4C,
	)

	setCycle(4,
		0x0C,
		0x0D, 0x2D, 0x4D, 0x6D, 0x8D,
		0x8C, 0x8E,
		0xAC, 0xAD, 0xAE, 0xAF,
		0xCC, 0xCD, 0xEC, 0xED,
		0x2C, 0x8F,
		0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4,
		0x15, 0x35, 0x55, 0x75, 0x95,
		0x94, 0x96,
		0xB4, 0xB5, 0xB6, 0xB7,
		0xD5, 0xF5, 0x97,
		0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC,
		0x19, 0x1D, 0x39, 0x3D, 0x59, 0x5D, 0x79, 0x7D,
		0xB9, 0xBD, 0xBE, 0xBF, 0xBC, 0xBB,
		0xD9, 0xDD, 0xF9, 0xFD,
		0x28, 0x68,
	)

	setCycle(5,
		0x06, 0x26, 0x46, 0x66,
		0xC6, 0xE6,
		0x07, 0x27, 0x47, 0x67,
		0xC7, 0xE7,
		0x11, 0x31, 0x51, 0x71, 0xB1, 0xD1, 0xF1, 0xB3,
		0x6C,
		0x9D, 0x99,
		0x9C, 0x9E, 0x9B, 0x9F,
	)

	setCycle(6,
		0x0E, 0x2E, 0x4E, 0x6E,
		0xCE, 0xEE,
		0x0F, 0x2F, 0x4F, 0x6F,
		0xCF, 0xEF,
		0x01, 0x21, 0x41, 0x61, 0x81, 0xA1, 0xC1, 0xE1, 0xA3, 0x83,
		0x20,
		0x40, 0x60,
		0x91, 0x93,
		0x16, 0x36, 0x56, 0x76,
		0x17, 0x37, 0x57, 0x77,
		0xD6, 0xF6, 0xD7, 0xF7,
	)

	setCycle(7,
		0x1E, 0x3E, 0x5E, 0x7E,
		0xDE, 0xFE,
		0x1F, 0x3F, 0x5F, 0x7F,
		0xDF, 0xFF,
		0x1B, 0x3B, 0x5B, 0x7B, 0xDB, 0xFB,
		0x00,
	)

	setCycle(8,
		0x03, 0x23, 0x43, 0x63,
		0xC3, 0xE3,
		0x13, 0x33, 0x53, 0x73,
		0xD3, 0xF3,
	)
}

func initOpcodeExec() {
	opcodeExec = [256]func(c *cpu, arg uint16){
		0x00: opBRK, 0x01: opORAIx, 0x02: opKIL, 0x03: opSLOIx,
		0x04: opNopZp, 0x05: opORAZp, 0x06: opASLZp, 0x07: opSLOZp,
		0x08: opPHP, 0x09: opORAIm, 0x0A: opASLAcc, 0x0B: opANCIm,
		0x0C: opNopAb, 0x0D: opORAAb, 0x0E: opASLAb, 0x0F: opSLOAb,

		0x10: opBPL, 0x11: opORAIy, 0x12: opKIL, 0x13: opSLOIy,
		0x14: opNopZpX, 0x15: opORAZpX, 0x16: opASLZpX, 0x17: opSLOZpX,
		0x18: opCLC, 0x19: opORAAbY, 0x1A: opNopImplied, 0x1B: opSLOAbY,
		0x1C: opNopAbX, 0x1D: opORAAbX, 0x1E: opASLAbX, 0x1F: opSLOAbX,

		0x20: opJSR, 0x21: opANDIx, 0x22: opKIL, 0x23: opRLAIx,
		0x24: opBITZp, 0x25: opANDZp, 0x26: opROLZp, 0x27: opRLAZp,
		0x28: opPLP, 0x29: opANDIm, 0x2A: opROLAcc, 0x2B: opANCIm,
		0x2C: opBITAb, 0x2D: opANDAb, 0x2E: opROLAb, 0x2F: opRLAAb,

		0x30: opBMI, 0x31: opANDIy, 0x32: opKIL, 0x33: opRLAIy,
		0x34: opNopZpX, 0x35: opANDZpX, 0x36: opROLZpX, 0x37: opRLAZpX,
		0x38: opSEC, 0x39: opANDAbY, 0x3A: opNopImplied, 0x3B: opRLAAbY,
		0x3C: opNopAbX, 0x3D: opANDAbX, 0x3E: opROLAbX, 0x3F: opRLAAbX,

		0x40: opRTI, 0x41: opEORIx, 0x42: opKIL, 0x43: opSREIx,
		0x44: opNopZp, 0x45: opEORZp, 0x46: opLSRZp, 0x47: opSREZp,
		0x48: opPHA, 0x49: opEORIm, 0x4A: opLSRAcc, 0x4B: opALRIm,
		0x4C: opJMPAb, 0x4D: opEORAb, 0x4E: opLSRAb, 0x4F: opSREAb,

		0x50: opBVC, 0x51: opEORIy, 0x52: opKIL, 0x53: opSREIy,
		0x54: opNopZpX, 0x55: opEORZpX, 0x56: opLSRZpX, 0x57: opSREZpX,
		0x58: opCLI, 0x59: opEORAbY, 0x5A: opNopImplied, 0x5B: opSREAbY,
		0x5C: opNopAbX, 0x5D: opEORAbX, 0x5E: opLSRAbX, 0x5F: opSREAbX,

		0x60: opRTS, 0x61: opADCIx, 0x62: opKIL, 0x63: opRRAIx,
		0x64: opNopZp, 0x65: opADCZp, 0x66: opRORZp, 0x67: opRRAZp,
		0x68: opPLA, 0x69: opADCIm, 0x6A: opRORAcc, 0x6B: opARRIm,
		0x6C: opJMPInd, 0x6D: opADCAb, 0x6E: opRORAb, 0x6F: opRRAAb,

		0x70: opBVS, 0x71: opADCIy, 0x72: opKIL, 0x73: opRRAIy,
		0x74: opNopZpX, 0x75: opADCZpX, 0x76: opRORZpX, 0x77: opRRAZpX,
		0x78: opSEI, 0x79: opADCAbY, 0x7A: opNopImplied, 0x7B: opRRAAbY,
		0x7C: opNopAbX, 0x7D: opADCAbX, 0x7E: opRORAbX, 0x7F: opRRAAbX,

		0x80: opNopImm, 0x81: opSTAIx, 0x82: opNopImm, 0x83: opSAXIx,
		0x84: opSTYZp, 0x85: opSTAZp, 0x86: opSTXZp, 0x87: opSAXZp,
		0x88: opDEY, 0x89: opNopImm, 0x8A: opTXA, 0x8B: opXAAIm,
		0x8C: opSTYAb, 0x8D: opSTAAb, 0x8E: opSTXAb, 0x8F: opSAXAb,

		0x90: opBCC, 0x91: opSTAIy, 0x92: opKIL, 0x93: opAHXIy,
		0x94: opSTYZpX, 0x95: opSTAZpX, 0x96: opSTXZpY, 0x97: opSAXZpY,
		0x98: opTYA, 0x99: opSTAAbY, 0x9A: opTXS, 0x9B: opTASAbY,
		0x9C: opSHYAbX, 0x9D: opSTAAbX, 0x9E: opSHXAbY, 0x9F: opAHXAbY,

		0xA0: opLDYIm, 0xA1: opLDAIx, 0xA2: opLDXIm, 0xA3: opLAXIx,
		0xA4: opLDYZp, 0xA5: opLDAZp, 0xA6: opLDXZp, 0xA7: opLAXZp,
		0xA8: opTAY, 0xA9: opLDAIm, 0xAA: opTAX, 0xAB: opLAXImU,
		0xAC: opLDYAb, 0xAD: opLDAAb, 0xAE: opLDXAb, 0xAF: opLAXAb,

		0xB0: opBCS, 0xB1: opLDAIy, 0xB2: opKIL, 0xB3: opLAXIy,
		0xB4: opLDYZpX, 0xB5: opLDAZpX, 0xB6: opLDXZpY, 0xB7: opLAXZpY,
		0xB8: opCLV, 0xB9: opLDAAbY, 0xBA: opTSX, 0xBB: opLASAbY,
		0xBC: opLDYAbX, 0xBD: opLDAAbX, 0xBE: opLDXAbY, 0xBF: opLAXAbY,

		0xC0: opCPYIm, 0xC1: opCMPIx, 0xC2: opNopImm, 0xC3: opDCPIx,
		0xC4: opCPYZp, 0xC5: opCMPZp, 0xC6: opDECZp, 0xC7: opDCPZp,
		0xC8: opINY, 0xC9: opCMPIm, 0xCA: opDEX, 0xCB: opAXSIm,
		0xCC: opCPYAb, 0xCD: opCMPAb, 0xCE: opDECAb, 0xCF: opDCPAb,

		0xD0: opBNE, 0xD1: opCMPIy, 0xD2: opKIL, 0xD3: opDCPIy,
		0xD4: opNopZpX, 0xD5: opCMPZpX, 0xD6: opDECZpX, 0xD7: opDCPZpX,
		0xD8: opCLD, 0xD9: opCMPAbY, 0xDA: opNopImplied, 0xDB: opDCPAbY,
		0xDC: opNopAbX, 0xDD: opCMPAbX, 0xDE: opDECAbX, 0xDF: opDCPAbX,

		0xE0: opCPXIm, 0xE1: opSBCIx, 0xE2: opNopImm, 0xE3: opISCIx,
		0xE4: opCPXZp, 0xE5: opSBCZp, 0xE6: opINCZp, 0xE7: opISCZp,
		0xE8: opINX, 0xE9: opSBCIm, 0xEA: opNopImplied, 0xEB: opSBCAlias,
		0xEC: opCPXAb, 0xED: opSBCAb, 0xEE: opINCAb, 0xEF: opISCAb,

		0xF0: opBEQ, 0xF1: opSBCIy, 0xF2: opKIL, 0xF3: opISCIy,
		0xF4: opNopZpX, 0xF5: opSBCZpX, 0xF6: opINCZpX, 0xF7: opISCZpX,
		0xF8: opSED, 0xF9: opSBCAbY, 0xFA: opNopImplied, 0xFB: opISCAbY,
		0xFC: opNopAbX, 0xFD: opSBCAbX, 0xFE: opINCAbX, 0xFF: opISCAbX,
	}
}
