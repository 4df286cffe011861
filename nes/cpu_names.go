package nes

// addrMode names the operand shape of an opcode, for disassembly only; the
// executing code never inspects it; cpu_addressing.go already hardwires the
// right bus behavior per opcode.
type addrMode int

const (
	amIMP addrMode = iota
	amACC
	amIMM
	amREL
	amZP0
	amZPX
	amZPY
	amABS
	amABX
	amABY
	amIND
	amIZX
	amIZY
)

// opcodeName and opcodeMode are metadata tables used only by the
// disassembler (see disassembler.go); they mirror the official/unofficial
// mnemonics used throughout cpu_opcodes.go and cpu_opcodes_unofficial.go.
var opcodeName [256]string
var opcodeMode [256]addrMode

func setName(name string, mode addrMode, opcodes ...byte) {
	for _, op := range opcodes {
		opcodeName[op] = name
		opcodeMode[op] = mode
	}
}

func init() {
	setName("BRK", amIMP, 0x00)
	setName("ORA", amIZX, 0x01)
	setName("KIL", amIMP, 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2)
	setName("SLO", amIZX, 0x03)
	setName("NOP", amZP0, 0x04, 0x44, 0x64)
	setName("ORA", amZP0, 0x05)
	setName("ASL", amZP0, 0x06)
	setName("SLO", amZP0, 0x07)
	setName("PHP", amIMP, 0x08)
	setName("ORA", amIMM, 0x09)
	setName("ASL", amACC, 0x0A)
	setName("ANC", amIMM, 0x0B, 0x2B)
	setName("NOP", amABS, 0x0C)
	setName("ORA", amABS, 0x0D)
	setName("ASL", amABS, 0x0E)
	setName("SLO", amABS, 0x0F)

	setName("BPL", amREL, 0x10)
	setName("ORA", amIZY, 0x11)
	setName("SLO", amIZY, 0x13)
	setName("NOP", amZPX, 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4)
	setName("ORA", amZPX, 0x15)
	setName("ASL", amZPX, 0x16)
	setName("SLO", amZPX, 0x17)
	setName("CLC", amIMP, 0x18)
	setName("ORA", amABY, 0x19)
	setName("NOP", amIMP, 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA, 0xEA)
	setName("SLO", amABY, 0x1B)
	setName("NOP", amABX, 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC)
	setName("ORA", amABX, 0x1D)
	setName("ASL", amABX, 0x1E)
	setName("SLO", amABX, 0x1F)

	setName("JSR", amABS, 0x20)
	setName("AND", amIZX, 0x21)
	setName("RLA", amIZX, 0x23)
	setName("BIT", amZP0, 0x24)
	setName("AND", amZP0, 0x25)
	setName("ROL", amZP0, 0x26)
	setName("RLA", amZP0, 0x27)
	setName("PLP", amIMP, 0x28)
	setName("AND", amIMM, 0x29)
	setName("ROL", amACC, 0x2A)
	setName("BIT", amABS, 0x2C)
	setName("AND", amABS, 0x2D)
	setName("ROL", amABS, 0x2E)
	setName("RLA", amABS, 0x2F)

	setName("BMI", amREL, 0x30)
	setName("AND", amIZY, 0x31)
	setName("RLA", amIZY, 0x33)
	setName("AND", amZPX, 0x35)
	setName("ROL", amZPX, 0x36)
	setName("RLA", amZPX, 0x37)
	setName("SEC", amIMP, 0x38)
	setName("AND", amABY, 0x39)
	setName("RLA", amABY, 0x3B)
	setName("AND", amABX, 0x3D)
	setName("ROL", amABX, 0x3E)
	setName("RLA", amABX, 0x3F)

	setName("RTI", amIMP, 0x40)
	setName("EOR", amIZX, 0x41)
	setName("SRE", amIZX, 0x43)
	setName("EOR", amZP0, 0x45)
	setName("LSR", amZP0, 0x46)
	setName("SRE", amZP0, 0x47)
	setName("PHA", amIMP, 0x48)
	setName("EOR", amIMM, 0x49)
	setName("LSR", amACC, 0x4A)
	setName("ALR", amIMM, 0x4B)
	setName("JMP", amABS, 0x4C)
	setName("EOR", amABS, 0x4D)
	setName("LSR", amABS, 0x4E)
	setName("SRE", amABS, 0x4F)

	setName("BVC", amREL, 0x50)
	setName("EOR", amIZY, 0x51)
	setName("SRE", amIZY, 0x53)
	setName("EOR", amZPX, 0x55)
	setName("LSR", amZPX, 0x56)
	setName("SRE", amZPX, 0x57)
	setName("CLI", amIMP, 0x58)
	setName("EOR", amABY, 0x59)
	setName("SRE", amABY, 0x5B)
	setName("EOR", amABX, 0x5D)
	setName("LSR", amABX, 0x5E)
	setName("SRE", amABX, 0x5F)

	setName("RTS", amIMP, 0x60)
	setName("ADC", amIZX, 0x61)
	setName("RRA", amIZX, 0x63)
	setName("ADC", amZP0, 0x65)
	setName("ROR", amZP0, 0x66)
	setName("RRA", amZP0, 0x67)
	setName("PLA", amIMP, 0x68)
	setName("ADC", amIMM, 0x69)
	setName("ROR", amACC, 0x6A)
	setName("ARR", amIMM, 0x6B)
	setName("JMP", amIND, 0x6C)
	setName("ADC", amABS, 0x6D)
	setName("ROR", amABS, 0x6E)
	setName("RRA", amABS, 0x6F)

	setName("BVS", amREL, 0x70)
	setName("ADC", amIZY, 0x71)
	setName("RRA", amIZY, 0x73)
	setName("ADC", amZPX, 0x75)
	setName("ROR", amZPX, 0x76)
	setName("RRA", amZPX, 0x77)
	setName("SEI", amIMP, 0x78)
	setName("ADC", amABY, 0x79)
	setName("RRA", amABY, 0x7B)
	setName("ADC", amABX, 0x7D)
	setName("ROR", amABX, 0x7E)
	setName("RRA", amABX, 0x7F)

	setName("NOP", amIMM, 0x80, 0x82, 0x89, 0xC2, 0xE2)
	setName("STA", amIZX, 0x81)
	setName("SAX", amIZX, 0x83)
	setName("STY", amZP0, 0x84)
	setName("STA", amZP0, 0x85)
	setName("STX", amZP0, 0x86)
	setName("SAX", amZP0, 0x87)
	setName("DEY", amIMP, 0x88)
	setName("TXA", amIMP, 0x8A)
	setName("XAA", amIMM, 0x8B)
	setName("STY", amABS, 0x8C)
	setName("STA", amABS, 0x8D)
	setName("STX", amABS, 0x8E)
	setName("SAX", amABS, 0x8F)

	setName("BCC", amREL, 0x90)
	setName("STA", amIZY, 0x91)
	setName("AHX", amIZY, 0x93)
	setName("STY", amZPX, 0x94)
	setName("STA", amZPX, 0x95)
	setName("STX", amZPY, 0x96)
	setName("SAX", amZPY, 0x97)
	setName("TYA", amIMP, 0x98)
	setName("STA", amABY, 0x99)
	setName("TXS", amIMP, 0x9A)
	setName("TAS", amABY, 0x9B)
	setName("SHY", amABX, 0x9C)
	setName("STA", amABX, 0x9D)
	setName("SHX", amABY, 0x9E)
	setName("AHX", amABY, 0x9F)

	setName("LDY", amIMM, 0xA0)
	setName("LDA", amIZX, 0xA1)
	setName("LDX", amIMM, 0xA2)
	setName("LAX", amIZX, 0xA3)
	setName("LDY", amZP0, 0xA4)
	setName("LDA", amZP0, 0xA5)
	setName("LDX", amZP0, 0xA6)
	setName("LAX", amZP0, 0xA7)
	setName("TAY", amIMP, 0xA8)
	setName("LDA", amIMM, 0xA9)
	setName("TAX", amIMP, 0xAA)
	setName("LAX", amIMM, 0xAB)
	setName("LDY", amABS, 0xAC)
	setName("LDA", amABS, 0xAD)
	setName("LDX", amABS, 0xAE)
	setName("LAX", amABS, 0xAF)

	setName("BCS", amREL, 0xB0)
	setName("LDA", amIZY, 0xB1)
	setName("LAX", amIZY, 0xB3)
	setName("LDY", amZPX, 0xB4)
	setName("LDA", amZPX, 0xB5)
	setName("LDX", amZPY, 0xB6)
	setName("LAX", amZPY, 0xB7)
	setName("CLV", amIMP, 0xB8)
	setName("LDA", amABY, 0xB9)
	setName("TSX", amIMP, 0xBA)
	setName("LAS", amABY, 0xBB)
	setName("LDY", amABX, 0xBC)
	setName("LDA", amABX, 0xBD)
	setName("LDX", amABY, 0xBE)
	setName("LAX", amABY, 0xBF)

	setName("CPY", amIMM, 0xC0)
	setName("CMP", amIZX, 0xC1)
	setName("DCP", amIZX, 0xC3)
	setName("CPY", amZP0, 0xC4)
	setName("CMP", amZP0, 0xC5)
	setName("DEC", amZP0, 0xC6)
	setName("DCP", amZP0, 0xC7)
	setName("INY", amIMP, 0xC8)
	setName("CMP", amIMM, 0xC9)
	setName("DEX", amIMP, 0xCA)
	setName("AXS", amIMM, 0xCB)
	setName("CPY", amABS, 0xCC)
	setName("CMP", amABS, 0xCD)
	setName("DEC", amABS, 0xCE)
	setName("DCP", amABS, 0xCF)

	setName("BNE", amREL, 0xD0)
	setName("CMP", amIZY, 0xD1)
	setName("DCP", amIZY, 0xD3)
	setName("CMP", amZPX, 0xD5)
	setName("DEC", amZPX, 0xD6)
	setName("DCP", amZPX, 0xD7)
	setName("CLD", amIMP, 0xD8)
	setName("CMP", amABY, 0xD9)
	setName("DCP", amABY, 0xDB)
	setName("CMP", amABX, 0xDD)
	setName("DEC", amABX, 0xDE)
	setName("DCP", amABX, 0xDF)

	setName("CPX", amIMM, 0xE0)
	setName("SBC", amIZX, 0xE1)
	setName("ISC", amIZX, 0xE3)
	setName("CPX", amZP0, 0xE4)
	setName("SBC", amZP0, 0xE5)
	setName("INC", amZP0, 0xE6)
	setName("ISC", amZP0, 0xE7)
	setName("INX", amIMP, 0xE8)
	setName("SBC", amIMM, 0xE9, 0xEB)
	setName("CPX", amABS, 0xEC)
	setName("SBC", amABS, 0xED)
	setName("INC", amABS, 0xEE)
	setName("ISC", amABS, 0xEF)

	setName("BEQ", amREL, 0xF0)
	setName("SBC", amIZY, 0xF1)
	setName("ISC", amIZY, 0xF3)
	setName("SBC", amZPX, 0xF5)
	setName("INC", amZPX, 0xF6)
	setName("ISC", amZPX, 0xF7)
	setName("SED", amIMP, 0xF8)
	setName("SBC", amABY, 0xF9)
	setName("ISC", amABY, 0xFB)
	setName("SBC", amABX, 0xFD)
	setName("INC", amABX, 0xFE)
	setName("ISC", amABX, 0xFF)
}
