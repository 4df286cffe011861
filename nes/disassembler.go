package nes

import "fmt"

// Disassemble renders one line of 6502 disassembly from the pre-fetch
// snapshot a BeforeExec hook receives: the same data a host trace tool
// gets, so the core never needs to know about text formatting itself.
//
// Adapted from the teacher's Cpu6502.Disassemble, which walked a whole
// address range up front and cached a map[addr]string; this port instead
// formats one instruction at a time, driven by CpuHook, since the core no
// longer exposes raw memory to a disassembler that isn't itself a device.
func Disassemble(st CpuState, opcode byte, arg uint16) string {
	name := opcodeName[opcode]
	if name == "" {
		name = "???"
	}

	var operand string
	switch opcodeMode[opcode] {
	case amIMP:
		operand = ""
	case amACC:
		operand = "A"
	case amIMM:
		operand = fmt.Sprintf("#$%02X", byte(arg))
	case amREL:
		target := st.PC + uint16(int8(byte(arg))) + uint16(opcodeArgLen[opcode]) + 1
		operand = fmt.Sprintf("$%04X", target)
	case amZP0:
		operand = fmt.Sprintf("$%02X", byte(arg))
	case amZPX:
		operand = fmt.Sprintf("$%02X,X", byte(arg))
	case amZPY:
		operand = fmt.Sprintf("$%02X,Y", byte(arg))
	case amABS:
		operand = fmt.Sprintf("$%04X", arg)
	case amABX:
		operand = fmt.Sprintf("$%04X,X", arg)
	case amABY:
		operand = fmt.Sprintf("$%04X,Y", arg)
	case amIND:
		operand = fmt.Sprintf("($%04X)", arg)
	case amIZX:
		operand = fmt.Sprintf("($%02X,X)", byte(arg))
	case amIZY:
		operand = fmt.Sprintf("($%02X),Y", byte(arg))
	}

	return fmt.Sprintf("$%04X: %02X %-4s %-10s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		st.PC, opcode, name, operand, st.A, st.X, st.Y, packStateP(st), st.S)
}

// packStateP reconstructs the packed status byte from a CpuState snapshot,
// matching cpu.P() for a live (non-stack-image) view.
func packStateP(st CpuState) byte {
	var p byte
	if st.C {
		p |= 1 << 0
	}
	if st.Z {
		p |= 1 << 1
	}
	if st.I {
		p |= 1 << 2
	}
	if st.D {
		p |= 1 << 3
	}
	p |= 1 << 5
	if st.V {
		p |= 1 << 6
	}
	if st.N {
		p |= 1 << 7
	}
	return p
}
