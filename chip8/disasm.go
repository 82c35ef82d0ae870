/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

import "fmt"

// Disassemble decodes a single 16-bit instruction word and returns a
// mnemonic line for it, the way a renderer would build a RAM-window or
// disassembly view purely from Peek* responses (spec.md §9).
func Disassemble(word uint16) string {
	op, err := Decode(word, 0)
	if err != nil {
		return fmt.Sprintf("???    #%04X", word)
	}

	switch op.Tag {
	case OpBRK:
		return "BRK"
	case OpSYS:
		return fmt.Sprintf("SYS    #%04X", op.Addr)
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpJP:
		return fmt.Sprintf("JP     #%04X", op.Addr)
	case OpCALL:
		return fmt.Sprintf("CALL   #%04X", op.Addr)
	case OpSEVxByte:
		return fmt.Sprintf("SE     V%X, #%02X", op.X, op.Byte)
	case OpSNEVxByte:
		return fmt.Sprintf("SNE    V%X, #%02X", op.X, op.Byte)
	case OpSEVxVy:
		return fmt.Sprintf("SE     V%X, V%X", op.X, op.Y)
	case OpLDVxByte:
		return fmt.Sprintf("LD     V%X, #%02X", op.X, op.Byte)
	case OpADDVxByte:
		return fmt.Sprintf("ADD    V%X, #%02X", op.X, op.Byte)
	case OpLDVxVy:
		return fmt.Sprintf("LD     V%X, V%X", op.X, op.Y)
	case OpOR:
		return fmt.Sprintf("OR     V%X, V%X", op.X, op.Y)
	case OpAND:
		return fmt.Sprintf("AND    V%X, V%X", op.X, op.Y)
	case OpXOR:
		return fmt.Sprintf("XOR    V%X, V%X", op.X, op.Y)
	case OpADDVxVy:
		return fmt.Sprintf("ADD    V%X, V%X", op.X, op.Y)
	case OpSUB:
		return fmt.Sprintf("SUB    V%X, V%X", op.X, op.Y)
	case OpSHR:
		return fmt.Sprintf("SHR    V%X", op.X)
	case OpSUBN:
		return fmt.Sprintf("SUBN   V%X, V%X", op.X, op.Y)
	case OpSHL:
		return fmt.Sprintf("SHL    V%X", op.X)
	case OpSNEVxVy:
		return fmt.Sprintf("SNE    V%X, V%X", op.X, op.Y)
	case OpLDIAddr:
		return fmt.Sprintf("LD     I, #%04X", op.Addr)
	case OpJPV0:
		return fmt.Sprintf("JP     V0, #%04X", op.Addr)
	case OpRND:
		return fmt.Sprintf("RND    V%X, #%02X", op.X, op.Byte)
	case OpDRW:
		return fmt.Sprintf("DRW    V%X, V%X, %d", op.X, op.Y, op.N)
	case OpSKP:
		return fmt.Sprintf("SKP    V%X", op.X)
	case OpSKNP:
		return fmt.Sprintf("SKNP   V%X", op.X)
	case OpLDVxDT:
		return fmt.Sprintf("LD     V%X, DT", op.X)
	case OpLDVxK:
		return fmt.Sprintf("LD     V%X, K", op.X)
	case OpLDDTVx:
		return fmt.Sprintf("LD     DT, V%X", op.X)
	case OpLDSTVx:
		return fmt.Sprintf("LD     ST, V%X", op.X)
	case OpADDIVx:
		return fmt.Sprintf("ADD    I, V%X", op.X)
	case OpLDFVx:
		return fmt.Sprintf("LD     F, V%X", op.X)
	case OpLDBVx:
		return fmt.Sprintf("LD     B, V%X", op.X)
	case OpLDIVx:
		return fmt.Sprintf("LD     [I], V%X", op.X)
	case OpLDVxI:
		return fmt.Sprintf("LD     V%X, [I]", op.X)
	}

	return fmt.Sprintf("???    #%04X", word)
}
