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

package cmd

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-chip8/chip8vm/chip8"
)

var disassembleETI bool

// disassembleCmd prints a static listing of a program binary, one
// mnemonic per instruction word, without loading it into a VM.
var disassembleCmd = &cobra.Command{
	Use:   "disassemble path/to/rom",
	Short: "print a disassembly listing of a CHIP-8 program",
	Args:  cobra.ExactArgs(1),
	Run:   runDisassemble,
}

func init() {
	disassembleCmd.Flags().BoolVar(&disassembleETI, "eti", false, "assume the ETI-660 base address (0x600) instead of 0x200")
}

func runDisassemble(cmd *cobra.Command, args []string) {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("chip8vm: %v\n", errors.Wrapf(err, "%s: no such file", path))
		os.Exit(exitPathMissing)
	}

	program, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("chip8vm: %v\n", errors.Wrapf(err, "could not open %s", path))
		os.Exit(exitOpenFailed)
	}

	if len(program) > chip8.MaxProgramSize {
		fmt.Printf("chip8vm: %s is too large (%d bytes, max %d)\n", path, len(program), chip8.MaxProgramSize)
		os.Exit(exitLoadFailed)
	}

	base := uint16(chip8.ProgramStart)
	if disassembleETI {
		base = 0x600
	}

	for i := 0; i+1 < len(program); i += 2 {
		word := binary.BigEndian.Uint16(program[i : i+2])
		fmt.Printf("%04X  %04X  %s\n", base+uint16(i), word, chip8.Disassemble(word))
	}

	os.Exit(exitSuccess)
}
