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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-chip8/chip8vm/chip8"
	"github.com/go-chip8/chip8vm/internal/sdlrenderer"
)

const (
	exitSuccess     = 0
	exitPathMissing = 1
	exitOpenFailed  = 2
	exitLoadFailed  = 3
)

var (
	runClockHz uint64
	runETI     bool
)

// runCmd runs a program binary to completion (until the window is
// closed), per spec.md §6's fixed CLI contract: positional ROM path,
// exit codes 0/1/2/3.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a CHIP-8 program",
	Args:  cobra.ExactArgs(1),
	Run:   runProgram,
}

func init() {
	runCmd.Flags().Uint64Var(&runClockHz, "clock-hz", chip8.DefaultClockHz, "instruction clock rate")
	runCmd.Flags().BoolVar(&runETI, "eti", false, "load at the ETI-660 base address (0x600) instead of 0x200")
}

func runProgram(cmd *cobra.Command, args []string) {
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

	renderer, err := sdlrenderer.New(fmt.Sprintf("chip8vm - %s", path))
	if err != nil {
		fmt.Printf("chip8vm: %v\n", errors.Wrap(err, "could not open a window"))
		os.Exit(exitOpenFailed)
	}
	defer renderer.Close()

	debugIn := make(chan chip8.DebugCommand)
	debugOut := make(chan chip8.DebugResponse)

	vm := chip8.New(renderer, renderer, debugIn, debugOut)
	vm.SetClockRate(runClockHz)

	if err := vm.Load(program, runETI); err != nil {
		fmt.Printf("chip8vm: %v\n", errors.Wrapf(err, "could not load %s", path))
		os.Exit(exitLoadFailed)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		vm.Run()
	}()

	for {
		select {
		case <-done:
			os.Exit(exitSuccess)
		default:
		}

		if !renderer.PollEvents() {
			close(debugIn)
			<-done
			os.Exit(exitSuccess)
		}

		renderer.Present()
	}
}
