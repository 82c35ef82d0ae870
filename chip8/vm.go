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

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// DefaultClockHz is used when a harness never calls SetClockRate.
// spec.md §9 leaves the default unspecified beyond "≥ 60 Hz"; 540 Hz
// matches the common CHIP-8 community default.
const DefaultClockHz = 540

// VM is the CHIP-8 fetch/decode/execute core. It owns Memory,
// Registers, Stack and Timers exclusively, and talks to Display and
// Keypad only through their interfaces, per spec.md §5: all VM-owned
// state is reachable only from the VM's own goroutine.
type VM struct {
	Memory    *Memory
	Registers *Registers
	Stack     *Stack
	Timers    *Timers
	Display   Display
	Keypad    Keypad
	Log       *Logger

	PC   uint16
	I    uint16
	base uint16
	size int

	rng *rand.Rand

	clockHz uint64

	debugIn  <-chan DebugCommand
	debugOut chan<- DebugResponse

	shouldExit bool
	halted     bool
	haltWasBRK bool

	breakpoints  map[uint16]Breakpoint
	stepOverAddr uint16 // 0 means "no pending step-over"
	stepOutSP    int    // -1 means "no pending step-out"
}

// New constructs a VM wired to the given Display/Keypad collaborators
// and debug channel pair. Memory, Registers, Stack and Timers are
// created fresh; the hex font is installed; PC, I, SP and every
// register/timer start at zero (PC is set to 0x200 once Load is
// called).
func New(display Display, keypad Keypad, debugIn <-chan DebugCommand, debugOut chan<- DebugResponse) *VM {
	return &VM{
		Memory:    NewMemory(),
		Registers: &Registers{},
		Stack:     &Stack{},
		Timers:    &Timers{},
		Display:   display,
		Keypad:    keypad,
		Log:       NewLogger(),

		base: ProgramStart,

		rng: rand.New(rand.NewSource(time.Now().UnixNano())),

		clockHz: DefaultClockHz,

		debugIn:  debugIn,
		debugOut: debugOut,

		breakpoints: make(map[uint16]Breakpoint),
		stepOutSP:   -1,
	}
}

// SeedRNG reseeds the VM's random source deterministically, for tests
// that need repeatable RND Vx, kk behavior.
func (vm *VM) SeedRNG(seed int64) {
	vm.rng = rand.New(rand.NewSource(seed))
}

// SetClockRate sets the instruction clock rate before Run starts. A
// running VM's rate is instead changed with a SetClockRate
// DebugCommand, since clockHz is read from the VM goroutine alone.
func (vm *VM) SetClockRate(hz uint64) {
	if hz > 0 {
		vm.clockHz = hz
	}
}

// Load copies a program binary into memory starting at 0x200 (or 0x600
// if eti is true, the ETI-660 hardware variant) and sets PC there. It
// fails, without mutating PC, if the program is too large.
func (vm *VM) Load(program []byte, eti bool) error {
	base := uint16(ProgramStart)
	if eti {
		base = 0x600
	}

	if err := vm.Memory.LoadProgram(program, base); err != nil {
		return err
	}

	vm.base = base
	vm.PC = base
	vm.size = len(program)
	return nil
}

// Save writes the currently loaded program's bytes back out to file,
// re-reading them from memory rather than keeping the original slice
// Load was given, so that a harness can inspect a ROM a live VM has
// been mutating (self-modifying CHIP-8 programs are rare but legal).
func (vm *VM) Save(file string) error {
	program := vm.Memory.ReadSlice(vm.base, vm.size)
	return os.WriteFile(file, program, 0644)
}

// Run executes the fetch/decode/execute loop until an Exit command (or
// a closed debug-in channel) is observed. Decode and execution errors
// are fatal: Run panics with a formatted state dump, per spec.md §7.
func (vm *VM) Run() {
	last := time.Now()

	for {
		if vm.shouldExit {
			return
		}

		vm.drainNonBlocking()
		if vm.shouldExit {
			return
		}

		if vm.halted {
			vm.halted = false
			vm.waitForResume()

			if vm.shouldExit {
				vm.Log.Log("exiting while halted")
				return
			}

			vm.Log.Log("resuming at", fmt.Sprintf("%#04x", vm.PC))

			// A real BRK instruction was never "executed"; PC still
			// points at its own address. Catch it up by one
			// instruction width now that we're resuming. A
			// breakpoint/step halt, by contrast, stops *after* a real
			// instruction already ran, so PC is already where
			// execution should continue from.
			if vm.haltWasBRK {
				vm.PC += 2
			}

			last = time.Now()
		}

		word, err := vm.Memory.ReadWord(vm.PC)
		if err != nil {
			vm.Log.Log("fatal: fetch at", fmt.Sprintf("%#04x:", vm.PC), err.Error())
			panic(vm.diagnostic(err))
		}

		op, err := Decode(word, vm.PC)
		if err != nil {
			vm.Log.Log("fatal: decode at", fmt.Sprintf("%#04x:", vm.PC), err.Error())
			panic(vm.diagnostic(err))
		}

		if op.Tag == OpBRK {
			// BRK halts with PC still pointing at the sentinel word
			// itself; it is never "executed" and never advances PC.
			vm.Log.Log("BRK at", fmt.Sprintf("%#04x", vm.PC))
			vm.halted = true
			vm.haltWasBRK = true
			continue
		}

		delta, err := vm.execute(op)
		if err != nil {
			vm.Log.Log("fatal: exec at", fmt.Sprintf("%#04x:", vm.PC), err.Error())
			panic(vm.diagnostic(err))
		}
		vm.PC += delta

		now := time.Now()
		elapsed := now.Sub(last)
		last = now
		vm.Timers.Tick(elapsed.Nanoseconds())

		vm.checkBreakpoints()
		if vm.shouldExit {
			return
		}

		vm.pace(now)
	}
}

// checkBreakpoints halts the VM at any address-keyed breakpoint or
// pending StepOver/StepOut target, halting the same way BRK does. An
// address breakpoint also sends a RespBreakpoint response; step-over
// and step-out halts send none.
func (vm *VM) checkBreakpoints() {
	if vm.stepOutSP >= 0 {
		if int(vm.Stack.SP()) < vm.stepOutSP {
			vm.Log.Log("step-out halted at", fmt.Sprintf("%#04x", vm.PC))
			vm.stepOutSP = -1
			vm.halted = true
			vm.haltWasBRK = false
			return
		}
	}

	if vm.stepOverAddr != 0 && vm.PC == vm.stepOverAddr {
		vm.Log.Log("step-over halted at", fmt.Sprintf("%#04x", vm.PC))
		vm.stepOverAddr = 0
		vm.halted = true
		vm.haltWasBRK = false
		return
	}

	if bp, ok := vm.breakpoints[vm.PC]; ok {
		vm.Log.Log("breakpoint at", fmt.Sprintf("%#04x:", vm.PC), bp.Reason)
		vm.trySend(DebugResponse{Kind: RespBreakpoint, BreakAddr: vm.PC, BreakReason: bp.Reason})

		if bp.Once {
			delete(vm.breakpoints, vm.PC)
		}

		vm.halted = true
		vm.haltWasBRK = false
	}
}

// pace sleeps just long enough to meet the configured clock rate,
// matching spec.md §4.7 step 6.
func (vm *VM) pace(cycleStart time.Time) {
	period := time.Second / time.Duration(vm.clockHz)
	elapsed := time.Since(cycleStart)

	if elapsed < period {
		time.Sleep(period - elapsed)
	}
}

// diagnostic formats a fatal decode/execution error with a full state
// dump: registers, PC, I, SP, stack, and a window of memory around PC,
// per spec.md §7.
func (vm *VM) diagnostic(cause error) string {
	lo := int(vm.PC) - 8
	if lo < 0 {
		lo = 0
	}
	hi := int(vm.PC) + 8
	if hi > MemorySize {
		hi = MemorySize
	}

	dump := struct {
		Cause    error
		PC       uint16
		I        uint16
		SP       uint8
		V        [16]byte
		Stack    [StackDepth]uint16
		MemWindow []byte
	}{
		Cause:     cause,
		PC:        vm.PC,
		I:         vm.I,
		SP:        vm.Stack.SP(),
		V:         vm.Registers.Snapshot(),
		Stack:     vm.Stack.Slots(),
		MemWindow: vm.Memory.ReadSlice(uint16(lo), hi-lo),
	}

	return fmt.Sprintf("chip8: fatal VM error: %v\n%s", cause, spew.Sdump(dump))
}
