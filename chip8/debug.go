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

// DebugCommand is a message sent from a controlling harness to the VM
// goroutine across the debug-in channel. The VM drains these
// non-blockingly every cycle, and exclusively (blocking) while halted
// at a BRK or breakpoint.
type DebugCommand struct {
	Kind DebugCommandKind

	// Operands, populated per Kind; zero value otherwise.
	Addr     uint16
	NBytes   int
	RegIndex byte
	ClockHz  uint64
	Reason   string
}

// DebugCommandKind enumerates the exact command set from spec.md §6,
// plus the breakpoint/step commands added in SPEC_FULL.md.
type DebugCommandKind int

const (
	CmdExit DebugCommandKind = iota
	CmdPeekAddr
	CmdPeekI
	CmdPeekPC
	CmdPeekReg
	CmdPeekSP
	CmdPeekStack
	CmdPeekSoundTimer
	CmdResumeExecution
	CmdSetClockRate
	CmdSetBreakpoint
	CmdClearBreakpoint
	CmdClearAllBreakpoints
	CmdStepOver
	CmdStepOut
)

// DebugResponse is a message sent from the VM goroutine back to the
// harness across the debug-out channel, always in command order.
type DebugResponse struct {
	Kind DebugResponseKind

	I           uint16
	MemorySlice []byte
	PC          uint16
	Reg         byte
	SP          byte
	Stack       []uint16
	SoundTimer  byte
	BreakAddr   uint16
	BreakReason string
}

// DebugResponseKind enumerates the exact response set from spec.md §6,
// plus the Breakpoint response SPEC_FULL.md adds.
type DebugResponseKind int

const (
	RespI DebugResponseKind = iota
	RespMemorySlice
	RespPC
	RespReg
	RespSP
	RespStack
	RespSoundTimer
	RespBreakpoint
)

// Breakpoint is an address the VM should halt at independent of the
// synthetic BRK opcode, grounded in massung's Breakpoints map.
type Breakpoint struct {
	Reason string
	Once   bool
}

// trySend delivers resp on debugOut. The send waits for the harness to
// receive it; a send on a closed channel (harness died) does not crash
// the VM and is treated the same as Exit.
func (vm *VM) trySend(resp DebugResponse) {
	defer func() {
		if recover() != nil {
			vm.shouldExit = true
		}
	}()
	vm.debugOut <- resp
}

// handleCommand executes a single debug command immediately and
// reports whether the VM should now exit.
func (vm *VM) handleCommand(cmd DebugCommand) (exit bool) {
	switch cmd.Kind {
	case CmdExit:
		vm.Log.Log("exit requested")
		return true

	case CmdPeekAddr:
		vm.trySend(DebugResponse{Kind: RespMemorySlice, MemorySlice: vm.Memory.ReadSlice(cmd.Addr, cmd.NBytes)})

	case CmdPeekI:
		vm.trySend(DebugResponse{Kind: RespI, I: vm.I})

	case CmdPeekPC:
		vm.trySend(DebugResponse{Kind: RespPC, PC: vm.PC})

	case CmdPeekReg:
		v, err := vm.Registers.Get(cmd.RegIndex)
		if err != nil {
			panic(vm.diagnostic(err))
		}
		vm.trySend(DebugResponse{Kind: RespReg, Reg: v})

	case CmdPeekSP:
		vm.trySend(DebugResponse{Kind: RespSP, SP: vm.Stack.SP()})

	case CmdPeekStack:
		slots := vm.Stack.Slots()
		out := make([]uint16, len(slots))
		copy(out, slots[:])
		vm.trySend(DebugResponse{Kind: RespStack, Stack: out})

	case CmdPeekSoundTimer:
		vm.trySend(DebugResponse{Kind: RespSoundTimer, SoundTimer: vm.Timers.GetSound()})

	case CmdResumeExecution:
		// Only has effect while blocked at BRK/breakpoint; handled by
		// the caller's wait loop.

	case CmdSetClockRate:
		if cmd.ClockHz > 0 {
			vm.clockHz = cmd.ClockHz
		}

	case CmdSetBreakpoint:
		vm.breakpoints[cmd.Addr] = Breakpoint{Reason: cmd.Reason}

	case CmdClearBreakpoint:
		delete(vm.breakpoints, cmd.Addr)

	case CmdClearAllBreakpoints:
		vm.breakpoints = make(map[uint16]Breakpoint)

	case CmdStepOver:
		vm.stepOverAddr = vm.PC + 2

	case CmdStepOut:
		vm.stepOutSP = int(vm.Stack.SP())
	}

	return vm.shouldExit
}

// drainNonBlocking services every debug command currently queued
// without blocking, per spec.md §4.7 step 2.
func (vm *VM) drainNonBlocking() {
	for {
		select {
		case cmd, ok := <-vm.debugIn:
			if !ok {
				vm.Log.Log("debug-in channel closed")
				vm.shouldExit = true
				return
			}
			if vm.handleCommand(cmd) {
				vm.shouldExit = true
				return
			}
		default:
			return
		}
	}
}

// waitForResume blocks on the debug channel, servicing peek/inject
// commands, until a ResumeExecution or Exit command arrives. Timers do
// not tick while blocked. It sends nothing on entry: the Breakpoint
// response for an address breakpoint is sent by checkBreakpoints, and
// BRK sends none.
func (vm *VM) waitForResume() {
	for {
		cmd, ok := <-vm.debugIn
		if !ok {
			vm.shouldExit = true
			return
		}

		switch cmd.Kind {
		case CmdExit:
			vm.shouldExit = true
			return
		case CmdResumeExecution:
			return
		default:
			if vm.handleCommand(cmd) {
				vm.shouldExit = true
				return
			}
		}
	}
}
