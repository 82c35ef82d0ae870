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

// execute dispatches a decoded Opcode to its executor and returns the
// PC delta the dispatcher should add: 0 if the instruction wrote PC
// itself, 2 otherwise, 4 if it skipped the next instruction. This
// mirrors spec.md §4.7's instruction semantics table exactly.
func (vm *VM) execute(op Opcode) (uint16, error) {
	switch op.Tag {
	case OpSYS:
		return 2, nil
	case OpCLS:
		vm.Display.Clear()
		return 2, nil
	case OpRET:
		return vm.opRET()
	case OpJP:
		vm.PC = op.Addr
		return 0, nil
	case OpCALL:
		return vm.opCALL(op.Addr)
	case OpSEVxByte:
		return vm.skipIf(vm.vx(op.X) == op.Byte)
	case OpSNEVxByte:
		return vm.skipIf(vm.vx(op.X) != op.Byte)
	case OpSEVxVy:
		return vm.skipIf(vm.vx(op.X) == vm.vx(op.Y))
	case OpSNEVxVy:
		return vm.skipIf(vm.vx(op.X) != vm.vx(op.Y))
	case OpLDVxByte:
		return 2, vm.Registers.Set(op.X, op.Byte)
	case OpADDVxByte:
		// Per spec.md §4.7: wraps modulo 256, and explicitly does not
		// set VF, unlike ADD Vx, Vy.
		return 2, vm.Registers.Set(op.X, vm.vx(op.X)+op.Byte)
	case OpLDVxVy:
		return 2, vm.Registers.Set(op.X, vm.vx(op.Y))
	case OpOR:
		return 2, vm.Registers.Set(op.X, vm.vx(op.X)|vm.vx(op.Y))
	case OpAND:
		return 2, vm.Registers.Set(op.X, vm.vx(op.X)&vm.vx(op.Y))
	case OpXOR:
		return 2, vm.Registers.Set(op.X, vm.vx(op.X)^vm.vx(op.Y))
	case OpADDVxVy:
		return vm.opADDVxVy(op.X, op.Y)
	case OpSUB:
		return vm.opSUB(op.X, op.Y)
	case OpSHR:
		return vm.opSHR(op.X)
	case OpSUBN:
		return vm.opSUBN(op.X, op.Y)
	case OpSHL:
		return vm.opSHL(op.X)
	case OpLDIAddr:
		vm.I = op.Addr
		return 2, nil
	case OpJPV0:
		return vm.opJPV0(op.Addr)
	case OpRND:
		return 2, vm.Registers.Set(op.X, byte(vm.rng.Intn(256))&op.Byte)
	case OpDRW:
		return vm.opDRW(op.X, op.Y, op.N)
	case OpSKP:
		return vm.skipIf(vm.Keypad.IsDown(vm.vx(op.X) & 0xF))
	case OpSKNP:
		return vm.skipIf(!vm.Keypad.IsDown(vm.vx(op.X) & 0xF))
	case OpLDVxDT:
		return 2, vm.Registers.Set(op.X, vm.Timers.GetDelay())
	case OpLDVxK:
		key := vm.Keypad.WaitForPress()
		return 2, vm.Registers.Set(op.X, key)
	case OpLDDTVx:
		vm.Timers.SetDelay(vm.vx(op.X))
		return 2, nil
	case OpLDSTVx:
		vm.Timers.SetSound(vm.vx(op.X))
		return 2, nil
	case OpADDIVx:
		vm.I += uint16(vm.vx(op.X))
		return 2, nil
	case OpLDFVx:
		vm.I = SpriteAddrForDigit(vm.vx(op.X) & 0x0F)
		return 2, nil
	case OpLDBVx:
		return 2, vm.opBCD(op.X)
	case OpLDIVx:
		return 2, vm.opSaveRegs(op.X)
	case OpLDVxI:
		return 2, vm.opLoadRegs(op.X)
	}

	return 0, ExecError{Op: "execute", Msg: "unhandled opcode tag"}
}

// vx reads register x, panicking only in the impossible case of x being
// out of the 4-bit range the decoder guarantees.
func (vm *VM) vx(x byte) byte {
	v, err := vm.Registers.Get(x)
	if err != nil {
		panic(err)
	}
	return v
}

func (vm *VM) skipIf(cond bool) (uint16, error) {
	if cond {
		return 4, nil
	}
	return 2, nil
}

func (vm *VM) opRET() (uint16, error) {
	addr, err := vm.Stack.Pop()
	if err != nil {
		return 0, err
	}
	vm.PC = addr
	return 0, nil
}

func (vm *VM) opCALL(addr uint16) (uint16, error) {
	if err := vm.Stack.Push(vm.PC + 2); err != nil {
		return 0, err
	}
	vm.PC = addr
	return 0, nil
}

func (vm *VM) opJPV0(addr uint16) (uint16, error) {
	target := addr + uint16(vm.vx(0))
	if int(target) >= MemorySize {
		return 0, boundsError("JP V0", int(target), 0, MemorySize)
	}
	vm.PC = target
	return 0, nil
}

func (vm *VM) opADDVxVy(x, y byte) (uint16, error) {
	vxv, vyv := vm.vx(x), vm.vx(y)
	sum := uint16(vxv) + uint16(vyv)

	if err := vm.Registers.Set(x, byte(sum&0xFF)); err != nil {
		return 0, err
	}

	carry := byte(0)
	if sum > 0xFF {
		carry = 1
	}
	return 2, vm.Registers.Set(VF, carry)
}

func (vm *VM) opSUB(x, y byte) (uint16, error) {
	vxv, vyv := vm.vx(x), vm.vx(y)

	flag := byte(0)
	if vxv > vyv {
		flag = 1
	}

	if err := vm.Registers.Set(x, vxv-vyv); err != nil {
		return 0, err
	}
	return 2, vm.Registers.Set(VF, flag)
}

func (vm *VM) opSUBN(x, y byte) (uint16, error) {
	vxv, vyv := vm.vx(x), vm.vx(y)

	flag := byte(0)
	if vyv > vxv {
		flag = 1
	}

	if err := vm.Registers.Set(x, vyv-vxv); err != nil {
		return 0, err
	}
	return 2, vm.Registers.Set(VF, flag)
}

func (vm *VM) opSHR(x byte) (uint16, error) {
	vxv := vm.vx(x)
	lsb := vxv & 1

	if err := vm.Registers.Set(x, vxv>>1); err != nil {
		return 0, err
	}
	return 2, vm.Registers.Set(VF, lsb)
}

func (vm *VM) opSHL(x byte) (uint16, error) {
	vxv := vm.vx(x)
	msb := (vxv >> 7) & 1

	if err := vm.Registers.Set(x, vxv<<1); err != nil {
		return 0, err
	}
	return 2, vm.Registers.Set(VF, msb)
}

func (vm *VM) opDRW(x, y, n byte) (uint16, error) {
	rows := make([]byte, n)
	for i := byte(0); i < n; i++ {
		b, err := vm.Memory.ReadByte(vm.I + uint16(i))
		if err != nil {
			return 0, err
		}
		rows[i] = b
	}

	collision := vm.Display.DrawSprite(vm.vx(x), vm.vx(y), rows)

	flag := byte(0)
	if collision {
		flag = 1
	}
	return 2, vm.Registers.Set(VF, flag)
}

// opBCD expands Vx into its three decimal digits and writes them,
// hundreds first, to memory at I, I+1, I+2.
func (vm *VM) opBCD(x byte) error {
	v := vm.vx(x)

	digits := [3]byte{v / 100, (v / 10) % 10, v % 10}

	for i, d := range digits {
		if err := vm.Memory.WriteByte(vm.I+uint16(i), d); err != nil {
			return err
		}
	}

	return nil
}

// opSaveRegs copies V0..Vx into memory starting at I.
func (vm *VM) opSaveRegs(x byte) error {
	for i := byte(0); i <= x; i++ {
		if err := vm.Memory.WriteByte(vm.I+uint16(i), vm.vx(i)); err != nil {
			return err
		}
	}
	return nil
}

// opLoadRegs copies memory at I..I+x into V0..Vx.
func (vm *VM) opLoadRegs(x byte) error {
	for i := byte(0); i <= x; i++ {
		b, err := vm.Memory.ReadByte(vm.I + uint16(i))
		if err != nil {
			return err
		}
		if err := vm.Registers.Set(i, b); err != nil {
			return err
		}
	}
	return nil
}
