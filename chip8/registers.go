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

// VF is the index of the flag register: carry on add, NOT-borrow on
// sub, LSB on SHR, MSB on SHL, collision on sprite draw.
const VF = 0xF

// Registers holds the sixteen 8-bit general-purpose registers V0..VF.
type Registers struct {
	v [16]byte
}

// Get returns the value of register i. i must be in 0..=15; an
// out-of-range index is a programming error surfaced as an ExecError,
// never silently clamped.
func (r *Registers) Get(i byte) (byte, error) {
	if i > 0xF {
		return 0, ExecError{Op: "Registers.Get", Msg: "register index out of range"}
	}

	return r.v[i], nil
}

// Set stores v into register i.
func (r *Registers) Set(i byte, v byte) error {
	if i > 0xF {
		return ExecError{Op: "Registers.Set", Msg: "register index out of range"}
	}

	r.v[i] = v
	return nil
}

// Snapshot returns a copy of all sixteen registers, for the debug
// channel and diagnostics.
func (r *Registers) Snapshot() [16]byte {
	return r.v
}
