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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleKnownOpcodes(t *testing.T) {
	assert.Equal(t, "BRK", Disassemble(0x0000))
	assert.Equal(t, "CLS", Disassemble(0x00E0))
	assert.Equal(t, "RET", Disassemble(0x00EE))
	assert.Equal(t, "CALL   #0ABC", Disassemble(0x2ABC))
	assert.Equal(t, "LD     I, #0142", Disassemble(0xA142))
	assert.Equal(t, "DRW    V1, V2, 5", Disassemble(0xD125))
	assert.Equal(t, "SKP    V7", Disassemble(0xE79E))
}

func TestDisassembleUnknownWord(t *testing.T) {
	assert.Equal(t, "???    #8128", Disassemble(0x8128))
}
