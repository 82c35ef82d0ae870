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
	"github.com/stretchr/testify/require"
)

func TestDecodeBRK(t *testing.T) {
	op, err := Decode(0x0000, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpBRK, op.Tag)
}

func TestDecodeCLSAndRET(t *testing.T) {
	op, err := Decode(0x00E0, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpCLS, op.Tag)

	op, err = Decode(0x00EE, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpRET, op.Tag)
}

func TestDecodeSYSFallthrough(t *testing.T) {
	op, err := Decode(0x0123, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpSYS, op.Tag)
	assert.Equal(t, uint16(0x123), op.Addr)
}

func TestDecodeCALLAndJP(t *testing.T) {
	op, err := Decode(0x2ABC, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpCALL, op.Tag)
	assert.Equal(t, uint16(0xABC), op.Addr)

	op, err = Decode(0x1456, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpJP, op.Tag)
	assert.Equal(t, uint16(0x456), op.Addr)
}

func TestDecodeArithmeticFamily(t *testing.T) {
	cases := []struct {
		word uint16
		tag  OpTag
	}{
		{0x8120, OpLDVxVy},
		{0x8121, OpOR},
		{0x8122, OpAND},
		{0x8123, OpXOR},
		{0x8124, OpADDVxVy},
		{0x8125, OpSUB},
		{0x8126, OpSHR},
		{0x8127, OpSUBN},
		{0x812E, OpSHL},
	}

	for _, c := range cases {
		op, err := Decode(c.word, 0x200)
		require.NoError(t, err)
		assert.Equal(t, c.tag, op.Tag, "word %04X", c.word)
		assert.Equal(t, byte(1), op.X)
		assert.Equal(t, byte(2), op.Y)
	}
}

func TestDecodeSHRIgnoresVy(t *testing.T) {
	op, err := Decode(0x8F06, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpSHR, op.Tag)
	assert.Equal(t, byte(0xF), op.X)
	assert.Equal(t, byte(0x0), op.Y) // decoded, but the executor never reads it
}

func TestDecodeIllegal8xyNibble(t *testing.T) {
	_, err := Decode(0x8128, 0x200)
	assert.Error(t, err)
	assert.IsType(t, DecodeError{}, err)
}

func TestDecodeIllegal5xy0And9xy0(t *testing.T) {
	_, err := Decode(0x5121, 0x200)
	assert.Error(t, err)

	_, err = Decode(0x9121, 0x200)
	assert.Error(t, err)
}

func TestDecodeSkipFamily(t *testing.T) {
	op, err := Decode(0x37AB, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpSEVxByte, op.Tag)
	assert.Equal(t, byte(7), op.X)
	assert.Equal(t, byte(0xAB), op.Byte)

	op, err = Decode(0xE79E, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpSKP, op.Tag)
	assert.Equal(t, byte(7), op.X)

	op, err = Decode(0xE8A1, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpSKNP, op.Tag)
	assert.Equal(t, byte(8), op.X)
}

func TestDecodeFFamily(t *testing.T) {
	cases := []struct {
		word uint16
		tag  OpTag
	}{
		{0xF107, OpLDVxDT},
		{0xF10A, OpLDVxK},
		{0xF115, OpLDDTVx},
		{0xF118, OpLDSTVx},
		{0xF11E, OpADDIVx},
		{0xF129, OpLDFVx},
		{0xF133, OpLDBVx},
		{0xF155, OpLDIVx},
		{0xF165, OpLDVxI},
	}

	for _, c := range cases {
		op, err := Decode(c.word, 0x200)
		require.NoError(t, err)
		assert.Equal(t, c.tag, op.Tag, "word %04X", c.word)
		assert.Equal(t, byte(1), op.X)
	}
}

func TestDecodeIllegalFFamily(t *testing.T) {
	_, err := Decode(0xF199, 0x200)
	assert.Error(t, err)
}

func TestDecodeIllegalEFamily(t *testing.T) {
	_, err := Decode(0xE199, 0x200)
	assert.Error(t, err)
}

func TestDecodeDRW(t *testing.T) {
	op, err := Decode(0xD125, 0x200)
	require.NoError(t, err)
	assert.Equal(t, OpDRW, op.Tag)
	assert.Equal(t, byte(1), op.X)
	assert.Equal(t, byte(2), op.Y)
	assert.Equal(t, byte(5), op.N)
}
