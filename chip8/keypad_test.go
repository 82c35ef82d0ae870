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

func TestNibbleForKeyCaseInsensitive(t *testing.T) {
	n, ok := NibbleForKey('a')
	assert.True(t, ok)
	assert.Equal(t, byte(0x7), n)

	n, ok = NibbleForKey('A')
	assert.True(t, ok)
	assert.Equal(t, byte(0x7), n)

	_, ok = NibbleForKey('g')
	assert.False(t, ok)
}

func TestInjectedKeypadIsDown(t *testing.T) {
	kp := NewInjectedKeypad()
	kp.Inject("asd")

	assert.True(t, kp.IsDown(0x7)) // A
	assert.True(t, kp.IsDown(0x8)) // S
	assert.True(t, kp.IsDown(0x9)) // D
	assert.False(t, kp.IsDown(0x1))
}

func TestInjectedKeypadIsDownIgnoresUnmapped(t *testing.T) {
	kp := NewInjectedKeypad()
	kp.Inject("a!g")

	assert.True(t, kp.IsDown(0x7))
}

func TestInjectedKeypadWaitForPress(t *testing.T) {
	kp := NewInjectedKeypad()
	kp.Inject("q")

	assert.Equal(t, byte(0x4), kp.WaitForPress())
}

func TestInjectedKeypadWaitForPressPanicsWhenUnmapped(t *testing.T) {
	kp := NewInjectedKeypad()
	kp.Inject("g")

	assert.Panics(t, func() {
		kp.WaitForPress()
	})
}

func TestInjectedKeypadWaitForPressPanicsWhenEmpty(t *testing.T) {
	kp := NewInjectedKeypad()

	assert.Panics(t, func() {
		kp.WaitForPress()
	})
}
