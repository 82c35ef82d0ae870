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

func TestDrawSpriteSetsPixels(t *testing.T) {
	fb := NewFramebuffer()

	collision := fb.DrawSprite(0, 0, []byte{0xF0})
	assert.False(t, collision)

	px := fb.Framebuffer()
	assert.True(t, px[0])
	assert.True(t, px[3])
	assert.False(t, px[4])
}

func TestDrawSpriteXORCollision(t *testing.T) {
	fb := NewFramebuffer()

	fb.DrawSprite(0, 0, []byte{0xFF})
	collision := fb.DrawSprite(0, 0, []byte{0xFF})

	assert.True(t, collision)

	px := fb.Framebuffer()
	for i := 0; i < 8; i++ {
		assert.False(t, px[i], "second XOR draw should have turned every pixel back off")
	}
}

func TestDrawSpriteWraps(t *testing.T) {
	fb := NewFramebuffer()

	fb.DrawSprite(byte(DisplayWidth-1), byte(DisplayHeight-1), []byte{0xC0})

	px := fb.Framebuffer()
	assert.True(t, px[(DisplayHeight-1)*DisplayWidth+(DisplayWidth-1)])
	assert.True(t, px[(DisplayHeight-1)*DisplayWidth+0], "sprite column should wrap around the right edge")
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer()
	fb.DrawSprite(0, 0, []byte{0xFF})
	fb.Clear()

	for _, on := range fb.Framebuffer() {
		assert.False(t, on)
	}
}
