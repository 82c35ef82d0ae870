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

// The built-in hex-digit font: 16 glyphs, 5 bytes each, one row of 8
// MSB-first pixels per byte. Installed into low memory (well inside the
// 0x000-0x1FF interpreter-reserved region) by NewMemory.
const (
	hexFontBase      = 0x050
	hexFontGlyphSize = 5
)

var hexFontData = [16 * hexFontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Exported well-known glyph addresses, per spec.md §6.
const (
	HexSprite0Addr = hexFontBase + 0*hexFontGlyphSize
	HexSprite1Addr = hexFontBase + 1*hexFontGlyphSize
	HexSprite2Addr = hexFontBase + 2*hexFontGlyphSize
	HexSprite3Addr = hexFontBase + 3*hexFontGlyphSize
	HexSprite4Addr = hexFontBase + 4*hexFontGlyphSize
	HexSprite5Addr = hexFontBase + 5*hexFontGlyphSize
	HexSprite6Addr = hexFontBase + 6*hexFontGlyphSize
	HexSprite7Addr = hexFontBase + 7*hexFontGlyphSize
	HexSprite8Addr = hexFontBase + 8*hexFontGlyphSize
	HexSprite9Addr = hexFontBase + 9*hexFontGlyphSize
	HexSpriteAAddr = hexFontBase + 10*hexFontGlyphSize
	HexSpriteBAddr = hexFontBase + 11*hexFontGlyphSize
	HexSpriteCAddr = hexFontBase + 12*hexFontGlyphSize
	HexSpriteDAddr = hexFontBase + 13*hexFontGlyphSize
	HexSpriteEAddr = hexFontBase + 14*hexFontGlyphSize
	HexSpriteFAddr = hexFontBase + 15*hexFontGlyphSize
)
