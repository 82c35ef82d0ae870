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

import "unicode"

// Keypad is the collaborator the VM core queries for key state. Per
// spec.md §4.5 it exposes exactly two operations: a non-blocking
// "is this key down?" and a blocking "wait for the next keypress".
type Keypad interface {
	// IsDown reports whether the given CHIP-8 key nibble (0..=15) is
	// currently held down.
	IsDown(nibble byte) bool

	// WaitForPress blocks until a key is pressed and returns its
	// CHIP-8 nibble.
	WaitForPress() byte
}

// KeyMap is the host-keyboard-to-CHIP-8-nibble mapping from spec.md
// §4.5, case-insensitive.
var KeyMap = map[rune]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'Q': 0x4, 'W': 0x5, 'E': 0x6, 'R': 0xD,
	'A': 0x7, 'S': 0x8, 'D': 0x9, 'F': 0xE,
	'Z': 0xA, 'X': 0x0, 'C': 0xB, 'V': 0xF,
}

// NibbleForKey maps a host key rune (case-insensitive) to its CHIP-8
// nibble, and reports whether it is mapped at all.
func NibbleForKey(r rune) (byte, bool) {
	n, ok := KeyMap[unicode.ToUpper(r)]
	return n, ok
}

// InjectedKeypad is a Keypad whose state is driven entirely by a test
// harness instead of a real keyboard. An injected string is treated as
// the set of currently-down keys for IsDown; WaitForPress decodes and
// returns its last character.
//
// It has no real blocking behavior of its own: Inject delivers the
// harness's string and WaitForPress/IsDown read whatever was last
// injected. This matches spec.md §4.5's "test harness has injected an
// input channel" wording — the channel is this struct's injected field,
// guarded by a mutex since it is written from the harness goroutine and
// read from the VM goroutine.
type InjectedKeypad struct {
	mu       chan struct{} // binary semaphore, set up by NewInjectedKeypad; a zero value blocks forever
	injected string
}

// NewInjectedKeypad returns a Keypad with no keys down.
func NewInjectedKeypad() *InjectedKeypad {
	k := &InjectedKeypad{mu: make(chan struct{}, 1)}
	k.mu <- struct{}{}
	return k
}

// Inject replaces the currently-down key set / pending keypress.
func (k *InjectedKeypad) Inject(s string) {
	<-k.mu
	k.injected = s
	k.mu <- struct{}{}
}

// IsDown reports whether nibble appears anywhere in the last-injected
// string, once each character is mapped through NibbleForKey. Unmapped
// characters are ignored, per spec.md §7's "unmapped key: ignored for
// is_down".
func (k *InjectedKeypad) IsDown(nibble byte) bool {
	<-k.mu
	s := k.injected
	k.mu <- struct{}{}

	for _, r := range s {
		if n, ok := NibbleForKey(r); ok && n == nibble {
			return true
		}
	}

	return false
}

// WaitForPress decodes the last character of the last-injected string
// and returns its nibble. It panics if that character is unmapped,
// since spec.md §7 marks this case fatal "if the harness is in test
// mode" — InjectedKeypad only ever exists in test mode.
func (k *InjectedKeypad) WaitForPress() byte {
	<-k.mu
	s := k.injected
	k.mu <- struct{}{}

	runes := []rune(s)
	if len(runes) == 0 {
		panic("WaitForPress: no key injected")
	}

	n, ok := NibbleForKey(runes[len(runes)-1])
	if !ok {
		panic("WaitForPress: injected key is not mapped to a CHIP-8 nibble")
	}

	return n
}
