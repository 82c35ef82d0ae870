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

// Package sdlrenderer adapts the VM's Display and Keypad interfaces to
// an actual window using go-sdl2. It is the one real, wired rendering
// and input collaborator; the VM core never imports it, only the
// chip8.Display and chip8.Keypad interfaces it satisfies, per
// spec.md §9.
package sdlrenderer

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-chip8/chip8vm/chip8"
)

const pixelScale = 12

// Renderer is the window-backed chip8.Display and chip8.Keypad
// implementation, grounded in massung's screen.go (a render target
// refreshed every frame from VM video memory) and input.go (a
// scancode-to-nibble key map driving PressKey/ReleaseKey). Unlike
// massung's package-level Window/Renderer/KeyMap globals, state lives
// on the struct so nothing here is reachable from the VM goroutine
// except through the two interfaces it implements.
type Renderer struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	mu sync.Mutex
	fb *chip8.Framebuffer

	keysDown [16]bool
	waitCh   chan byte
}

// scancodeNibble assigns each physical key the same CHIP-8 nibble
// chip8.KeyMap assigns it, so a ROM behaves identically whether driven
// by this renderer or by chip8.InjectedKeypad in tests.
var scancodeNibble = map[sdl.Scancode]byte{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// New opens a window sized for the classical CHIP-8 framebuffer scaled
// up by pixelScale and returns the adapter.
func New(title string) (*Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdlrenderer: init")
	}

	w := int32(chip8.DisplayWidth * pixelScale)
	h := int32(chip8.DisplayHeight * pixelScale)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlrenderer: create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlrenderer: create renderer")
	}

	return &Renderer{
		window:   window,
		renderer: renderer,
		fb:       chip8.NewFramebuffer(),
		waitCh:   make(chan byte, 1),
	}, nil
}

// Close tears down the SDL renderer, window and subsystem.
func (r *Renderer) Close() {
	r.renderer.Destroy()
	r.window.Destroy()
	sdl.Quit()
}

// Clear implements chip8.Display.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb.Clear()
}

// DrawSprite implements chip8.Display.
func (r *Renderer) DrawSprite(x, y byte, rows []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb.DrawSprite(x, y, rows)
}

// Framebuffer implements chip8.Display.
func (r *Renderer) Framebuffer() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb.Framebuffer()
}

// Present draws the current framebuffer to the window. Called only
// from the goroutine that owns the SDL event loop, mirroring massung's
// RefreshScreen/CopyScreen split between video memory and the window.
func (r *Renderer) Present() {
	r.mu.Lock()
	pixels := r.fb.Framebuffer()
	r.mu.Unlock()

	r.renderer.SetDrawColor(143, 145, 133, 255)
	r.renderer.Clear()
	r.renderer.SetDrawColor(17, 29, 43, 255)

	for i, on := range pixels {
		if !on {
			continue
		}
		x := int32(i%chip8.DisplayWidth) * pixelScale
		y := int32(i/chip8.DisplayWidth) * pixelScale
		r.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: pixelScale, H: pixelScale})
	}

	r.renderer.Present()
}

// PollEvents drains the SDL event queue, updating key state and
// reporting whether the window should stay open.
func (r *Renderer) PollEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Type == sdl.KEYUP && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false
			}

			nibble, ok := scancodeNibble[ev.Keysym.Scancode]
			if !ok {
				continue
			}

			down := ev.Type == sdl.KEYDOWN

			r.mu.Lock()
			r.keysDown[nibble] = down
			r.mu.Unlock()

			if down {
				select {
				case r.waitCh <- nibble:
				default:
				}
			}
		}
	}

	return true
}

// IsDown implements chip8.Keypad.
func (r *Renderer) IsDown(nibble byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keysDown[nibble&0xF]
}

// WaitForPress implements chip8.Keypad. It blocks the VM goroutine
// until PollEvents, running on the window's goroutine, observes a
// key-down edge.
func (r *Renderer) WaitForPress() byte {
	return <-r.waitCh
}
