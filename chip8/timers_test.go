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

func TestTimersTickDecrementsAtSixtyHz(t *testing.T) {
	tm := &Timers{}
	tm.SetDelay(2)
	tm.SetSound(1)

	tm.Tick(timerPeriodNs - 1)
	assert.Equal(t, byte(2), tm.GetDelay(), "should not decrement before a full period accumulates")

	tm.Tick(1)
	assert.Equal(t, byte(1), tm.GetDelay())
	assert.Equal(t, byte(0), tm.GetSound())
}

func TestTimersFloorAtZero(t *testing.T) {
	tm := &Timers{}
	tm.SetDelay(1)

	tm.Tick(timerPeriodNs * 5)
	assert.Equal(t, byte(0), tm.GetDelay())
}

func TestTimersReset(t *testing.T) {
	tm := &Timers{}
	tm.SetDelay(10)
	tm.SetSound(10)
	tm.Tick(timerPeriodNs)

	tm.Reset()
	assert.Equal(t, byte(0), tm.GetDelay())
	assert.Equal(t, byte(0), tm.GetSound())
}
