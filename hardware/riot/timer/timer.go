// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package timer implements the interval timer of the PIA 6532.
package timer

import (
	"fmt"
)

// Interval indicates how often (in CPU cycles) the timer value decreases.
// The following rules apply:
//
//   - set to 1, 8, 64 or 1024 depending on which address has been written to
//     by the CPU
//   - is changed to 1 once the value underflows
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

// IntervalList is a list of all possible string representations of the
// Interval type.
var IntervalList = []string{"TIM1T", "TIM8T", "TIM64T", "T1024T"}

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown interval"
}

// IntervalFromRegister returns the interval selected by the lower two bits of
// a timer register address.
func IntervalFromRegister(address uint16) Interval {
	switch address & 0x03 {
	case 0:
		return TIM1T
	case 1:
		return TIM8T
	case 2:
		return TIM64T
	}
	return T1024T
}

// Timer implements the timer part of the PIA 6532 (the T in RIOT).
type Timer struct {
	// the interval currently in effect. this will differ from the interval
	// most recently requested by the CPU after an underflow
	Interval Interval

	// INTIM is the current timer value
	INTIM uint8

	// the underflow flag. reflected in bit 7 of the TIMINT register
	Underflow bool

	// the number of cycles since the last decrement
	Counter int
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset timer to its power on state.
func (tmr *Timer) Reset() {
	tmr.Interval = T1024T
	tmr.INTIM = 0
	tmr.Underflow = false
	tmr.Counter = 0
}

func (tmr Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x cntr=%d intv=%s underflow=%v",
		tmr.INTIM,
		tmr.Counter,
		tmr.Interval,
		tmr.Underflow,
	)
}

// Set the timer value and interval. Clears the underflow flag.
func (tmr *Timer) Set(interval Interval, value uint8) {
	tmr.Interval = interval
	tmr.INTIM = value
	tmr.Counter = 0
	tmr.Underflow = false
}

// ReadINTIM returns the timer value as the CPU reads it. The underflow flag
// is cleared.
func (tmr *Timer) ReadINTIM() uint8 {
	tmr.Underflow = false
	return tmr.INTIM
}

// TIMINT returns the value of the TIMINT register.
func (tmr Timer) TIMINT() uint8 {
	if tmr.Underflow {
		return 0x80
	}
	return 0x00
}

// Step timer forward one cycle.
func (tmr *Timer) Step() {
	tmr.Counter++
	if tmr.Counter < int(tmr.Interval) {
		return
	}
	tmr.Counter = 0

	// on underflow the timer decrements every cycle
	if tmr.INTIM == 0 {
		tmr.Interval = TIM1T
		tmr.Underflow = true
	}
	tmr.INTIM--
}
