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

package performance

import (
	"sync/atomic"
	"time"
)

// Limiter caps the rate at which frames are produced. It also measures the
// actual rate.
type Limiter struct {
	// the requested number of frames per second
	requested atomic.Value // float32

	// the actual number of frames per second
	actual atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when the frame rate changes
	pulse *time.Ticker

	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The fps argument is the requested number of frames per second.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		measureTime:    time.Now(),
		pulse:          time.NewTicker(time.Second),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.actual.Store(float32(0))
	lmtr.SetRate(fps)
	return lmtr
}

// SetRate changes the requested number of frames per second. A value of zero
// or less is ignored.
func (lmtr *Limiter) SetRate(fps float32) {
	if fps <= 0.0 {
		return
	}
	lmtr.requested.Store(fps)
	lmtr.pulse.Reset(time.Duration(float64(time.Second) / float64(fps)))

	// restart actual FPS rate measurement
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Requested returns the requested number of frames per second.
func (lmtr *Limiter) Requested() float32 {
	return lmtr.requested.Load().(float32)
}

// Actual returns the most recent measurement of the frame rate. It is
// measured once per second.
func (lmtr *Limiter) Actual() float32 {
	return lmtr.actual.Load().(float32)
}

// CheckFrame should be called every frame. It blocks until it is time for
// the next frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++
	<-lmtr.pulse.C
	lmtr.measure()
}

func (lmtr *Limiter) measure() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter. CheckFrame() must not be called after Stop().
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
