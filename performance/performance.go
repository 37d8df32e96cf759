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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/preferences"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the period before measurement begins. allows the emulation to settle down
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, prefs *preferences.Preferences, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	vcs, err := hardware.NewVCS(prefs)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = vcs.LoadCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames, numCycles, err := measure(vcs, profile, leadTime, dur)
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(vcs.TIA.Spec, numFrames, dur.Seconds())
	mhz, clkAccuracy := CalcClock(numCycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.3f MHz %.1f%%\n", mhz, clkAccuracy)

	return nil
}

// run the emulation for the lead time and then for the measurement duration.
// returns the number of frames and CPU cycles in the measurement period
func measure(vcs *hardware.VCS, profile Profile, lead time.Duration, dur time.Duration) (int, uint64, error) {
	var startFrame int
	var startCycles uint64

	runner := func() error {
		// the timer signals false when the lead time has elapsed and true
		// when the measurement period has ended
		timerChan := make(chan bool, 2)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		return vcs.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}
				startFrame = vcs.TIA.FrameNum
				startCycles = vcs.Mem.Cycles()
			default:
			}
			return true, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return 0, 0, fmt.Errorf("performance: %w", err)
	}

	return vcs.TIA.FrameNum - startFrame, vcs.Mem.Cycles() - startCycles, nil
}
