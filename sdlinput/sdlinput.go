// This file is part of padprobe.
//
// padprobe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padprobe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padprobe.  If not, see <https://www.gnu.org/licenses/>.

package sdlinput

import (
	"runtime"

	"github.com/jetsetilly/padprobe/curated"
	"github.com/jetsetilly/padprobe/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	InitFailed        = "sdl: %v"
	DeviceOpenFailed  = "sdl: could not open device %d: %v"
	MappingLoadFailed = "sdl: could not load mappings from %s: %v"
)

// Subsystem implements the monitor.Subsystem interface.
type Subsystem struct{}

// NewSubsystem initialises the SDL game controller subsystem. Destroy() should
// be called when the subsystem is no longer required.
func NewSubsystem() (*Subsystem, error) {
	// SDL calls must come from the main thread. the lock is never released
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	var lv sdl.Version
	sdl.GetVersion(&lv)
	if lv != v {
		logger.Logf(logger.Allow, "sdl", "linked version %d.%d.%d", lv.Major, lv.Minor, lv.Patch)
	}

	return &Subsystem{}, nil
}

// Destroy shuts down SDL. Any controllers still open are invalid after this
// call.
func (sub *Subsystem) Destroy() {
	sdl.Quit()
	logger.Log(logger.Allow, "sdl", "quit")
}
