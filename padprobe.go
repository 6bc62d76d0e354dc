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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jetsetilly/padprobe/curated"
	"github.com/jetsetilly/padprobe/logger"
	"github.com/jetsetilly/padprobe/modalflag"
	"github.com/jetsetilly/padprobe/monitor"
	"github.com/jetsetilly/padprobe/paths"
	"github.com/jetsetilly/padprobe/prefs"
	"github.com/jetsetilly/padprobe/sdlinput"
	"github.com/jetsetilly/padprobe/statsview"
	"github.com/jetsetilly/padprobe/version"
)

// the mappings file loaded from the resource directory when no file is given
// on the command line
const defaultMappingsFile = "gamecontrollerdb.txt"

// values used with os.Exit()
const (
	exitArguments = 10
	exitRuntime   = 20
)

// badArguments wraps errors caused by the command line, rather than by the
// controller subsystem.
const badArguments = "arguments: %v"

func init() {
	// SDL must be called from the main thread and init() functions are run on
	// the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch returns the value to be used with os.Exit().
func launch(args []string, out io.Writer, errOut io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "LIST")
	md.AdditionalHelp(fmt.Sprintf("%s\nuse -help after a mode for the flags of that mode", version.String()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(errOut, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md, out, errOut)

	case "LIST":
		err = listMode(md, out, errOut)
	}

	if err != nil {
		fmt.Fprintf(errOut, "* error in %s mode: %s\n", md, err)
		if curated.Is(err, badArguments) {
			return exitArguments
		}
		return exitRuntime
	}

	return 0
}

func monitorMode(md *modalflag.Modes, out io.Writer, errOut io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("prints a line for every controller event until quit (ctrl-c)")

	opts := addOptions(md, true)
	p, err := opts.parse(md, errOut)
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref := monitor.NewPreferences()
	err = opts.configure(pref)
	if err != nil {
		return err
	}

	sub, err := sdlinput.NewSubsystem()
	if err != nil {
		return err
	}
	defer sub.Destroy()

	mon := monitor.NewMonitor(sub, out, errOut)
	mon.Prefs = pref
	defer mon.End()

	if pth := opts.mappingsPath(); pth != "" {
		err = mon.LoadMappings(pth)
		if err != nil {
			return err
		}
	}

	if opts.stats != nil && *opts.stats {
		statsview.Launch(out)
	}

	return mon.Run(sdlinput.NewEventSource())
}

func listMode(md *modalflag.Modes, out io.Writer, errOut io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("lists the joysticks attached when the program starts")

	opts := addOptions(md, false)
	p, err := opts.parse(md, errOut)
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref := monitor.NewPreferences()
	err = opts.configure(pref)
	if err != nil {
		return err
	}

	sub, err := sdlinput.NewSubsystem()
	if err != nil {
		return err
	}
	defer sub.Destroy()

	mon := monitor.NewMonitor(sub, out, errOut)
	mon.Prefs = pref

	if pth := opts.mappingsPath(); pth != "" {
		err = mon.LoadMappings(pth)
		if err != nil {
			return err
		}
	}

	return mon.List(sub.Devices())
}

// options common to the MONITOR and LIST modes. fields that are nil were not
// added for the mode.
type options struct {
	mappings    *string
	showMapping *bool
	deadzone    *uint
	prefs       *string
	log         *bool
	stats       *bool

	// names of flags that were set on the command line
	set map[string]bool
}

// the show mapping flag and its aliases
var showMappingFlags = []string{"verbose", "v", "debug", "d"}

func addOptions(md *modalflag.Modes, events bool) *options {
	opts := &options{
		set: make(map[string]bool),
	}

	opts.mappings = md.AddString("mappings", "", "controller mappings file to load")
	md.AddAlias("m", "mappings")

	opts.showMapping = md.AddBool(showMappingFlags[0], false, "show mapping of controllers")
	for _, a := range showMappingFlags[1:] {
		md.AddAlias(a, showMappingFlags[0])
	}

	if events {
		opts.deadzone = md.AddUint("deadzone", 0, fmt.Sprintf("do not show axis values of this magnitude or less (0 to %d)", monitor.MaxDeadzone))
	}

	opts.prefs = md.AddString("prefs", "", "preferences to apply (eg. \"deadzone::8000; showmapping::true\")")
	opts.log = md.AddBool("log", false, "echo debugging log to stderr")

	if events && statsview.Available() {
		opts.stats = md.AddBool("statsview", false, "run stats server")
	}

	return opts
}

// parse the flags for the mode. the log echo is set as a side effect.
func (opts *options) parse(md *modalflag.Modes, errOut io.Writer) (modalflag.ParseResult, error) {
	p, err := md.Parse()
	if err != nil {
		return p, curated.Errorf(badArguments, err)
	}
	if p != modalflag.ParseContinue {
		return p, nil
	}

	if len(md.RemainingArgs()) > 0 {
		return modalflag.ParseError, curated.Errorf(badArguments, fmt.Sprintf("unexpected argument: %s", md.GetArg(0)))
	}

	md.Visit(func(flag string) {
		opts.set[flag] = true
	})

	// set debugging log echo
	if *opts.log {
		if f, ok := errOut.(*os.File); ok {
			logger.SetEcho(logger.EchoWriter(f))
		} else {
			logger.SetEcho(errOut)
		}
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "padprobe", version.String())

	return p, nil
}

// configure preferences. flags set on the command line take priority over the
// -prefs string, which takes priority over the default values.
func (opts *options) configure(pref *monitor.Preferences) error {
	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		err := pref.FromCommandLine()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "padprobe", "unused preferences: %s", unused)
		}
		if err != nil {
			return curated.Errorf(badArguments, err)
		}
	}

	for _, f := range showMappingFlags {
		if opts.set[f] {
			err := pref.ShowMapping.Set(*opts.showMapping)
			if err != nil {
				return curated.Errorf(badArguments, err)
			}
			break // for loop
		}
	}

	if opts.deadzone != nil && opts.set["deadzone"] {
		err := pref.Deadzone.Set(*opts.deadzone)
		if err != nil {
			return curated.Errorf(badArguments, err)
		}
	}

	logger.Logf(logger.Allow, "padprobe", "preferences: %s", pref)

	return nil
}

// mappingsPath returns the mappings file to load. an empty string means that
// there is no file to load.
func (opts *options) mappingsPath() string {
	if *opts.mappings != "" {
		return *opts.mappings
	}

	pth := paths.ResourcePath(defaultMappingsFile)
	if _, err := os.Stat(pth); err != nil {
		logger.Logf(logger.Allow, "padprobe", "no default mappings file (%s)", pth)
		return ""
	}

	return pth
}
