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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/digest"
	"github.com/jetsetilly/freya2600/disassembly"
	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/preferences"
	"github.com/jetsetilly/freya2600/inspect"
	"github.com/jetsetilly/freya2600/logger"
	"github.com/jetsetilly/freya2600/modalflag"
	"github.com/jetsetilly/freya2600/performance"
	"github.com/jetsetilly/freya2600/screenshot"
	"github.com/jetsetilly/freya2600/script"
	"github.com/jetsetilly/freya2600/statsview"
	"github.com/jetsetilly/freya2600/version"
)

// exit values
const (
	exitOK       = 0
	exitArgs     = 1
	exitTooLarge = 10
	exitError    = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value to
// be used with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DIGEST", "DISASM", "SCRIPT", "SHOT", "INSPECT", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "DIGEST":
		err = digestMode(md)
	case "DISASM":
		err = disasm(md)
	case "SCRIPT":
		err = scriptMode(ctx, md)
	case "SHOT":
		err = shot(md)
	case "INSPECT":
		err = inspectMode(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	// any preferences pushed by the mode must be popped even on error
	if unused := md.UnusedPrefs(); unused != "" {
		logger.Logf(logger.Allow, "freya2600", "unused preferences: %s", unused)
	}
	logger.SetEcho(nil)

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		if errors.Is(err, cartridge.ErrTooLarge) || errors.Is(err, cartridgeloader.ErrFileTooLarge) {
			return exitTooLarge
		}
		return exitError
	}

	return exitOK
}

// addEmulationFlags adds the flags common to every mode that creates a VCS.
// the returned bool pointer is the log echo flag
func addEmulationFlags(md *modalflag.Modes) *bool {
	md.AddPref("mapping", preferences.KeyMapping, "force use of cartridge mapping")
	md.AddPref("illegal", preferences.KeyIllegalOpcodes, "illegal opcode policy: ERROR or NOP")
	md.AddPref("tv", preferences.KeySpec, "television specification: AUTO or NTSC")
	md.AddPrefs("prefs")
	return md.AddBool("log", false, "echo log to output")
}

// echoLog sends log entries to the output as they are created. the output is
// colourised if it is a terminal
func echoLog(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		output = logger.NewColorizer(output)
	}
	logger.SetEcho(output)
}

// cartridgeArg returns the single cartridge argument of the mode
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// parseEmulationMode parses the flags for the mode and creates a VCS with the
// cartridge loaded
func parseEmulationMode(md *modalflag.Modes, log *bool) (*hardware.VCS, bool, error) {
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return nil, false, err
	}

	if *log {
		echoLog(md.Output)
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return nil, false, err
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, false, err
	}

	vcs, err := hardware.NewVCS(prefs)
	if err != nil {
		return nil, false, err
	}

	err = vcs.LoadCartridge(cartridgeloader.NewLoader(filename, "AUTO"))
	if err != nil {
		return nil, false, err
	}

	return vcs, true, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	log := addEmulationFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	fpsCap := md.AddBool("fpscap", false, "cap the frame rate to the television specification")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	statsAddr := md.AddString("statsaddr", statsview.Address, "address of the runtime statistics server")

	vcs, ok, err := parseEmulationMode(md, log)
	if !ok {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output, *statsAddr)
		defer stop()
	}

	var lmtr *performance.Limiter
	if *fpsCap {
		lmtr = performance.NewLimiter(vcs.TIA.Spec.FramesPerSecond)
		defer lmtr.Stop()
	}

	n := *frames
	if n <= 0 {
		n = math.MaxInt
	}

	start := vcs.TIA.FrameNum

	err = vcs.RunForFrameCount(n, func(_ int) (bool, error) {
		if lmtr != nil {
			lmtr.CheckFrame()
		}
		return ctx.Err() == nil, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames\n", vcs.TIA.FrameNum-start)
	fmt.Fprintln(md.Output, vcs)

	return nil
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()
	log := addEmulationFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	audio := md.AddBool("audio", false, "print the audio digest as well as the video digest")

	vcs, ok, err := parseEmulationMode(md, log)
	if !ok {
		return err
	}

	video := digest.NewVideo(len(vcs.TIA.Pixels))
	aud := digest.NewAudio()

	// audio registers are sampled once per scanline
	for vcs.TIA.FrameNum < *frames {
		frame := vcs.TIA.FrameNum
		if err := vcs.DoLine(); err != nil {
			return err
		}
		aud.Sample(vcs.TIA.Audio)
		if vcs.TIA.FrameNum != frame {
			video.Frame(vcs.TIA.FrameNum, vcs.TIA.Pixels)
		}
	}

	fmt.Fprintln(md.Output, video.Hash())
	if *audio {
		fmt.Fprintln(md.Output, aud.Hash())
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	bank := md.AddInt("bank", -1, "show disassembly for a specific bank")
	frames := md.AddInt("frames", 0, "run the emulation for the number of frames and mark executed instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	var dsm *disassembly.Disassembly

	if *frames > 0 {
		vcs, err := hardware.NewVCS(nil)
		if err != nil {
			return err
		}
		if err := vcs.LoadCartridge(cartridgeloader.NewLoader(filename, *mapping)); err != nil {
			return err
		}

		dsm = disassembly.FromMemory(vcs.Mem.Cart.Snapshot())

		// the bank that was selected when the instruction started
		bank := vcs.Mem.Cart.Bank()

		err = vcs.Run(func() (bool, error) {
			dsm.UpdateEntry(bank, vcs.CPU.LastResult)
			bank = vcs.Mem.Cart.Bank()
			return vcs.TIA.FrameNum < *frames, nil
		})
		if err != nil {
			return err
		}
	} else {
		dsm, err = disassembly.FromCartridge(cartridgeloader.NewLoader(filename, *mapping))
		if err != nil {
			return err
		}
	}

	if *bank < 0 {
		return dsm.Write(md.Output)
	}
	return dsm.WriteBank(md.Output, *bank)
}

func scriptMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	log := addEmulationFlags(md)
	filename := md.AddString("script", "", "Lua script to run against the cartridge")

	vcs, ok, err := parseEmulationMode(md, log)
	if !ok {
		return err
	}

	if *filename == "" {
		return fmt.Errorf("-script required for %s mode", md)
	}

	scr := script.NewScript(vcs, md.Output)
	defer scr.Close()

	return scr.RunFile(ctx, *filename)
}

func shot(md *modalflag.Modes) error {
	md.NewMode()
	log := addEmulationFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run before taking the screenshot")
	scale := md.AddInt("scale", 2, "integer scaling of the screenshot")
	bilinear := md.AddBool("bilinear", false, "smooth scaling")
	out := md.AddString("out", "screenshot.png", "output file. PNG or JPEG decided by the extension")

	vcs, ok, err := parseEmulationMode(md, log)
	if !ok {
		return err
	}

	if err := vcs.RunForFrameCount(*frames, nil); err != nil {
		return err
	}

	filter := screenshot.NearestNeighbor
	if *bilinear {
		filter = screenshot.BiLinear
	}

	spec := vcs.TIA.Spec
	return screenshot.Save(*out, vcs.TIA.Pixels, spec.ScreenWidth(), spec.ScreenHeight(), *scale, filter)
}

func inspectMode(md *modalflag.Modes) (rerr error) {
	md.NewMode()
	log := addEmulationFlags(md)
	frames := md.AddInt("frames", 1, "number of frames to run before taking the snapshot")
	out := md.AddString("out", "", "output file for the DOT graph. standard output if not specified")

	vcs, ok, err := parseEmulationMode(md, log)
	if !ok {
		return err
	}

	if err := vcs.RunForFrameCount(*frames, nil); err != nil {
		return err
	}

	if *out == "" {
		return inspect.Graph(md.Output, vcs.Snapshot())
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	return inspect.Graph(f, vcs.Snapshot())
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	log := addEmulationFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "produce profiling reports: CPU, MEM, TRACE or NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, cartridgeloader.NewLoader(filename, "AUTO"), prefs, *duration)
}
