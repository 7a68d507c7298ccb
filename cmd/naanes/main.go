// Command naanes runs an NES cartridge image through the nes package
// and presents it in a window.
package main

import (
	"flag"
	"io/ioutil"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/naanes-core/nes"
	"github.com/jyane/naanes-core/ui"
)

func main() {
	scale := flag.Int("scale", 2, "window scale factor (NES native resolution is 256x240)")
	debug := flag.Bool("debug", false, "drop into the stdin REPL debug console instead of opening a window")
	mute := flag.Bool("mute", false, "disable audio output")
	mapperTrace := flag.Bool("mapper-trace", false, "log every PRG bank switch at -v=1")
	flag.Parse()

	if flag.NArg() != 1 {
		glog.Exitf("usage: %s [flags] <rom.nes>", os.Args[0])
	}

	data, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		glog.Exitf("reading rom: %v", err)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Exitf("parsing rom: %v", err)
	}
	if *mapperTrace {
		cartridge.SetBankSwitchTrace(func(bank int) {
			glog.V(1).Infof("mapper: switched to PRG bank %d", bank)
		})
	}
	console, err := nes.NewConsole(cartridge)
	if err != nil {
		glog.Exitf("building console: %v", err)
	}
	console.Reset()

	if *debug {
		if err := nes.NewDebugConsole(console).RunREPL(); err != nil {
			glog.Exitf("debug console: %v", err)
		}
		return
	}
	ui.Start(console, 256*(*scale), 240*(*scale), *mute)
}
