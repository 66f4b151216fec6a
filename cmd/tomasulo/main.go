// Command tomasulo drives the out-of-order core over a flat binary image
// and prints its exit status and final register file.
//
// The image file is a raw little-endian instruction/data stream loaded
// verbatim at -base; there is no ELF parsing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/archsim/tomasulo32/emu"
	"github.com/archsim/tomasulo32/timing/ooo"
)

var (
	base      = flag.Uint64("base", 0, "address the image is loaded at and the core starts fetching from")
	configOpt = flag.String("config", "", "path to a CoreConfig JSON file (rob_size, rs_size, imem_latency)")
	maxCycles = flag.Uint64("max-cycles", 1_000_000, "give up and report non-exit after this many ticks")
	verbose   = flag.Bool("v", false, "print a line-trace every cycle")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tomasulo [options] <image.bin>\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	imagePath := flag.Arg(0)
	image, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading image: %v\n", err)
		os.Exit(1)
	}

	config := ooo.DefaultCoreConfig()
	if *configOpt != "" {
		config, err = ooo.LoadConfig(*configOpt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading core config: %v\n", err)
			os.Exit(1)
		}
	}

	regs := &emu.RegFile{}
	mem := emu.NewMemory()
	for i, b := range image {
		mem.Write8(uint32(*base)+uint32(i), b)
	}

	core := ooo.NewCore(regs, mem, config, ooo.WithEntryPoint(uint32(*base)))

	var cycles uint64
	for ; cycles < *maxCycles; cycles++ {
		core.Tick()
		if *verbose {
			fmt.Println(core.String())
		}
		if _, exited := core.ExitStatus(); exited {
			break
		}
	}

	status, exited := core.ExitStatus()
	if !exited {
		fmt.Fprintf(os.Stderr, "did not exit within %d cycles\n", *maxCycles)
		os.Exit(1)
	}

	fmt.Printf("exit status: %d (after %d cycles)\n", status, cycles+1)
	for i := 0; i < 32; i++ {
		fmt.Printf("$%-2d = %#010x\n", i, regs.ReadReg(uint8(i)))
	}
}
