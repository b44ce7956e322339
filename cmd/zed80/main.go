// Package main implements the command-line harness: it loads a raw memory
// image, drives the decode/step loop and dumps the final memory contents.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cespare/xxhash"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/retrozed/zed80/internal/memory"
	"github.com/retrozed/zed80/internal/z80"
	"github.com/retrozed/zed80/pkg/utils"
)

func main() {
	debug := flag.Bool("debug", false, "log every instruction as it executes")
	quiet := flag.Bool("quiet", false, "only log errors")
	flag.Parse()

	logger := createLogger(*debug, *quiet)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(logger, flag.Arg(0)); err != nil {
		logger.Fatal(err.Error())
	}
}

// createLogger creates a logger with appropriate settings.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(logger *log.Logger, path string) error {
	data, err := utils.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	logger.Info("image loaded",
		log.String("path", path),
		log.String("bytes", fmt.Sprintf("%d", len(data))),
		log.String("fingerprint", fmt.Sprintf("%016x", xxhash.Sum64(data))),
	)

	mem := memory.New(data)
	cpu := z80.New(mem)

	// diagnostic defaults, handy when eyeballing the dump
	cpu.HL = 0xFE00
	cpu.BC = 0x00FF
	cpu.SyncFromPairs()

	ctx := app.Context()
	for int(cpu.PC) < mem.Len() && !cpu.Halted() {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			break
		}

		instr := cpu.Decode(cpu.PC)
		logger.Debug("step",
			log.String("pc", fmt.Sprintf("%04Xh", cpu.PC)),
			log.String("instr", instr.Mnemonic),
		)
		cpu.Step()
	}

	if cpu.Halted() {
		logger.Info("cpu halted")
	}

	logger.Info("run finished",
		log.String("af", fmt.Sprintf("%04Xh", cpu.AF)),
		log.String("bc", fmt.Sprintf("%04Xh", cpu.BC)),
		log.String("de", fmt.Sprintf("%04Xh", cpu.DE)),
		log.String("hl", fmt.Sprintf("%04Xh", cpu.HL)),
		log.String("pc", fmt.Sprintf("%04Xh", cpu.PC)),
		log.String("sp", fmt.Sprintf("%04Xh", cpu.SP)),
		log.String("tstates", fmt.Sprintf("%d", cpu.Cycles())),
	)

	dump(mem)
	return nil
}

// dump prints the entire memory contents as labeled hexadecimal bytes.
func dump(mem *memory.Memory) {
	for addr, value := range mem.Data() {
		fmt.Printf("%04Xh: %02Xh\n", addr, value)
	}
}
