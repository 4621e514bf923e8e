/*
 * polycube - exhaustive polycube packer in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/polycube/internal/config"
	"github.com/fkopp/polycube/internal/ioformat"
	"github.com/fkopp/polycube/internal/logging"
	"github.com/fkopp/polycube/internal/puzzle"
	"github.com/fkopp/polycube/internal/search"
	"github.com/fkopp/polycube/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	pieceFile := flag.String("pieces", "", "path to the piece table csv")
	dimStr := flag.String("dim", "", "cuboid dimension, e.g. 4x4x4")
	workers := flag.Int("workers", 0, "number of search worker goroutines (0 = runtime.NumCPU())")
	seedCorners := flag.Bool("seedcorners", true, "seed each of the cuboid's 8 corners before falling back to first-empty-cell search")
	solutionLimit := flag.Uint64("limit", 0, "stop after this many solutions (0 = exhaustive)")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling, writes cpu.pprof to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.Settings.Log.Level = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.Settings.Log.SearchLevel = lvl
	}
	if *pieceFile != "" {
		config.Settings.Search.PieceFile = *pieceFile
	}
	if *dimStr != "" {
		config.Settings.Search.Dimension = *dimStr
	}
	if *workers != 0 {
		config.Settings.Search.Workers = *workers
	}
	if !*seedCorners {
		config.Settings.Search.SeedCorners = false
	}
	if *solutionLimit != 0 {
		config.Settings.Search.SolutionLimit = *solutionLimit
	}

	log := logging.GetLog()

	pz, err := loadPuzzle()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	params := search.DefaultParams()
	if config.Settings.Search.Workers > 0 {
		params.Workers = config.Settings.Search.Workers
	}
	params.SeedCorners = config.Settings.Search.SeedCorners
	params.SolutionLimit = config.Settings.Search.SolutionLimit

	log.Infof("solving %s with %d pieces", pz.Dim, len(pz.Pieces))

	d := search.New(pz, params)
	stats, err := d.Run(context.Background(), func(arr *search.Arrangement) {
		for _, line := range ioformat.Render(arr, pz) {
			out.Println(line)
		}
		out.Println()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out.Println(stats.String())
}

func loadPuzzle() (*puzzle.Puzzle, error) {
	dim, err := ioformat.ParseDim(config.Settings.Search.Dimension)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(config.Settings.Search.PieceFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := ioformat.ParsePieces(f)
	if err != nil {
		return nil, err
	}

	return puzzle.New(dim, defs)
}

func printVersionInfo() {
	out.Printf("polycube %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
