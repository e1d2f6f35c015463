// Command cubegather runs a Gather-then-Compact pass over cube
// configurations read from disk. With positional arguments it runs in
// batch mode: each path is loaded, stepped, and summarized as one
// tab-separated line on stdout. With -in it runs in single-instance
// mode, additionally writing the compacted configuration (and
// optionally a transcript or an SVG render) back out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/cubegather/instance"
	"github.com/katalvlaran/cubegather/stepper"
	"github.com/katalvlaran/cubegather/vexport"
)

// Exit codes follow the CLI surface described for this tool: 0 for a
// normal run, 1 for a fatal algorithm failure (load error, illegal move,
// no move path), anything else for a usage mistake.
const (
	exitOK       = 0
	exitAlgoFail = 1
	exitUsage    = 2
)

var (
	inPath          = flag.String("in", "", "single-instance mode: input instance JSON file")
	outPath         = flag.String("out", "", "single-instance mode: output instance JSON file (default: overwrite -in)")
	svgPath         = flag.String("svg", "", "single-instance mode: write an SVG render of the final configuration here")
	printTranscript = flag.Bool("transcript", false, "single-instance mode: print the move transcript to stdout, tab-separated")
	timeout         = flag.Duration("timeout", 0, "abort a run that takes longer than this (0 = no deadline)")
)

func main() {
	flag.Parse()
	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	os.Exit(run(ctx, flag.Args()))
}

func run(ctx context.Context, batchPaths []string) int {
	if len(batchPaths) > 0 {
		return runBatch(ctx, batchPaths)
	}
	if *inPath == "" {
		log.Print("cubegather: -in is required, or pass one or more instance paths")
		return exitUsage
	}
	return runSingle(ctx, *inPath, *outPath, *svgPath, *printTranscript)
}

// runBatch loads each path in turn, runs it through Stepper in batch
// mode, and writes one "name<TAB>gatherSteps<TAB>compactSteps<TAB>totalSteps"
// line per instance to stdout, or "name<TAB><exception>" if a load or
// algorithm error stops it short. It never writes the result back to
// disk — that is the single-instance flow's job.
func runBatch(ctx context.Context, paths []string) int {
	failed := false
	for _, path := range paths {
		gatherSteps, compactSteps, err := runBatchOne(ctx, path)
		if err != nil {
			fmt.Printf("%s\t%v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s\t%d\t%d\t%d\n", path, gatherSteps, compactSteps, gatherSteps+compactSteps)
	}
	if failed {
		return exitAlgoFail
	}
	return exitOK
}

func runBatchOne(ctx context.Context, path string) (gatherSteps, compactSteps int, err error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	w, err := instance.Load(ctx, in)
	in.Close()
	if err != nil {
		return 0, 0, err
	}

	s := stepper.NewBatch(w)
	transcript, err := s.Run(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, step := range transcript {
		if step.Kind == stepper.StepGather {
			gatherSteps++
		} else {
			compactSteps++
		}
	}
	return gatherSteps, compactSteps, nil
}

func runSingle(ctx context.Context, in, out, svg string, transcriptFlag bool) int {
	f, err := os.Open(in)
	if err != nil {
		log.Printf("cubegather: opening %s: %v", in, err)
		return exitUsage
	}
	w, err := instance.Load(ctx, f)
	f.Close()
	if err != nil {
		log.Printf("cubegather: loading %s: %v", in, err)
		return exitAlgoFail
	}

	s := stepper.New(w)
	transcript, err := s.Run(ctx)
	if err != nil {
		log.Printf("cubegather: run failed: %v", err)
		return exitAlgoFail
	}
	log.Printf("cubegather: %d cubes, %d moves", w.Len(), len(transcript))

	dest := out
	if dest == "" {
		dest = in
	}
	dst, err := os.Create(dest)
	if err != nil {
		log.Printf("cubegather: writing %s: %v", dest, err)
		return exitUsage
	}
	saveErr := instance.Save(dst, w)
	closeErr := dst.Close()
	if saveErr != nil {
		log.Printf("cubegather: saving %s: %v", dest, saveErr)
		return exitAlgoFail
	}
	if closeErr != nil {
		log.Printf("cubegather: closing %s: %v", dest, closeErr)
		return exitUsage
	}

	if svg != "" {
		svgFile, err := os.Create(svg)
		if err != nil {
			log.Printf("cubegather: writing %s: %v", svg, err)
			return exitUsage
		}
		exportErr := vexport.Export(w, svgFile)
		closeErr := svgFile.Close()
		if exportErr != nil {
			log.Printf("cubegather: exporting svg: %v", exportErr)
			return exitAlgoFail
		}
		if closeErr != nil {
			log.Printf("cubegather: closing %s: %v", svg, closeErr)
			return exitUsage
		}
	}

	if transcriptFlag {
		for _, step := range transcript {
			fmt.Printf("%s\t%d\t%s\t%d,%d\t%d,%d\n", step.Kind, step.Cube, step.Dir, step.From.X, step.From.Y, step.To.X, step.To.Y)
		}
	}

	return exitOK
}
