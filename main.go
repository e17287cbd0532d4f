package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
)

var (
	app = kingpin.New("connq", "offline dynamic connectivity query processor")
)

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

var (
	runCmd  = app.Command("run", "answer an obfuscated connectivity query stream")
	runPath = runCmd.Arg("path", "input file path (default: stdin)").String()
	runMax  = runCmd.Flag("max-vertices", "maximum supported vertex count").
		Default("10000000").Int()
)

func runFn() error {
	fp, err := openInput(*runPath)
	if err != nil {
		return err
	}
	defer fp.Close()
	return process(fp, os.Stdout, processOptions{
		MaxVertices: *runMax,
	})
}

var (
	traceCmd  = app.Command("trace", "run with a per-query trace on stderr")
	tracePath = traceCmd.Arg("path", "input file path (default: stdin)").String()
	traceMax  = traceCmd.Flag("max-vertices", "maximum supported vertex count").
			Default("10000000").Int()
)

func traceFn() error {
	fp, err := openInput(*tracePath)
	if err != nil {
		return err
	}
	defer fp.Close()
	return process(fp, os.Stdout, processOptions{
		MaxVertices: *traceMax,
		Trace:       os.Stderr,
	})
}

var (
	encodeCmd  = app.Command("encode", "obfuscate a plaintext query script")
	encodePath = encodeCmd.Arg("path", "script file path (default: stdin)").String()
	encodeMax  = encodeCmd.Flag("max-vertices", "maximum supported vertex count").
			Default("10000000").Int()
)

func encodeFn() error {
	fp, err := openInput(*encodePath)
	if err != nil {
		return err
	}
	defer fp.Close()
	return encode(fp, os.Stdout, *encodeMax)
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	switch cmd {
	case runCmd.FullCommand():
		return runFn()
	case traceCmd.FullCommand():
		return traceFn()
	case encodeCmd.FullCommand():
		return encodeFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
