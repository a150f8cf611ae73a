// Command engine is the CECP/xboard entry point: it loads evaluation
// parameters (falling back to the built-in defaults), opens a session
// log, and runs protocol.Controller over stdin/stdout until `quit` or
// EOF.
package main

import (
	"flag"
	"fmt"
	"os"

	"chessengine/eval"
	"chessengine/protocol"
	"chessengine/search"
)

func main() {
	paramsPath := flag.String("params", "", "path to a JSON evaluation parameter file (empty = built-in defaults)")
	ttBits := flag.Uint("ttbits", 22, "log2 of the transposition table bucket count")
	flag.Parse()

	params := eval.Default()
	if *paramsPath != "" {
		loaded, err := eval.Load(*paramsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading eval params from %s: %v, falling back to defaults\n", *paramsPath, err)
		} else {
			params = loaded
		}
	}

	engine := search.NewEngine(*ttBits, eval.New(params))

	logger, closer, err := protocol.OpenSessionLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open session log: %v\n", err)
		logger = nil
	} else {
		defer closer.Close()
	}

	controller := protocol.New(engine, os.Stdout, logger)
	os.Exit(controller.Run(os.Stdin))
}
