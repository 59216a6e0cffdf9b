// Command frontier-inspect decodes a serialized note commitment frontier
// and prints a summary of its state.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Madmaxs2/zcash/orchard"
)

var (
	inFile = flag.String("in", "", "File holding the serialized frontier. Reads stdin when empty.")
	legacy = flag.Bool("legacy", false, "Also print the legacy re-encoding of the frontier.")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Parse()

	var raw []byte
	var err error
	if *inFile == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(*inFile)
	}
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	f, err := orchard.ParseFrontier(bytes.NewReader(raw))
	if err != nil {
		log.Fatalf("Failed to parse frontier: %v", err)
	}

	root := f.Root()
	fmt.Printf("Size:     %v\n", f.Size())
	if pos, ok := f.Position(); ok {
		fmt.Printf("Position: %v\n", pos)
	} else {
		fmt.Println("Position: empty")
	}
	fmt.Printf("Root:     %x\n", root)
	fmt.Printf("Memory:   %v bytes\n", f.DynamicMemoryUsage())

	if *legacy {
		buf := new(bytes.Buffer)
		if err := f.SerializeLegacy(buf); err != nil {
			log.Fatalf("Failed to re-encode frontier: %v", err)
		}
		fmt.Printf("Legacy:   %x\n", buf.Bytes())
	}
}
