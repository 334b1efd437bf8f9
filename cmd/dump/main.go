package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/hexdump"
	"github.com/midbel/pricebook"
)

func main() {
	var (
		raw   = flag.Bool("x", false, "hexdump inflated payloads")
		frags = flag.Bool("f", false, "list decoded fragments")
	)
	flag.Parse()

	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *frags {
		for i, f := range pricebook.Fragments(buf) {
			fmt.Printf("%4d: %q", i, f)
			fmt.Println()
		}
		return
	}
	for i, body := range pricebook.Payloads(buf) {
		fmt.Printf("payload %d (%d bytes)", i, len(body))
		fmt.Println()
		if *raw {
			fmt.Println(hexdump.Dump(body))
		}
	}
}
