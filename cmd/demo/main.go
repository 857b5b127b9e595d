package main

import (
	"fmt"
	"log"
	"os"

	"redfa/regexlib"
)

func main() {
	pattern := "(a|b)*abb"
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}

	c, err := regexlib.Compile(pattern)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("pattern:    %s\n", c.Pattern)
	fmt.Printf("normalized: %s\n", c.Concat)
	fmt.Printf("postfix:    %s\n", c.Postfix)
	fmt.Printf("alphabet:   %s\n", string(c.Alphabet))
	fmt.Printf("NFA states: %d\n", c.NFA.NumStates())
	fmt.Printf("DFA states: %d\n", c.DFA.NumStates())
	fmt.Printf("min states: %d\n", c.Min.NumStates())

	f, err := os.Create("min.dot")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	regexlib.ExportDOT(f, c.Min)
	fmt.Println("min.dot written (run: dot -Tpng min.dot -o min.png)")
}
