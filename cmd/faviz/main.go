package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"redfa/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	stage := flag.String("stage", "min", "artifact to export: tree|nfa|dfa|min")
	format := flag.String("format", "dot", "output format: dot|json")
	outFile := flag.String("o", "graph.dot", "output file ('-' for stdout)")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng (dot format only)")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: faviz -re <pattern> [-stage tree|nfa|dfa|min] [-format dot|json] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	c, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile failed: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	switch *stage {
	case "tree":
		switch *format {
		case "json":
			err = regexlib.ExportTreeJSON(&buf, c.Tree)
		default:
			regexlib.ExportTreeDOT(&buf, c.Tree)
		}
	case "nfa", "dfa", "min":
		var g regexlib.Graph
		switch *stage {
		case "nfa":
			g = c.NFA
		case "dfa":
			g = c.DFA
		default:
			g = c.Min
		}
		switch *format {
		case "json":
			err = regexlib.ExportJSON(&buf, g)
		default:
			regexlib.ExportDOT(&buf, g)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown stage %q\n", *stage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("%s written to %s\n", *format, *outFile)
	}
}
