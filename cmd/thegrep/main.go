package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"thegrep/internal/grep"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("thegrep: ")

	opts, err := grep.ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Println(err)
		os.Exit(2)
	}

	if err := grep.Run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
