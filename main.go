package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"htmlscan/scanner"
)

func run() error {
	if len(os.Args) < 2 {
		return errors.New("usage: htmlscan <file>")
	}
	buf, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	s := scanner.New(buf)
	for s.Valid() {
		fmt.Printf("%4d %s\n", s.Key(), s.Current())
		s.Next()
	}
	fmt.Printf("encoding: %s (fallback: %v)\n", s.Encoding(), s.UsesFallbackEncoding())
	if dt := s.DoctypeElement(); dt != nil {
		fmt.Printf("doctype: %s\n", dt.Content)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
