// Command ccsds122 compresses and decompresses 8-bit BMP images with the
// CCSDS 122.0-B-2 lossless subset codec.
//
//	ccsds122 compress INPUT_BMP OUTPUT_BIN [--levels N]
//	ccsds122 decompress INPUT_BIN OUTPUT_BMP
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cocosip/ccsds122/ccsds122"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "decompress":
		err = runDecompress(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ccsds122: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  ccsds122 compress INPUT_BMP OUTPUT_BIN [--levels N]\n")
	fmt.Fprintf(os.Stderr, "  ccsds122 decompress INPUT_BIN OUTPUT_BMP\n")
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	levels := fs.Int("levels", ccsds122.DefaultLevels, "number of DWT levels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) > 2 {
		// Flags may also follow the two positional arguments.
		in, out := positional[0], positional[1]
		if err := fs.Parse(positional[2:]); err != nil {
			return err
		}
		positional = append([]string{in, out}, fs.Args()...)
	}
	if len(positional) != 2 {
		return errors.New("compress requires INPUT_BMP and OUTPUT_BIN")
	}

	return ccsds122.CompressFile(positional[0], positional[1], *levels)
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) != 2 {
		return errors.New("decompress requires INPUT_BIN and OUTPUT_BMP")
	}

	return ccsds122.DecompressFile(positional[0], positional[1])
}
