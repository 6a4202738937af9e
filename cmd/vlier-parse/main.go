// Command vlier-parse prints the schedule of a study guide as JSON.
//
// Usage:
//
//	vlier-parse [-periode N] [-all] [-ocr] [-keywords file] <file.docx|file.pdf>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/vlier"
	"github.com/tsawler/vlier/keywords"
)

func main() {
	periode := flag.Int("periode", 0, "period of a multi-period DOCX guide")
	all := flag.Bool("all", false, "print every period")
	ocr := flag.Bool("ocr", false, "recognise text on scanned PDF pages")
	kwFile := flag.String("keywords", "", "JSON keyword override file")
	verbose := flag.Bool("v", false, "log extraction warnings to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vlier-parse [flags] <file.docx|file.pdf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *periode, *all, *ocr, *kwFile, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "vlier-parse: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, periode int, all, ocr bool, kwFile string, verbose bool) error {
	kw, err := keywords.FromEnv()
	if kwFile != "" {
		kw, err = keywords.Load(kwFile)
	}
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer log.Sync()
	}

	p := vlier.Open(path).Keywords(kw).Logger(log)
	if ocr {
		p = p.OCR()
	}
	if periode > 0 {
		p = p.Periode(periode)
	}

	var out any
	if all {
		out, err = p.Periods()
	} else {
		out, err = p.Guide()
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
