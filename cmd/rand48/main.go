package main

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fysac/rand48"
	"github.com/fysac/rand48/keystream"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func main() {
	l := log.New(os.Stderr, "", 0)

	seed := flag.String("seed", "", "generator seed, any Go integer syntax (e.g. 42 or 0x20131224); omit for the unseeded default")
	count := flag.Int("n", 10, "number of values to generate")
	double := flag.Bool("double", false, "print drand48 doubles instead of lrand48 integers")
	jsonOut := flag.Bool("json", false, "emit a json report instead of one value per line")
	raw := flag.Bool("raw", false, "write raw keystream bytes (requires: -out)")
	compress := flag.Bool("z", false, "zlib-compress raw output (use with -raw)")
	xorFile := flag.String("xor", "", "file to combine with the keystream (requires: -seed, -out)")
	outputFile := flag.String("out", "", "output file for -raw or -xor")
	flag.Parse()

	if *count <= 0 {
		l.Println("-n must be positive")
		flag.Usage()
		os.Exit(1)
	}

	if *xorFile != "" {
		if *outputFile == "" {
			l.Println("-xor needs an output file")
			flag.Usage()
			os.Exit(1)
		}
		if *seed == "" {
			l.Println("-xor needs a seed")
			flag.Usage()
			os.Exit(1)
		}

		b, err := os.ReadFile(*xorFile)
		if err != nil {
			l.Fatal(err)
		}

		keystream.New(parseSeed(l, *seed)).XORKeyStream(b, b)
		if err := writeFileNoTrunc(*outputFile, b); err != nil {
			l.Fatal(err)
		}

		fmt.Println("Wrote to", getAbsPath(*outputFile))
		fmt.Println("Running the same command on the output restores the input")
	} else if *raw {
		if *outputFile == "" {
			l.Println("-raw needs an output file")
			flag.Usage()
			os.Exit(1)
		}

		f, err := os.OpenFile(*outputFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err != nil {
			l.Fatal(err)
		}

		var w io.Writer = f
		var zw *zlib.Writer
		if *compress {
			zw = zlib.NewWriter(f)
			w = zw
		}

		// Four keystream bytes per generator draw.
		if _, err := io.CopyN(w, newReader(l, *seed), int64(*count)*4); err != nil {
			l.Fatal(err)
		}
		if zw != nil {
			if err := zw.Close(); err != nil {
				l.Fatal(err)
			}
		}
		if err := f.Close(); err != nil {
			l.Fatal(err)
		}

		fmt.Println("Wrote keystream to", getAbsPath(*outputFile))
	} else if *jsonOut {
		report, err := jsonReport(newSource(l, *seed), *seed, *count, *double)
		if err != nil {
			l.Fatal(err)
		}
		os.Stdout.Write(report)
	} else {
		src := newSource(l, *seed)
		for i := 0; i < *count; i++ {
			if *double {
				fmt.Printf("%.17g\n", src.Drand48())
			} else {
				fmt.Println(src.Lrand48())
			}
		}
	}
}

func jsonReport(src *rand48.Source, seed string, count int, double bool) ([]byte, error) {
	// Use orderedmap to keep the report fields in a stable order.
	report := orderedmap.New[string, any]()
	if seed == "" {
		report.Set("seed", "default")
	} else {
		report.Set("seed", seed)
	}
	report.Set("count", count)

	if double {
		values := make([]float64, count)
		for i := range values {
			values[i] = src.Drand48()
		}
		report.Set("values", values)
	} else {
		values := make([]int32, count)
		for i := range values {
			values[i] = src.Lrand48()
		}
		report.Set("values", values)
	}

	b, err := report.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func newSource(l *log.Logger, seed string) *rand48.Source {
	if seed == "" {
		return rand48.Unseeded()
	}
	return rand48.New(parseSeed(l, seed))
}

func newReader(l *log.Logger, seed string) *keystream.Reader {
	return keystream.NewReaderSource(newSource(l, seed))
}

func parseSeed(l *log.Logger, seed string) int64 {
	v, err := strconv.ParseInt(seed, 0, 64)
	if err != nil {
		l.Fatal(err)
	}
	return v
}

func getAbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

func writeFileNoTrunc(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		return err
	}
	return f.Close()
}
