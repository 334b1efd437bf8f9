package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/midbel/pricebook"
)

const defaultOut = "pricebook.json"

func main() {
	var (
		dir     = flag.String("d", ".", "directory searched for the price book pdf")
		out     = flag.String("o", defaultOut, "output json file")
		compact = flag.Bool("c", false, "write compact json")
	)
	flag.Parse()

	file, err := detectFile(flag.Arg(0), *dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rows := pricebook.Extract(buf)
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "no rows extracted from %s: is this the expected price book?\n", file)
		os.Exit(1)
	}
	if err := writeRows(*out, rows, *compact); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *out)
}

// detectFile returns the explicit path when one is given, otherwise the
// first file in dir matching the naming convention of the bundled book.
func detectFile(file, dir string) (string, error) {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("pdf not found: %s", file)
		}
		return file, nil
	}
	list, err := filepath.Glob(filepath.Join(dir, "Manual*Pricebook*.pdf"))
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("could not locate a price book pdf in %s, give the file explicitly", dir)
	}
	sort.Strings(list)
	return list[0], nil
}

func writeRows(file string, rows []pricebook.Row, compact bool) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rows)
}
