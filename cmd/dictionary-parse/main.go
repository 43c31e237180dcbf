// Command dictionary-parse reads dictionary.txt from the working directory
// and writes the words grouped by length to dictionary.json.
package main

import (
	"log"

	"github.com/milden6/lenbucket"
)

func run(input, output string) (*lenbucket.Table, int, error) {
	table, err := lenbucket.Load(input)
	if err != nil {
		return nil, 0, err
	}

	n, err := table.Save(output)
	if err != nil {
		return nil, 0, err
	}
	return table, n, nil
}

func main() {
	table, n, err := run(lenbucket.DefaultInput, lenbucket.DefaultOutput)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote %d words (%d bytes) to %s", table.Len(), n, lenbucket.DefaultOutput)
}
