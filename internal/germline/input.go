// Package germline builds the germline gene databases used to
// annotate antibody sequences.
package germline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// gapChar is the IMGT alignment gap placeholder
const gapChar = "."

// Record is a single entry in a germline FASTA file.
type Record struct {
	// ID is the first whitespace-delimited field of the description
	ID string

	// Desc is the full description line (without the leading ">")
	Desc string

	// Seq is the residue sequence. Gap characters are kept as read
	Seq string
}

// read a FASTA file (by its path on local FS) to a slice of Records.
//
// Descriptions and sequences are kept verbatim: IMGT-gapped files key
// their records on pipe-delimited description fields and pad their
// sequences with gap characters, and both must survive a read/write
// round trip.
func read(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input FASTA path: %s", err)
	}

	// split by newlines
	lines := strings.Split(string(dat), "\n")

	// read in the record descriptions
	var headerIndices []int
	var descs []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			descs = append(descs, strings.TrimRight(line[1:], "\r"))
		}
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		for j, l := range seqLines {
			seqLines[j] = strings.TrimSpace(l)
		}
		seqs = append(seqs, strings.Join(seqLines, ""))
	}

	// build and return the new records
	for i, desc := range descs {
		id := desc
		if fields := strings.Fields(desc); len(fields) > 0 {
			id = fields[0]
		}

		records = append(records, Record{
			ID:   id,
			Desc: desc,
			Seq:  seqs[i],
		})
	}

	return records, nil
}
