package germline

import (
	"fmt"
	"os"
	"strings"
)

// makeUngapped writes the ungapped database for one segment. Each
// record in the IMGT-gapped file at in is re-keyed to the gene name in
// its description (the second pipe-delimited field) and has every gap
// character removed. Record order is preserved.
func makeUngapped(in, out string) error {
	records, err := read(in)
	if err != nil {
		return err
	}

	var fastas []string
	for _, r := range records {
		fields := strings.Split(r.Desc, "|")
		if len(fields) < 2 {
			return fmt.Errorf("failed to find a gene name in %q: expected a pipe-delimited IMGT description", r.Desc)
		}

		seq := strings.ReplaceAll(r.Seq, gapChar, "")
		fastas = append(fastas, fmt.Sprintf(">%s\n%s", fields[1], seq))
	}

	if err := os.WriteFile(out, []byte(strings.Join(fastas, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write the ungapped FASTA at %s: %v", out, err)
	}

	return nil
}
