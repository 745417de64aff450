package germline

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// makeGapped writes the IMGT-gapped database for one segment: the
// input records sorted by ID ascending, each with its description and
// gapped sequence kept verbatim.
func makeGapped(records []Record, out string) error {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	var fastas []string
	for _, r := range sorted {
		fastas = append(fastas, fmt.Sprintf(">%s\n%s", r.Desc, r.Seq))
	}

	if err := os.WriteFile(out, []byte(strings.Join(fastas, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write the IMGT-gapped FASTA at %s: %v", out, err)
	}

	return nil
}
