package germline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cvisb/abstar/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// head is for highlighting segment names in the progress banner
var head = color.New(color.FgCyan).SprintFunc()

// segment is one of the three germline gene categories combined to
// form an antibody variable region.
type segment struct {
	// name of the segment: Variable, Diversity or Joining
	name string

	// letter keys the segment's output files: v, d or j
	letter string

	// in is the path to the segment's IMGT-gapped input FASTA
	in string
}

// BuildCmd accepts a cobra command with the germline FASTA paths and
// builds the species' germline databases.
func BuildCmd(cmd *cobra.Command, args []string) {
	c := config.New()

	variable, _ := cmd.Flags().GetString("variable")
	diversity, _ := cmd.Flags().GetString("diversity")
	joining, _ := cmd.Flags().GetString("joining")
	species, _ := cmd.Flags().GetString("species")
	overwrite, _ := cmd.Flags().GetString("overwrite")

	policy, err := ParsePolicy(overwrite)
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	if err := Build(variable, diversity, joining, species, policy, os.Stdin, c); err != nil {
		stderr.Fatalln(err)
	}
}

// Build creates the imgt_gapped, ungapped and blast databases for each
// of the three germline segments of a species. Segments are processed
// strictly in order: Variable, then Diversity, then Joining. The first
// failure aborts the remaining segments.
func Build(variable, diversity, joining, species string, policy OverwritePolicy, in io.Reader, c *config.Config) error {
	root, err := addonDirectory(c.Location)
	if err != nil {
		return err
	}

	exists, err := existingDB(root, species)
	if err != nil {
		return err
	}
	if exists {
		ok, err := confirmOverwrite(species, policy, in)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborting germline database creation: a %s database already exists", strings.ToLower(species))
		}
	}

	speciesDir, err := makeDirectories(root, species)
	if err != nil {
		return err
	}

	segments := []segment{
		{"Variable", "v", variable},
		{"Diversity", "d", diversity},
		{"Joining", "j", joining},
	}

	for _, s := range segments {
		if err := buildSegment(s, speciesDir, c); err != nil {
			return err
		}
	}
	fmt.Println()

	return nil
}

// buildSegment runs the three database stages for one segment: the
// sorted IMGT-gapped FASTA, then the ungapped FASTA built from it,
// then the BLAST database built from that.
func buildSegment(s segment, speciesDir string, c *config.Config) error {
	records, err := read(s.in)
	if err != nil {
		return err
	}
	banner(s, len(records))

	fmt.Println("  - IMGT-gapped FASTA")
	gapped := filepath.Join(speciesDir, "imgt_gapped", s.letter+".fasta")
	if err := makeGapped(records, gapped); err != nil {
		return err
	}

	fmt.Println("  - ungapped FASTA")
	ungapped := filepath.Join(speciesDir, "ungapped", s.letter+".fasta")
	if err := makeUngapped(gapped, ungapped); err != nil {
		return err
	}

	fmt.Println("  - BLASTn")
	b := &blastExec{
		in:      ungapped,
		out:     filepath.Join(speciesDir, "blast", s.letter),
		logfile: filepath.Join(speciesDir, "blast", s.letter+".blastlog"),
		locator: binaryLocator(c.Bin),
	}
	stdout, stderrOut, err := b.run()
	if err != nil {
		return err
	}

	if c.Debug {
		fmt.Printf("%s%s", stdout, stderrOut)
	}

	return nil
}

// banner prints the segment header and the input record count before
// the segment's databases are built.
func banner(s segment, count int) {
	rule := strings.Repeat("-", len(s.name)+4)

	fmt.Printf("\n\n%s\n  %s  \n%s\n", rule, head(strings.ToUpper(s.name)), rule)
	fmt.Println(s.in)
	fmt.Printf("input file contains %d sequences\n\n", count)
	fmt.Println("Building germline databases:")
}
