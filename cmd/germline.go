package cmd

import (
	"github.com/cvisb/abstar/internal/germline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	speciesHelp = `name of the species the germline sequences are derived from.
Database names are converted to lowercase, so 'Human' and 'human' are equivalent.`

	locationHelp = `directory to deposit the new databases (default ~/.abstar).
abstar only looks in the default location for user-created germline databases,
so this option is primarily for testing database creation without overwriting
existing databases of the same name.`
)

// germlineCmd builds the Variable, Diversity and Joining germline
// databases for a species
var germlineCmd = &cobra.Command{
	Use:                        "germline",
	Short:                      "Build germline databases from IMGT-gapped FASTA files",
	Run:                        germline.BuildCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build the germline gene databases used to annotate antibody sequences.

Each of the three segments (Variable, Diversity, Joining) needs an IMGT-gapped,
FASTA-formatted file of germline sequences. Properly formatted files can be
obtained from: http://www.imgt.org/genedb/

Three databases are created per segment: a sorted IMGT-gapped FASTA, an
ungapped FASTA keyed on gene name, and a BLASTn database built with makeblastdb.`,
	Aliases: []string{"germlines", "db"},
	Example: "  abstar germline -v IGV.fasta -d IGD.fasta -j IGJ.fasta -s human",
}

// set flags
func init() {
	germlineCmd.Flags().StringP("variable", "v", "", "IMGT-gapped FASTA file with Variable gene sequences (heavy and light chains in a single file)")
	germlineCmd.Flags().StringP("diversity", "d", "", "IMGT-gapped FASTA file with Diversity gene sequences")
	germlineCmd.Flags().StringP("joining", "j", "", "IMGT-gapped FASTA file with Joining gene sequences (heavy and light chains in a single file)")
	germlineCmd.Flags().StringP("species", "s", "", speciesHelp)
	germlineCmd.Flags().StringP("location", "l", "", locationHelp)
	germlineCmd.Flags().StringP("bin", "b", "", "directory holding the makeblastdb binaries (default: makeblastdb on PATH)")
	germlineCmd.Flags().StringP("overwrite", "w", "prompt", "existing database policy: prompt, force or abort")
	germlineCmd.Flags().BoolP("debug", "D", false, "print the makeblastdb output after each segment")

	germlineCmd.MarkFlagRequired("variable")
	germlineCmd.MarkFlagRequired("diversity")
	germlineCmd.MarkFlagRequired("joining")
	germlineCmd.MarkFlagRequired("species")

	// Bind the parameters to viper
	viper.BindPFlag("location", germlineCmd.Flags().Lookup("location"))
	viper.BindPFlag("bin", germlineCmd.Flags().Lookup("bin"))
	viper.BindPFlag("debug", germlineCmd.Flags().Lookup("debug"))

	rootCmd.AddCommand(germlineCmd)
}
