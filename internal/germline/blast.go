package germline

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Locator resolves the path to the makeblastdb executable.
type Locator func() string

// binaryLocator returns the default Locator: the platform-suffixed
// binary when a bin directory is configured, the makeblastdb on PATH
// otherwise.
func binaryLocator(bin string) Locator {
	return func() string {
		if bin == "" {
			return "makeblastdb"
		}

		return filepath.Join(bin, "makeblastdb_"+runtime.GOOS)
	}
}

// blastExec is a small utility object for executing makeblastdb.
type blastExec struct {
	// the ungapped FASTA file the database is built from
	in string

	// the path of the BLAST database to build
	out string

	// the log file written by makeblastdb
	logfile string

	// locator resolves the makeblastdb binary
	locator Locator
}

// run calls the external makeblastdb binary on the ungapped FASTA and
// waits for it to exit, capturing stdout and stderr separately. A
// non-zero exit is a hard failure carrying the exit code and whatever
// makeblastdb wrote to stderr.
func (b *blastExec) run() (stdout, stderrOut []byte, err error) {
	// https://www.ncbi.nlm.nih.gov/books/NBK569841/
	blastCmd := exec.Command(
		b.locator(),
		"-in", b.in,
		"-out", b.out,
		"-parse_seqids",
		"-dbtype", "nucl",
		"-logfile", b.logfile,
	)

	var outBuf, errBuf bytes.Buffer
	blastCmd.Stdout = &outBuf
	blastCmd.Stderr = &errBuf

	err = blastCmd.Run()
	stdout = outBuf.Bytes()
	stderrOut = errBuf.Bytes()

	if exitErr, ok := err.(*exec.ExitError); ok {
		return stdout, stderrOut, fmt.Errorf("makeblastdb exited with code %d: %s", exitErr.ExitCode(), errBuf.String())
	}
	if err != nil {
		return stdout, stderrOut, fmt.Errorf("failed to execute makeblastdb: %v", err)
	}

	return stdout, stderrOut, nil
}
