package germline

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func Test_binaryLocator(t *testing.T) {
	if got := binaryLocator("")(); got != "makeblastdb" {
		t.Errorf("empty bin dir should resolve from PATH, got %s", got)
	}

	want := filepath.Join("bin", "makeblastdb_"+runtime.GOOS)
	if got := binaryLocator("bin")(); got != want {
		t.Errorf("locator = %s, want %s", got, want)
	}
}

// stubTool writes an executable makeblastdb stand-in and returns a
// locator for it.
func stubTool(t *testing.T, script string) Locator {
	t.Helper()

	dir := t.TempDir()
	stub := filepath.Join(dir, "makeblastdb_"+runtime.GOOS)
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	return binaryLocator(dir)
}

func Test_blastExec_run(t *testing.T) {
	dir := t.TempDir()

	b := &blastExec{
		in:      filepath.Join(dir, "v.fasta"),
		out:     filepath.Join(dir, "v"),
		logfile: filepath.Join(dir, "v.blastlog"),
		locator: stubTool(t, "#!/bin/sh\necho \"$@\"\n"),
	}

	stdout, _, err := b.run()
	if err != nil {
		t.Fatal(err)
	}

	for _, arg := range []string{"-parse_seqids", "-dbtype nucl", "-in " + b.in, "-out " + b.out, "-logfile " + b.logfile} {
		if !strings.Contains(string(stdout), arg) {
			t.Errorf("makeblastdb was not passed %q; argv: %s", arg, stdout)
		}
	}
}

func Test_blastExec_run_failure(t *testing.T) {
	dir := t.TempDir()

	b := &blastExec{
		in:      filepath.Join(dir, "v.fasta"),
		out:     filepath.Join(dir, "v"),
		logfile: filepath.Join(dir, "v.blastlog"),
		locator: stubTool(t, "#!/bin/sh\necho 'BLAST Database creation error' 1>&2\nexit 1\n"),
	}

	_, stderrOut, err := b.run()
	if err == nil {
		t.Fatal("expected an error from a failing makeblastdb")
	}

	if !strings.Contains(err.Error(), "exited with code 1") {
		t.Errorf("error should carry the exit code: %v", err)
	}
	if !strings.Contains(err.Error(), "BLAST Database creation error") {
		t.Errorf("error should carry the tool's stderr: %v", err)
	}
	if !strings.Contains(string(stderrOut), "BLAST Database creation error") {
		t.Errorf("captured stderr = %q", stderrOut)
	}
}

func Test_blastExec_run_missingTool(t *testing.T) {
	b := &blastExec{
		in:      "v.fasta",
		out:     "v",
		logfile: "v.blastlog",
		locator: binaryLocator(t.TempDir()),
	}

	if _, _, err := b.run(); err == nil {
		t.Error("expected an error when the makeblastdb binary is missing")
	}
}
