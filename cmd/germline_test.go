package cmd

import (
	"testing"
)

func Test_germlineFlags(t *testing.T) {
	flags := []string{
		"variable",
		"diversity",
		"joining",
		"species",
		"location",
		"bin",
		"overwrite",
		"debug",
	}

	for _, f := range flags {
		if germlineCmd.Flags().Lookup(f) == nil {
			t.Errorf("germline command is missing the --%s flag", f)
		}
	}

	if germlineCmd.Flags().Lookup("overwrite").DefValue != "prompt" {
		t.Error("overwrite policy should default to prompt")
	}
}
