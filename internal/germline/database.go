package germline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// dbDirs are the three databases built for each species
var dbDirs = []string{"imgt_gapped", "ungapped", "blast"}

// warn is for highlighting warnings on stdout
var warn = color.New(color.FgYellow).SprintFunc()

// OverwritePolicy decides what happens when a germline database
// already exists for the requested species.
type OverwritePolicy int

const (
	// PolicyPrompt asks the operator for confirmation before overwriting
	PolicyPrompt OverwritePolicy = iota

	// PolicyOverwrite replaces an existing database without asking
	PolicyOverwrite

	// PolicyAbort refuses to replace an existing database
	PolicyAbort
)

// ParsePolicy maps the --overwrite flag to an OverwritePolicy.
func ParsePolicy(flag string) (OverwritePolicy, error) {
	switch strings.ToLower(flag) {
	case "", "prompt":
		return PolicyPrompt, nil
	case "force", "overwrite":
		return PolicyOverwrite, nil
	case "abort":
		return PolicyAbort, nil
	}

	return PolicyPrompt, fmt.Errorf("unrecognized overwrite policy %q: expected prompt, force or abort", flag)
}

// addonDirectory resolves the root directory holding the germline
// databases and creates it if absent. An empty location means the
// default ~/.abstar directory.
func addonDirectory(location string) (string, error) {
	if location != "" {
		fmt.Println()
		fmt.Println("NOTE: You have selected a non-default location for the germline directory.")
		fmt.Println("abstar only looks in the default location (~/.abstar) for user-created germline")
		fmt.Println("databases, so this database will not be used when annotating sequences. The")
		fmt.Println("custom location option is primarily for testing database creation without")
		fmt.Println("overwriting existing databases.")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find the user's home directory: %v", err)
		}
		location = filepath.Join(home, ".abstar")
	}

	if err := os.MkdirAll(location, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create the germline directory at %s: %v", location, err)
	}

	return location, nil
}

// existingDB reports whether a germline database already exists for
// the species. The check is case-insensitive: "Human" and "human"
// name the same database.
func existingDB(root, species string) (bool, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("failed to scan the germline directory at %s: %v", root, err)
	}

	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), species) {
			return true, nil
		}
	}

	return false, nil
}

// confirmOverwrite applies the overwrite policy against an existing
// database. It returns false if the run should abort, leaving the
// existing database untouched.
func confirmOverwrite(species string, policy OverwritePolicy, in io.Reader) (bool, error) {
	switch policy {
	case PolicyOverwrite:
		return true, nil
	case PolicyAbort:
		return false, nil
	}

	fmt.Println()
	fmt.Printf("%s: a %s germline database already exists.\n", warn("WARNING"), strings.ToLower(species))
	fmt.Println("Creating a new database with that name will overwrite the old one.")
	fmt.Print("Do you want to continue? [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %v", err)
	}

	answer = strings.ToUpper(strings.TrimSpace(answer))

	return answer == "Y" || answer == "YES", nil
}

// makeDirectories recreates the three database directories for the
// species, deleting any pre-existing contents first. It returns the
// species directory the databases live under.
func makeDirectories(root, species string) (string, error) {
	speciesDir := filepath.Join(root, strings.ToLower(species))

	for _, db := range dbDirs {
		dir := filepath.Join(speciesDir, db)
		if err := os.RemoveAll(dir); err != nil {
			return "", fmt.Errorf("failed to remove the old %s database: %v", db, err)
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create the %s database directory: %v", db, err)
		}
	}

	return speciesDir, nil
}
