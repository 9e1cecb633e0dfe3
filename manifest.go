package initproject

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var manifestNameRegex = regexp.MustCompile(`(?m)^name\s*=\s*".*?"`)

// RewriteManifest updates the package name field and the Poetry include
// declaration in a pyproject.toml. The rewrite is textual so comments and
// formatting survive; a parse and re-serialize round-trip would not keep
// them. Reports whether a write happened.
func RewriteManifest(path, placeholder, newName string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	updated := manifestNameRegex.ReplaceAllString(string(content), fmt.Sprintf("name = %q", newName))
	updated = strings.ReplaceAll(updated,
		fmt.Sprintf("include = %q", placeholder),
		fmt.Sprintf("include = %q", newName))

	if updated == string(content) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
