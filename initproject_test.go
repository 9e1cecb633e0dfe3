package initproject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `[tool.poetry]
name = "project_name"
version = "0.1.0"
description = "Project scaffolding template."
packages = [{ include = "project_name", from = "src" }]
`

const sampleReadme = "# project_name\n\nRename `project_name` before use.\n\n```bash\npoetry run python -m project_name\n```\n"

func writeTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "src", "project_name", "__init__.py"), "")
	writeFile(t, filepath.Join(root, "src", "project_name", "core.py"), "from project_name import settings\n")
	writeFile(t, filepath.Join(root, "tests", "project_name", "test_core.py"), "from project_name.core import run\n")
	writeFile(t, filepath.Join(root, "pyproject.toml"), sampleManifest)
	writeFile(t, filepath.Join(root, "README.md"), sampleReadme)
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestRenameTemplate(t *testing.T) {
	root := writeTemplate(t)

	summary, err := Rename(Config{Root: root, NewName: "my_new_project"})
	require.NoError(t, err)
	assert.Empty(t, summary.Failed)
	assert.Len(t, summary.Renamed, 2)

	assert.NoDirExists(t, filepath.Join(root, "src", "project_name"))
	assert.DirExists(t, filepath.Join(root, "src", "my_new_project"))
	assert.FileExists(t, filepath.Join(root, "src", "my_new_project", "__init__.py"))
	assert.NoDirExists(t, filepath.Join(root, "tests", "project_name"))
	assert.DirExists(t, filepath.Join(root, "tests", "my_new_project"))

	manifest := readFile(t, filepath.Join(root, "pyproject.toml"))
	assert.Contains(t, manifest, `name = "my_new_project"`)
	assert.Contains(t, manifest, `include = "my_new_project"`)
	assert.NotContains(t, manifest, "project_name")

	assert.Equal(t, "from my_new_project import settings\n",
		readFile(t, filepath.Join(root, "src", "my_new_project", "core.py")))
	assert.Equal(t, "from my_new_project.core import run\n",
		readFile(t, filepath.Join(root, "tests", "my_new_project", "test_core.py")))
}

func TestRenameIsIdempotent(t *testing.T) {
	root := writeTemplate(t)

	_, err := Rename(Config{Root: root, NewName: "my_new_project"})
	require.NoError(t, err)

	summary, err := Rename(Config{Root: root, NewName: "my_new_project"})
	require.NoError(t, err)

	assert.Empty(t, summary.Renamed)
	assert.Empty(t, summary.Modified)
	assert.Empty(t, summary.Failed)
	assert.NotEmpty(t, summary.Skipped)

	assert.DirExists(t, filepath.Join(root, "src", "my_new_project"))
	assert.Contains(t, readFile(t, filepath.Join(root, "pyproject.toml")), `name = "my_new_project"`)
}

func TestRenameEmptyTreeSkipsEverything(t *testing.T) {
	root := t.TempDir()

	summary, err := Rename(Config{Root: root, NewName: "acme_widgets"})
	require.NoError(t, err)

	assert.Empty(t, summary.Renamed)
	assert.Empty(t, summary.Modified)
	assert.Empty(t, summary.Failed)
	assert.Contains(t, summary.Skipped, filepath.Join("src", "project_name"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenameMissingSourceDirStillUpdatesManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), sampleManifest)

	summary, err := Rename(Config{Root: root, NewName: "acme_widgets"})
	require.NoError(t, err)

	assert.Empty(t, summary.Failed)
	assert.Contains(t, summary.Skipped, filepath.Join("src", "project_name"))
	assert.Contains(t, summary.Modified, "pyproject.toml")
	assert.Contains(t, readFile(t, filepath.Join(root, "pyproject.toml")), `name = "acme_widgets"`)
}

func TestRenameInvalidNamesMutateNothing(t *testing.T) {
	root := writeTemplate(t)

	for _, name := range []string{"", "bad/name", `bad\name`, "1starts_with_digit", "has space", "dash-case"} {
		_, err := Rename(Config{Root: root, NewName: name})
		var invalid *InvalidNameError
		require.ErrorAs(t, err, &invalid, "name %q", name)
	}

	assert.DirExists(t, filepath.Join(root, "src", "project_name"))
	assert.Equal(t, sampleManifest, readFile(t, filepath.Join(root, "pyproject.toml")))
	assert.Equal(t, sampleReadme, readFile(t, filepath.Join(root, "README.md")))
}

func TestRenameDryRunMutatesNothing(t *testing.T) {
	root := writeTemplate(t)

	summary, err := Rename(Config{Root: root, NewName: "acme_widgets", DryRun: true})
	require.NoError(t, err)

	assert.Len(t, summary.Renamed, 2)
	assert.NotEmpty(t, summary.Modified)

	assert.DirExists(t, filepath.Join(root, "src", "project_name"))
	assert.Equal(t, sampleManifest, readFile(t, filepath.Join(root, "pyproject.toml")))
	assert.Equal(t, sampleReadme, readFile(t, filepath.Join(root, "README.md")))
}

func TestRenameCollisionFailsTargetAndContinues(t *testing.T) {
	root := writeTemplate(t)
	writeFile(t, filepath.Join(root, "src", "acme_widgets", "existing.py"), "import project_name\n")

	summary, err := Rename(Config{Root: root, NewName: "acme_widgets"})
	require.NoError(t, err)

	require.Len(t, summary.Failed, 1)
	assert.Contains(t, summary.Failed[0], "destination already exists")

	// the colliding destination belongs to the user and stays untouched
	assert.DirExists(t, filepath.Join(root, "src", "project_name"))
	assert.Equal(t, "import project_name\n",
		readFile(t, filepath.Join(root, "src", "acme_widgets", "existing.py")))

	// one stuck target does not stop the rest
	assert.DirExists(t, filepath.Join(root, "tests", "acme_widgets"))
	assert.Contains(t, readFile(t, filepath.Join(root, "pyproject.toml")), `name = "acme_widgets"`)
}

func TestRenameCustomPlaceholder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "myapp", "__init__.py"), "")
	writeFile(t, filepath.Join(root, "src", "myapp", "cli.py"), "from myapp import commands\n")
	writeFile(t, filepath.Join(root, "pyproject.toml"),
		"[tool.poetry]\nname = \"myapp\"\npackages = [{ include = \"myapp\", from = \"src\" }]\n")

	summary, err := Rename(Config{Root: root, NewName: "final_name", Placeholder: "myapp"})
	require.NoError(t, err)
	assert.Empty(t, summary.Failed)

	assert.DirExists(t, filepath.Join(root, "src", "final_name"))
	assert.Equal(t, "from final_name import commands\n",
		readFile(t, filepath.Join(root, "src", "final_name", "cli.py")))
	assert.Contains(t, readFile(t, filepath.Join(root, "pyproject.toml")), `include = "final_name"`)
}

func TestSummaryPathsAreRelative(t *testing.T) {
	root := writeTemplate(t)

	summary, err := Rename(Config{Root: root, NewName: "my_new_project"})
	require.NoError(t, err)

	assert.Contains(t, summary.Renamed,
		filepath.Join("src", "project_name")+" -> "+filepath.Join("src", "my_new_project"))
	assert.Contains(t, summary.Modified, "pyproject.toml")
}
