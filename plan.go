package initproject

import (
	"fmt"
	"os"
	"path/filepath"
)

type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}

type ExecutionPlan struct {
	Actions []PlannedAction
	Skipped []string
}

var packageBases = []string{"src", "tests"}

// BuildPlan inspects the template tree and produces the ordered actions
// needed to replace the placeholder package name. Directory renames come
// first so the content rewrites that follow see the final layout. Absent
// targets are recorded as skips, not failures; the template may be
// partially initialized already.
func BuildPlan(resolver *PathResolver, placeholder, newName string) (*ExecutionPlan, error) {
	plan := &ExecutionPlan{}

	for _, base := range packageBases {
		oldDir := resolver.Resolve(filepath.Join(base, placeholder))
		newDir := resolver.Resolve(filepath.Join(base, newName))
		if !pathExists(oldDir) {
			plan.Skipped = append(plan.Skipped, oldDir)
			continue
		}
		plan.Actions = append(plan.Actions, PlannedAction{
			Type:   "rename",
			Kind:   TargetDir,
			Path:   oldDir,
			Rename: &DirRename{OldPath: oldDir, NewPath: newDir},
		})
	}

	manifest := resolver.Resolve("pyproject.toml")
	if pathExists(manifest) {
		plan.Actions = append(plan.Actions, PlannedAction{Type: "rewrite", Kind: TargetManifest, Path: manifest})
	} else {
		plan.Skipped = append(plan.Skipped, manifest)
	}

	// Source rewrites address the post-rename location. The directory also
	// qualifies when it already exists, so a re-run still updates any
	// imports a previous, interrupted run left behind.
	for _, base := range packageBases {
		oldDir := resolver.Resolve(filepath.Join(base, placeholder))
		newDir := resolver.Resolve(filepath.Join(base, newName))
		if pathExists(oldDir) || pathExists(newDir) {
			plan.Actions = append(plan.Actions, PlannedAction{Type: "rewrite", Kind: TargetSource, Path: newDir})
		}
	}

	readme := resolver.Resolve("README.md")
	if pathExists(readme) {
		plan.Actions = append(plan.Actions, PlannedAction{Type: "rewrite", Kind: TargetReadme, Path: readme})
	} else {
		plan.Skipped = append(plan.Skipped, readme)
	}

	return plan, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
