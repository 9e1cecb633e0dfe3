package initproject

type TargetKind string

const (
	TargetDir      TargetKind = "dir"
	TargetManifest TargetKind = "manifest"
	TargetSource   TargetKind = "source"
	TargetReadme   TargetKind = "readme"
)

type DirRename struct {
	OldPath string
	NewPath string
}

type PlannedAction struct {
	Type   string // "rename", "rewrite"
	Kind   TargetKind
	Path   string
	Rename *DirRename
}

type Summary struct {
	Renamed  []string
	Modified []string
	Skipped  []string
	Failed   []string
	Message  string
}
