package initproject

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// DefaultPlaceholder is the package name the template ships with.
const DefaultPlaceholder = "project_name"

type Config struct {
	Root        string
	Placeholder string
	NewName     string
	DryRun      bool
}

type ProgressUpdate func(current, total int)

type App struct {
	cfg              *Config
	resolver         *PathResolver
	progressCallback ProgressUpdate
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func NewApp(cfg *Config) (*App, error) {
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}

	if err := ValidateName(cfg.NewName); err != nil {
		return nil, err
	}

	resolver, err := NewPathResolver(cfg.Root)
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, resolver: resolver}, nil
}

func (a *App) SetProgressCallback(cb ProgressUpdate) { a.progressCallback = cb }

func (a *App) Execute() (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	plan, err := BuildPlan(a.resolver, a.cfg.Placeholder, a.cfg.NewName)
	if err != nil {
		return Summary{}, err
	}

	if a.cfg.DryRun {
		return a.describePlan(plan), nil
	}
	return a.applyPlan(plan), nil
}

func (a *App) applyPlan(plan *ExecutionPlan) Summary {
	var s Summary
	s.Skipped = append(s.Skipped, plan.Skipped...)

	// Directories whose rename failed must not have their contents
	// rewritten afterwards; a collision destination belongs to the user.
	blocked := make(map[string]struct{})

	totalOps := len(plan.Actions)
	for i, action := range plan.Actions {
		switch action.Type {
		case "rename":
			a.applyRename(action.Rename, &s, blocked)
		case "rewrite":
			a.applyRewrite(action, &s, blocked)
		}
		a.reportProgress(i+1, totalOps)
	}

	if len(s.Failed) == 0 {
		s.Message = fmt.Sprintf("Renamed package %q to %q", a.cfg.Placeholder, a.cfg.NewName)
	}
	a.relativizeSummaryPaths(&s)
	return s
}

func (a *App) applyRename(r *DirRename, s *Summary, blocked map[string]struct{}) {
	if err := RenameDir(r.OldPath, r.NewPath); err != nil {
		blocked[r.NewPath] = struct{}{}
		s.Failed = append(s.Failed, a.failure(r.OldPath, err))
		return
	}
	s.Renamed = append(s.Renamed, fmt.Sprintf("%s -> %s", r.OldPath, r.NewPath))
}

func (a *App) applyRewrite(action PlannedAction, s *Summary, blocked map[string]struct{}) {
	switch action.Kind {
	case TargetManifest:
		changed, err := RewriteManifest(action.Path, a.cfg.Placeholder, a.cfg.NewName)
		a.record(s, action.Path, changed, err)

	case TargetReadme:
		changed, err := RewriteReadme(action.Path, a.cfg.Placeholder, a.cfg.NewName)
		a.record(s, action.Path, changed, err)

	case TargetSource:
		if _, ok := blocked[action.Path]; ok {
			s.Skipped = append(s.Skipped, action.Path)
			return
		}
		if !pathExists(action.Path) {
			s.Skipped = append(s.Skipped, action.Path)
			return
		}
		files, err := PythonFiles(action.Path)
		if err != nil {
			s.Failed = append(s.Failed, a.failure(action.Path, err))
			return
		}
		for _, f := range files {
			changed, err := RewriteFile(f, a.cfg.Placeholder, a.cfg.NewName)
			a.record(s, f, changed, err)
		}
	}
}

func (a *App) record(s *Summary, path string, changed bool, err error) {
	switch {
	case err != nil:
		s.Failed = append(s.Failed, a.failure(path, err))
	case changed:
		s.Modified = append(s.Modified, path)
	default:
		s.Skipped = append(s.Skipped, path)
	}
}

func (a *App) failure(path string, err error) string {
	return fmt.Sprintf("%s: %v", a.resolver.Rel(path), err)
}

func (a *App) describePlan(plan *ExecutionPlan) Summary {
	s := Summary{Message: "Dry run, no files were changed"}
	s.Skipped = append(s.Skipped, plan.Skipped...)

	for _, action := range plan.Actions {
		switch action.Type {
		case "rename":
			s.Renamed = append(s.Renamed, fmt.Sprintf("%s -> %s", action.Rename.OldPath, action.Rename.NewPath))
		case "rewrite":
			s.Modified = append(s.Modified, action.Path)
		}
	}

	a.relativizeSummaryPaths(&s)
	return s
}

func (a *App) reportProgress(current, total int) {
	if a.progressCallback != nil {
		a.progressCallback(current, total)
	}
}

func (a *App) relativizeSummaryPaths(s *Summary) {
	relPath := func(p string) string {
		return a.resolver.Rel(p)
	}

	relList := func(paths []string) []string {
		var res []string
		for _, p := range paths {
			if strings.Contains(p, " -> ") {
				parts := strings.SplitN(p, " -> ", 2)
				res = append(res, fmt.Sprintf("%s -> %s", relPath(parts[0]), relPath(parts[1])))
			} else {
				res = append(res, relPath(p))
			}
		}
		return res
	}
	s.Renamed = relList(s.Renamed)
	s.Modified = relList(s.Modified)
	s.Skipped = relList(s.Skipped)
}
