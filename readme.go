package initproject

import (
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type codeSpan struct {
	start int
	stop  int
}

// RewriteReadme substitutes the placeholder inside fenced code blocks of a
// markdown file. Prose is left alone: install and usage snippets reference
// the package path, while narrative text may legitimately talk about the
// placeholder convention itself.
func RewriteReadme(path, placeholder, newName string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	spans, err := fencedCodeSpans(source)
	if err != nil {
		return false, err
	}

	var out []byte
	last := 0
	changed := false
	for _, s := range spans {
		out = append(out, source[last:s.start]...)
		segment := string(source[s.start:s.stop])
		replaced := strings.ReplaceAll(segment, placeholder, newName)
		if replaced != segment {
			changed = true
		}
		out = append(out, replaced...)
		last = s.stop
	}
	out = append(out, source[last:]...)

	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

func fencedCodeSpans(source []byte) ([]codeSpan, error) {
	var spans []codeSpan
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			spans = append(spans, codeSpan{start: line.Start, stop: line.Stop})
		}
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}
	return spans, nil
}
