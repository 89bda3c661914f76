package sources

import (
	"path"
	"regexp"
	"strings"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
)

// Matches every Solidity import form:
//
//	import "a.sol";
//	import "a.sol" as A;
//	import {X, Y as Z} from "a.sol";
//	import * as A from "a.sol";
var importPattern = regexp.MustCompile(`\bimport\s+(?:[^'";]*?\bfrom\s+)?["']([^"']+)["']`)

// ParseImports returns the import paths of a Solidity file in source order.
func ParseImports(content string) []string {
	content = stripComments(content)

	var out []string
	for _, m := range importPattern.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// stripComments blanks out line and block comments in a single pass. String
// literals are copied unchanged, so comment markers inside them are kept and
// quotes inside comments are ignored. Newlines are kept.
func stripComments(content string) string {
	const (
		code = iota
		lineComment
		blockComment
		str
	)

	var b strings.Builder
	b.Grow(len(content))

	state := code
	var quote byte
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(content) && content[i+1] == '/':
				state = lineComment
				i++
			case c == '/' && i+1 < len(content) && content[i+1] == '*':
				state = blockComment
				b.WriteByte(' ')
				i++
			case c == '"' || c == '\'':
				state, quote = str, c
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}
		case lineComment:
			if c == '\n' {
				state = code
				b.WriteByte(c)
			}
		case blockComment:
			switch {
			case c == '*' && i+1 < len(content) && content[i+1] == '/':
				state = code
				i++
			case c == '\n':
				b.WriteByte(c)
			}
		case str:
			b.WriteByte(c)
			switch {
			case c == '\\' && i+1 < len(content):
				i++
				b.WriteByte(content[i])
			case c == quote, c == '\n':
				state = code
			}
		}
	}
	return b.String()
}

// resolveImport maps an import made by importer to a path relative to the
// base directory. Relative imports are joined with the importer's directory;
// other imports go through the longest matching remapping.
func resolveImport(remappings []artifacts.Remapping, importer, imp string) string {
	if strings.HasPrefix(imp, "./") || strings.HasPrefix(imp, "../") {
		return path.Join(path.Dir(importer), imp)
	}

	best := -1
	for i, r := range remappings {
		if r.Context != "" && !strings.HasPrefix(importer, r.Context) {
			continue
		}
		if !strings.HasPrefix(imp, r.Name) {
			continue
		}
		if best < 0 || betterRemapping(r, remappings[best]) {
			best = i
		}
	}
	if best < 0 {
		return path.Clean(imp)
	}
	r := remappings[best]
	return path.Clean(r.Path + strings.TrimPrefix(imp, r.Name))
}

// betterRemapping prefers the longer context, then the longer prefix.
func betterRemapping(a, b artifacts.Remapping) bool {
	if len(a.Context) != len(b.Context) {
		return len(a.Context) > len(b.Context)
	}
	return len(a.Name) > len(b.Name)
}
