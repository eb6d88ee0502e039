package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhamidi/vb6parse/vb6/parser"
)

// Project represents a VB6 project loaded from a .vbp file. A .vbp is a
// line-oriented key=value file naming the source files of the project and
// its build settings.
type Project struct {
	Path string // the .vbp file this project was loaded from

	Type    string // Exe, OleDll, Control, or OleExe
	Name    string
	Title   string
	Startup string
	ExeName string
	Command string

	MajorVer    int
	MinorVer    int
	RevisionVer int

	Forms        []string
	Modules      []SourceFile
	Classes      []SourceFile
	UserControls []string
	Designers    []string
	References   []Reference
	Objects      []Object

	// Settings holds every key the loader has no dedicated field for,
	// section-qualified where the file uses [Section] headers.
	Settings map[string]string
}

// SourceFile is a named source file entry, as in `Module=Module1; Module1.bas`.
type SourceFile struct {
	Name string
	File string
}

// Reference is a type library reference, as in
// `Reference=*\G{GUID}#2.0#0#path#description`.
type Reference struct {
	GUID        string
	Version     string
	Path        string
	Description string
}

// Object is an OCX dependency, as in `Object={GUID}#2.0#0; MSCOMCTL.OCX`.
type Object struct {
	GUID    string
	Version string
	File    string
}

// Load reads and parses the .vbp file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses .vbp contents. Unknown keys are kept in Settings; nothing
// about the file is rejected.
func Parse(path string, data []byte) (*Project, error) {
	proj := &Project{
		Path:     path,
		Settings: map[string]string{},
	}

	section := ""
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if section != "" {
			proj.Settings[section+"."+key] = value
			continue
		}
		proj.setKey(key, value)
	}

	if proj.Type == "" {
		return proj, fmt.Errorf("%s: no Type= line", path)
	}
	return proj, nil
}

func (p *Project) setKey(key, value string) {
	switch strings.ToLower(key) {
	case "type":
		p.Type = value
	case "name":
		p.Name = value
	case "title":
		p.Title = value
	case "startup":
		p.Startup = value
	case "exename32":
		p.ExeName = value
	case "command32":
		p.Command = value
	case "majorver":
		p.MajorVer = atoi(value)
	case "minorver":
		p.MinorVer = atoi(value)
	case "revisionver":
		p.RevisionVer = atoi(value)
	case "form":
		p.Forms = append(p.Forms, value)
	case "module":
		p.Modules = append(p.Modules, parseSourceFile(value))
	case "class":
		p.Classes = append(p.Classes, parseSourceFile(value))
	case "usercontrol":
		p.UserControls = append(p.UserControls, value)
	case "designer":
		p.Designers = append(p.Designers, value)
	case "reference":
		p.References = append(p.References, parseReference(value))
	case "object":
		p.Objects = append(p.Objects, parseObject(value))
	default:
		p.Settings[key] = value
	}
}

// parseSourceFile splits a `Name; file` entry. A bare file name without the
// semicolon names both.
func parseSourceFile(value string) SourceFile {
	name, file, ok := strings.Cut(value, ";")
	if !ok {
		return SourceFile{Name: value, File: value}
	}
	return SourceFile{
		Name: strings.TrimSpace(name),
		File: strings.TrimSpace(file),
	}
}

// parseReference pulls the GUID, version, path, and description out of a
// `*\G{GUID}#major.minor#lcid#path#description` value. Malformed values keep
// whatever fields could be read.
func parseReference(value string) Reference {
	ref := Reference{}
	rest := strings.TrimPrefix(value, `*\G`)
	parts := strings.Split(rest, "#")
	if len(parts) > 0 {
		ref.GUID = parts[0]
	}
	if len(parts) > 1 {
		ref.Version = parts[1]
	}
	if len(parts) > 3 {
		ref.Path = parts[3]
	}
	if len(parts) > 4 {
		ref.Description = parts[4]
	}
	return ref
}

// parseObject splits a `{GUID}#version#lcid; file` value.
func parseObject(value string) Object {
	obj := Object{}
	spec, file, ok := strings.Cut(value, ";")
	if ok {
		obj.File = strings.TrimSpace(file)
	}
	parts := strings.Split(strings.TrimSpace(spec), "#")
	if len(parts) > 0 {
		obj.GUID = parts[0]
	}
	if len(parts) > 1 {
		obj.Version = parts[1]
	}
	return obj
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

func atoi(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// Dir returns the directory the project file lives in. Source file entries
// are relative to it.
func (p *Project) Dir() string {
	return filepath.Dir(p.Path)
}

// SourceFiles returns the paths of all source files the project names, in
// file order: forms, modules, classes, user controls, designers. Paths are
// joined onto the project directory with the .vbp's backslash separators
// normalized.
func (p *Project) SourceFiles() []string {
	var files []string
	add := func(rel string) {
		rel = filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/"))
		files = append(files, filepath.Join(p.Dir(), rel))
	}
	for _, f := range p.Forms {
		add(f)
	}
	for _, m := range p.Modules {
		add(m.File)
	}
	for _, c := range p.Classes {
		add(c.File)
	}
	for _, u := range p.UserControls {
		add(u)
	}
	for _, d := range p.Designers {
		add(d)
	}
	return files
}

// SourceTree is one parsed project source file.
type SourceTree struct {
	Path        string
	Tree        *parser.Tree
	Diagnostics []parser.Diagnostic
}

// ParseSources parses every source file the project names, leniently. Files
// that cannot be read produce an error; files that merely fail to parse come
// back with their diagnostics attached.
func (p *Project) ParseSources(opts ...parser.Option) ([]*SourceTree, error) {
	var trees []*SourceTree
	for _, path := range p.SourceFiles() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read source file: %w", err)
		}
		tree, diags := parser.FromText(path, string(data), opts...)
		trees = append(trees, &SourceTree{
			Path:        path,
			Tree:        tree,
			Diagnostics: diags,
		})
	}
	return trees, nil
}
