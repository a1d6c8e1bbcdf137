// Package export writes project revisions to a directory the server can read back.
//
// Layout:
//
//	<dir>/manifest.<ext>
//	<dir>/projects.<ext>          latest revision's projects
//	<dir>/revisions/<n>.<ext>
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

// Format selects the on-disk encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// Ext returns the file extension for the format, without the dot
func (f Format) Ext() string {
	return string(f)
}

// ManifestName returns the manifest file name for the format
func ManifestName(f Format) string {
	return "manifest." + f.Ext()
}

// Result summarizes an export
type Result struct {
	Dir       string
	Manifest  *models.Manifest
	Files     []string
	Revisions int
}

// BuildManifest describes revs the way Write lays them out
func BuildManifest(revs []models.Revision, f Format) *models.Manifest {
	m := &models.Manifest{Revisions: make(map[string]models.RevisionRef, len(revs))}
	for _, rev := range revs {
		m.Revisions[strconv.Itoa(rev.Number)] = models.RevisionRef{
			Count: len(rev.Projects),
			File:  path.Join("revisions", strconv.Itoa(rev.Number)+"."+f.Ext()),
		}
		if rev.Number > m.Latest {
			m.Latest = rev.Number
		}
	}
	return m
}

// Write exports revs into dir
func Write(dir string, revs []models.Revision, f Format) (*Result, error) {
	if len(revs) == 0 {
		return nil, fmt.Errorf("no revisions to export")
	}

	revDir := filepath.Join(dir, "revisions")
	if err := os.MkdirAll(revDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	manifest := BuildManifest(revs, f)
	res := &Result{Dir: dir, Manifest: manifest, Revisions: len(revs)}

	var latest models.Revision
	for _, rev := range revs {
		ref := manifest.Revisions[strconv.Itoa(rev.Number)]
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(ref.File)), rev, f); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, ref.File)
		if rev.Number == manifest.Latest {
			latest = rev
		}
	}

	projectsFile := "projects." + f.Ext()
	if err := writeFile(filepath.Join(dir, projectsFile), models.ProjectList{Projects: latest.Projects}, f); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, projectsFile)

	if err := writeFile(filepath.Join(dir, ManifestName(f)), manifest, f); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, ManifestName(f))

	return res, nil
}

// Marshal encodes v in the given format
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Unmarshal decodes data, picking the format from the file name
func Unmarshal(name string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func writeFile(p string, v any, f Format) error {
	data, err := Marshal(v, f)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(p), err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}
