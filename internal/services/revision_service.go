package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"folio.dev/internal/content"
	"folio.dev/internal/export"
	"folio.dev/internal/models"
)

// RevisionService serves project revisions from memory or an export directory
type RevisionService struct {
	manifest *models.Manifest
	dataPath string

	mu        sync.Mutex
	revisions map[int]*models.Revision // cached revisions
}

// NewRevisionService creates a RevisionService reading an export directory
func NewRevisionService(dataPath string) (*RevisionService, error) {
	rs := &RevisionService{
		dataPath:  dataPath,
		revisions: make(map[int]*models.Revision),
	}

	if err := rs.loadManifest(); err != nil {
		return nil, err
	}

	return rs, nil
}

// NewContentRevisionService creates a RevisionService over the compiled-in content
func NewContentRevisionService() *RevisionService {
	revs := content.Revisions()
	rs := &RevisionService{
		manifest:  export.BuildManifest(revs, export.FormatJSON),
		revisions: make(map[int]*models.Revision, len(revs)),
	}
	for i := range revs {
		rs.revisions[revs[i].Number] = &revs[i]
	}
	return rs
}

// loadManifest loads the manifest from the export directory
func (rs *RevisionService) loadManifest() error {
	var (
		name string
		data []byte
		err  error
	)
	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML} {
		name = export.ManifestName(f)
		data, err = os.ReadFile(filepath.Join(rs.dataPath, name))
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read manifest in %s: %w", rs.dataPath, err)
	}

	rs.manifest = &models.Manifest{}
	if err := export.Unmarshal(name, data, rs.manifest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if _, ok := rs.manifest.Revisions[strconv.Itoa(rs.manifest.Latest)]; !ok {
		return fmt.Errorf("manifest latest revision %d is not listed", rs.manifest.Latest)
	}
	for key, ref := range rs.manifest.Revisions {
		if !filepath.IsLocal(filepath.FromSlash(ref.File)) {
			return fmt.Errorf("manifest revision %s file %q is outside %s", key, ref.File, rs.dataPath)
		}
	}

	return nil
}

// GetManifestResponse returns the manifest for the client
func (rs *RevisionService) GetManifestResponse() *models.ManifestResponse {
	counts := make(map[int]int, len(rs.manifest.Revisions))
	for key, ref := range rs.manifest.Revisions {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		counts[n] = ref.Count
	}

	return &models.ManifestResponse{
		Latest:    rs.manifest.Latest,
		Revisions: counts,
	}
}

// LatestNumber returns the newest revision number
func (rs *RevisionService) LatestNumber() int {
	return rs.manifest.Latest
}

// GetLatest returns the newest revision
func (rs *RevisionService) GetLatest() (*models.Revision, error) {
	return rs.GetRevision(rs.manifest.Latest)
}

// GetRevision returns revision n
func (rs *RevisionService) GetRevision(n int) (*models.Revision, error) {
	key := strconv.Itoa(n)

	ref, exists := rs.manifest.Revisions[key]
	if !exists {
		return nil, fmt.Errorf("%w: %d", content.ErrUnknownRevision, n)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rev, cached := rs.revisions[n]; cached {
		return cloneRevision(rev), nil
	}

	path := filepath.Join(rs.dataPath, filepath.FromSlash(ref.File))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read revision file: %w", err)
	}

	rev := &models.Revision{}
	if err := export.Unmarshal(ref.File, data, rev); err != nil {
		return nil, fmt.Errorf("failed to parse revision file: %w", err)
	}
	if rev.Number != n {
		return nil, fmt.Errorf("revision file %s holds revision %d, want %d", ref.File, rev.Number, n)
	}

	rs.revisions[n] = rev

	return cloneRevision(rev), nil
}

// cloneRevision copies rev so callers cannot alter the cache
func cloneRevision(rev *models.Revision) *models.Revision {
	projects := make([]models.Project, len(rev.Projects))
	copy(projects, rev.Projects)
	return &models.Revision{Number: rev.Number, Projects: projects}
}

// RevisionExists checks if revision n is listed in the manifest
func (rs *RevisionService) RevisionExists(n int) bool {
	_, exists := rs.manifest.Revisions[strconv.Itoa(n)]
	return exists
}
