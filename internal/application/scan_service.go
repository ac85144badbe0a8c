package application

import (
	"fmt"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// ScanService produces project snapshots, enriching them with
// version-control metadata when available.
type ScanService struct {
	scanner domain.ProjectScanner
	git     domain.GitInfo
}

func NewScanService(scanner domain.ProjectScanner, git domain.GitInfo) *ScanService {
	return &ScanService{scanner: scanner, git: git}
}

// Scan builds the ProjectInfo for rootPath. The commit hash is attached
// best-effort; a missing repository is not an error.
func (s *ScanService) Scan(rootPath string) (*domain.ProjectInfo, error) {
	info, err := s.scanner.Scan(rootPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if s.git != nil && s.git.IsGitRepo(rootPath) {
		if hash, err := s.git.CommitHash(rootPath); err == nil {
			info.CommitHash = hash
		}
	}

	return info, nil
}
