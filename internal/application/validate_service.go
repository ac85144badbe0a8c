package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// ValidateService runs the scan-extract-compare pipeline against the
// project's documentation file.
type ValidateService struct {
	scanSvc      *ScanService
	configLoader domain.ConfigLoader
}

func NewValidateService(scanSvc *ScanService, configLoader domain.ConfigLoader) *ValidateService {
	return &ValidateService{scanSvc: scanSvc, configLoader: configLoader}
}

// ValidationReport bundles one run's inputs and findings.
type ValidationReport struct {
	Project  *domain.ProjectInfo `json:"project"`
	DocsFile string              `json:"docs_file"`
	Findings []domain.Finding    `json:"findings"`
}

// Validate scans rootPath, reads its documentation file, and reconciles
// the two. A missing documentation file is a caller error, not drift.
func (s *ValidateService) Validate(rootPath string) (*ValidationReport, error) {
	cfg, err := s.configLoader.Load(rootPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	info, err := s.scanSvc.Scan(rootPath)
	if err != nil {
		return nil, err
	}

	docPath := filepath.Join(rootPath, cfg.DocsFile)
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s (run `doccheck init` first?): %w", cfg.DocsFile, err)
	}

	return &ValidationReport{
		Project:  info,
		DocsFile: cfg.DocsFile,
		Findings: s.ValidateText(string(doc), info),
	}, nil
}

// ValidateText reconciles arbitrary documentation text against an
// already-built snapshot. Structure claims are checked against the real
// filesystem under the project root.
func (s *ValidateService) ValidateText(doc string, info *domain.ProjectInfo) []domain.Finding {
	exists := func(rel string) bool {
		_, err := os.Stat(filepath.Join(info.RootPath, filepath.FromSlash(rel)))
		return err == nil
	}
	return domain.Validate(doc, info, exists)
}
