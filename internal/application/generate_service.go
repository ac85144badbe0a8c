package application

import (
	"fmt"

	"github.com/IanSimon23/doccheck/internal/domain"
)

// GenerateService renders documentation skeletons from project snapshots
// and stored profile defaults.
type GenerateService struct {
	scanSvc      *ScanService
	profileStore domain.ProfileStore
	configLoader domain.ConfigLoader
}

func NewGenerateService(scanSvc *ScanService, profileStore domain.ProfileStore, configLoader domain.ConfigLoader) *GenerateService {
	return &GenerateService{scanSvc: scanSvc, profileStore: profileStore, configLoader: configLoader}
}

// Generate scans rootPath and renders a documentation skeleton. The
// profile name, when empty, falls back to the configured default profile;
// answers merge global defaults under the profile's sections.
func (s *GenerateService) Generate(rootPath, profileName string) (string, error) {
	cfg, err := s.configLoader.Load(rootPath)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if profileName == "" {
		profileName = cfg.Profile
	}

	info, err := s.scanSvc.Scan(rootPath)
	if err != nil {
		return "", err
	}

	profiles, err := s.profileStore.Load(rootPath)
	if err != nil {
		return "", fmt.Errorf("loading profiles: %w", err)
	}

	return domain.GenerateSkeleton(info, profiles.DefaultsFor(profileName)), nil
}
