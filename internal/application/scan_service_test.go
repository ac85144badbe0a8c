package application_test

import (
	"testing"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/application"
	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactFixture = "../../testdata/react-app"

func TestScanService_Scan(t *testing.T) {
	svc := application.NewScanService(scanner.New(), gitinfo.New())

	info, err := svc.Scan(reactFixture)
	require.NoError(t, err)

	assert.Equal(t, "react-app", info.Name)
	require.NotNil(t, info.PackageManager)
	assert.Equal(t, domain.PackageManagerNpm, info.PackageManager.Type)
	require.NotNil(t, info.Claims)
	assert.NotEmpty(t, info.Claims.TechStack)
}

func TestScanService_NoGitRepoLeavesHashEmpty(t *testing.T) {
	svc := application.NewScanService(scanner.New(), gitinfo.New())

	info, err := svc.Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, info.CommitHash)
}

func TestScanService_UnreadableRootFails(t *testing.T) {
	svc := application.NewScanService(scanner.New(), gitinfo.New())

	_, err := svc.Scan("/nonexistent/path/to/project")
	assert.Error(t, err)
}
