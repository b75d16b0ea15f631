package reporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/sashunter/internal/common/errorwrapper"
)

// ReportPath builds the report file path for a scan started at scanDate.
func ReportPath(outputDir string, scanDate time.Time, ext string) string {
	name := fmt.Sprintf("%s%s.%s", ReportFilePrefix, scanDate.Format(ReportTimestampLayout), ext)
	return filepath.Join(outputDir, name)
}

// createReportFile opens path for writing and fails if it already exists.
func createReportFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, errorwrapper.WrapError(errorwrapper.ErrReportExists, path)
		}
		return nil, errorwrapper.WrapError(err, "failed to create report file")
	}
	return file, nil
}
