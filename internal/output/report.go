package output

import (
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// GenerateReport writes results in the named format to a timestamped file in dir
// and returns the file's path.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		paths, err := GenerateAllReports(results, dir)
		if err != nil {
			return "", err
		}
		return paths[0], nil
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir, Extension(f.Name()))
}

// GenerateAllReports writes one file per file-oriented format. The styled
// console view is terminal-only and is skipped.
func GenerateAllReports(results *domain.ScenarioComparison, dir string) ([]string, error) {
	var paths []string
	for _, name := range []string{"console-lite", "detailed-csv", "json", "html", "pdf"} {
		f := GetFormatterByName(name)
		path, err := WriteFormatted(f, results, dir, Extension(name))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
