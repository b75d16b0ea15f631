package reporter

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/aleister1102/sashunter/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var summaryTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6"))

type repoSummary struct {
	repository string
	findings   int
	files      map[string]bool
	sample     string
}

// PrintSummary writes a per-repository table of findings with masked tokens,
// followed by the scan totals.
func PrintSummary(w io.Writer, summary models.ScanSummary, findings []models.Finding) error {
	fmt.Fprintln(w, summaryTitleStyle.Render("SAS token scan summary"))

	if len(findings) == 0 {
		fmt.Fprintln(w, "No SAS tokens found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Repository", "Findings", "Files", "Sample Token")
		for _, repo := range groupByRepository(findings) {
			if err := table.Append([]string{
				repo.repository,
				strconv.Itoa(repo.findings),
				strconv.Itoa(len(repo.files)),
				repo.sample,
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Findings: %d\n", len(findings))
	for _, q := range summary.Queries {
		fmt.Fprintf(w, "  %q: %d\n", q, summary.FindingsByQuery[q])
	}
	if summary.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", summary.Duration.Seconds())
	}
	if summary.Status != "" {
		fmt.Fprintf(w, "Status: %s\n", summary.Status)
	}
	return nil
}

// groupByRepository orders repositories by finding count, then name.
func groupByRepository(findings []models.Finding) []*repoSummary {
	byRepo := make(map[string]*repoSummary)
	for _, f := range findings {
		rs, ok := byRepo[f.Repository]
		if !ok {
			rs = &repoSummary{repository: f.Repository, files: map[string]bool{}, sample: f.MaskedToken()}
			byRepo[f.Repository] = rs
		}
		rs.findings++
		rs.files[f.FilePath] = true
	}

	out := make([]*repoSummary, 0, len(byRepo))
	for _, rs := range byRepo {
		out = append(out, rs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].findings == out[j].findings {
			return out[i].repository < out[j].repository
		}
		return out[i].findings > out[j].findings
	})
	return out
}
