package iostore

import (
	"fmt"

	"github.com/auditlens/auditlens/schema"
)

// PrintReportStatus prints report store status information.
func PrintReportStatus(status schema.ReportStatus) {
	fmt.Printf("Report Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		if status.LastRunTime != nil {
			fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		}
		if status.OldestRunTime != nil {
			fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		}
	}
}
