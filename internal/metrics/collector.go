package metrics

import "log"

// Collect drains source metrics and prints one banner block per
// source to the log. Skipped rows are visible only here; they never
// reach the rendered table.
func Collect(in <-chan SourceMetric, done chan<- struct{}) {
	for m := range in {
		log.Println("======================================")
		log.Println("SOURCE METRICS")
		log.Printf("File        : %s\n", m.FileName)
		log.Printf("Status      : %s\n", m.Status)
		log.Printf("Lines       : %d\n", m.TotalLines)
		log.Printf("Parsed Rows : %d\n", m.ParsedRows)
		log.Printf("Skipped     : %d\n", m.SkippedRows)
		log.Printf("Duration    : %s\n", m.Duration)
		log.Println("======================================")
	}
	close(done)
}
