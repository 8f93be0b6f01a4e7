package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/aguasmx/presas/models"
)

// ConsolidateYear merges a year's daily JSON snapshots into data/{year}.csv.
// Rows are trimmed and ordered by idmonitoreodiario, so reruns over the same
// archive produce identical files. Returns the path written.
func ConsolidateYear(year int, archiveDir, dataDir string) (string, error) {
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		return "", fmt.Errorf("ConsolidateYear: failed to read archive: %v", err)
	}

	prefix := strconv.Itoa(year) + "-"

	var records []models.DailyRecord
	for _, entry := range entries {
		filename := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(filename, prefix) || filepath.Ext(filename) != ".json" {
			continue
		}

		body, err := os.ReadFile(filepath.Join(archiveDir, filename))
		if err != nil {
			return "", fmt.Errorf("ConsolidateYear: failed to read %s: %v", filename, err)
		}

		// The API occasionally serves a maintenance page; a bad snapshot
		// should not sink the rest of the year.
		var day []models.DailyRecord
		if err := json.Unmarshal(body, &day); err != nil {
			log.Warnf("Skipping %s: not a valid daily report: %v", filename, err)
			continue
		}

		records = append(records, day...)
	}

	if len(records) == 0 {
		return "", fmt.Errorf("ConsolidateYear: no records for %d in %s", year, archiveDir)
	}

	for i := range records {
		records[i].TrimStrings()
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].IDMonitoreoDiario < records[j].IDMonitoreoDiario
	})

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("ConsolidateYear: failed to create directory: %v", err)
	}

	outPath := filepath.Join(dataDir, fmt.Sprintf("%d.csv", year))

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("ConsolidateYear: error creating CSV file: %v", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return "", fmt.Errorf("ConsolidateYear: error marshalling file: %v", err)
	}

	log.Infof("Consolidated %d records into %s", len(records), outPath)

	return outPath, nil
}
