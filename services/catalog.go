package services

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/aguasmx/presas/conagua"
	"github.com/aguasmx/presas/models"
)

// BuildCatalog fetches the report for a reference date and writes the static
// dam catalog (everything except the monitoring columns) to outPath.
func BuildCatalog(client *conagua.Client, date time.Time, outPath string) (int, error) {
	records, err := client.FetchReport(date)
	if err != nil {
		return 0, fmt.Errorf("BuildCatalog: %v", err)
	}

	catalog := make([]models.CatalogEntry, 0, len(records))
	for _, record := range records {
		record.TrimStrings()
		catalog = append(catalog, models.NewCatalogEntry(record))
	}

	file, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("BuildCatalog: error creating CSV file: %v", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&catalog, file); err != nil {
		return 0, fmt.Errorf("BuildCatalog: error marshalling file: %v", err)
	}

	log.Infof("Wrote %d dams to %s", len(catalog), outPath)

	return len(catalog), nil
}

// LoadCatalog reads a catalog file back into memory.
func LoadCatalog(path string) ([]models.CatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: failed to open %s: %v", path, err)
	}

	defer file.Close()

	var catalog []models.CatalogEntry
	if err := gocsv.UnmarshalFile(file, &catalog); err != nil {
		return nil, fmt.Errorf("LoadCatalog: error unmarshalling %s: %v", path, err)
	}

	return catalog, nil
}
