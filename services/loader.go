package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/aguasmx/presas/models"
)

// LoadDams reads the newest lastN yearly CSVs under dataDir (lastN <= 0
// loads all of them) and keeps the rows matching claves. An empty clave list
// keeps every dam.
func LoadDams(dataDir string, claves []string, lastN int) ([]models.DailyRecord, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("LoadDams: failed to read data directory: %v", err)
	}

	var filenames []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".csv" {
			filenames = append(filenames, entry.Name())
		}
	}

	// Filenames are years, so lexicographic order is chronological.
	sort.Strings(filenames)

	if lastN > 0 && len(filenames) > lastN {
		filenames = filenames[len(filenames)-lastN:]
	}

	wanted := make(map[string]bool, len(claves))
	for _, clave := range claves {
		wanted[clave] = true
	}

	var records []models.DailyRecord
	for _, filename := range filenames {
		rows, err := readYearCSV(filepath.Join(dataDir, filename))
		if err != nil {
			return nil, fmt.Errorf("LoadDams: %v", err)
		}

		for _, row := range rows {
			if len(wanted) > 0 && !wanted[row.ClaveSIH] {
				continue
			}

			records = append(records, row)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("LoadDams: no rows for claves %v in %s", claves, dataDir)
	}

	return records, nil
}

// LoadYear reads a single consolidated yearly CSV.
func LoadYear(dataDir string, year int) ([]models.DailyRecord, error) {
	records, err := readYearCSV(filepath.Join(dataDir, strconv.Itoa(year)+".csv"))
	if err != nil {
		return nil, fmt.Errorf("LoadYear: %v", err)
	}

	return records, nil
}

func readYearCSV(path string) ([]models.DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}

	defer file.Close()

	var rows []models.DailyRecord
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %v", path, err)
	}

	return rows, nil
}
