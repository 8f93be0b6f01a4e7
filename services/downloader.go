package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/aguasmx/presas/conagua"
	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/utils"
)

// Downloader archives raw daily reports, one JSON file per date, named
// YYYY-MM-DD.json.
type Downloader struct {
	Client *conagua.Client
	Dir    string
}

func NewDownloader(client *conagua.Client, dir string) *Downloader {
	return &Downloader{Client: client, Dir: dir}
}

// DownloadYears fetches every missing day of the given years. Dates already
// on disk are skipped, so a rerun only fills the gaps since the last one.
func (d *Downloader) DownloadYears(years []int) (int, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return 0, fmt.Errorf("DownloadYears: failed to create directory: %v", err)
	}

	var dates []time.Time
	for _, year := range years {
		dates = append(dates, utils.DaysOfYear(year, time.Now())...)
	}

	if len(dates) == 0 {
		return 0, fmt.Errorf("DownloadYears: no dates to download for years %v", years)
	}

	bar := progressbar.Default(int64(len(dates)))

	downloaded := 0
	for _, date := range dates {
		bar.Add(1)

		filename := date.Format(models.ReportDateLayout) + ".json"
		outPath := filepath.Join(d.Dir, filename)

		if _, err := os.Stat(outPath); err == nil {
			log.Debugf("%s already exists", filename)
			continue
		}

		body, err := d.Client.FetchRaw(date)
		if err != nil {
			return downloaded, fmt.Errorf("DownloadYears: %v", err)
		}

		if err := os.WriteFile(outPath, body, 0644); err != nil {
			return downloaded, fmt.Errorf("DownloadYears: failed to write %s: %v", outPath, err)
		}

		log.Debugf("Downloaded %s", filename)
		downloaded++
	}

	log.Infof("Downloaded %d new reports to %s", downloaded, d.Dir)

	return downloaded, nil
}
