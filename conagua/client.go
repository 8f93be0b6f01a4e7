package conagua

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aguasmx/presas/models"
)

// DefaultBaseURL is the daily report endpoint of the SIH monitoring system.
// The format argument is a YYYY-MM-DD date.
const DefaultBaseURL = "https://sinav30.conagua.gob.mx:8080/PresasPG/presas/reporte/%s"

// The endpoint rejects non-browser agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0"

// Client fetches daily reservoir reports.
type Client struct {
	BaseURL    string
	UserAgent  string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:   DefaultBaseURL,
		UserAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// FetchRaw returns the report body for a date exactly as served, so daily
// snapshots on disk stay byte-identical to the upstream payload.
func (c *Client) FetchRaw(date time.Time) ([]byte, error) {
	url := fmt.Sprintf(c.BaseURL, date.Format(models.ReportDateLayout))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchRaw: failed to create request: %v", err)
	}

	req.Header.Set("User-Agent", c.UserAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchRaw: failed to fetch %s: %v", url, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("FetchRaw: failed to read response from %s: %v", url, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchRaw: %s returned status %d", url, res.StatusCode)
	}

	return body, nil
}

// FetchReport downloads and decodes the report for a date.
func (c *Client) FetchReport(date time.Time) ([]models.DailyRecord, error) {
	body, err := c.FetchRaw(date)
	if err != nil {
		return nil, fmt.Errorf("FetchReport: %v", err)
	}

	var records []models.DailyRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("FetchReport: failed to decode report for %s: %v", date.Format(models.ReportDateLayout), err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("FetchReport: empty report for %s", date.Format(models.ReportDateLayout))
	}

	return records, nil
}
