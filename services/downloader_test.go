package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguasmx/presas/conagua"
)

func TestDownloadYears(t *testing.T) {
	t.Run("fills the archive and skips existing days", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			fmt.Fprintf(w, `[{"idmonitoreodiario": %d}]`, requests)
		}))
		defer server.Close()

		client := conagua.NewClient()
		client.BaseURL = server.URL + "/presas/reporte/%s"

		dir := filepath.Join(t.TempDir(), "archivos")
		downloader := NewDownloader(client, dir)

		// Seed one date by hand; it must survive the run untouched.
		require.NoError(t, os.MkdirAll(dir, 0755))
		seeded := filepath.Join(dir, "2021-03-14.json")
		require.NoError(t, os.WriteFile(seeded, []byte("[]"), 0644))

		downloaded, err := downloader.DownloadYears([]int{2021})
		assert.NoError(t, err)
		assert.Equal(t, 364, downloaded)
		assert.Equal(t, 364, requests)

		body, err := os.ReadFile(seeded)
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(body))

		first, err := os.ReadFile(filepath.Join(dir, "2021-01-01.json"))
		assert.NoError(t, err)
		assert.Equal(t, `[{"idmonitoreodiario": 1}]`, string(first))

		// A rerun finds every date on disk.
		downloaded, err = downloader.DownloadYears([]int{2021})
		assert.NoError(t, err)
		assert.Equal(t, 0, downloaded)
		assert.Equal(t, 364, requests)
	})

	t.Run("server failure stops the run", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "mantenimiento", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := conagua.NewClient()
		client.BaseURL = server.URL + "/presas/reporte/%s"

		downloader := NewDownloader(client, t.TempDir())

		downloaded, err := downloader.DownloadYears([]int{2021})
		assert.Error(t, err)
		assert.Equal(t, 0, downloaded)
	})

	t.Run("future year is an error", func(t *testing.T) {
		downloader := NewDownloader(conagua.NewClient(), t.TempDir())

		_, err := downloader.DownloadYears([]int{2999})
		assert.Error(t, err)
	})
}
