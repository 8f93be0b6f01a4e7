package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aguasmx/presas/conagua"
	"github.com/aguasmx/presas/services"
	"github.com/aguasmx/presas/utils"
)

type RunArgs struct {
	Years []int
	Dir   string
}

type RunResult struct {
	Downloaded int
}

var runCmd = &cobra.Command{
	Use:   "descargar --years 2023,2024",
	Short: "Download the missing daily reservoir reports into the archive",
	Run: func(cmd *cobra.Command, args []string) {
		years, err := cmd.Flags().GetIntSlice("years")
		if err != nil {
			log.Fatalf("error getting years: %v", err)
		}

		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			log.Fatalf("error getting dir: %v", err)
		}

		if result, err := Run(RunArgs{
			Years: years,
			Dir:   dir,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			log.Infof("Done: %d new reports", result.Downloaded)
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	client := conagua.NewClient()
	if baseURL := os.Getenv("PRESAS_BASE_URL"); baseURL != "" {
		client.BaseURL = baseURL
	}
	if userAgent := os.Getenv("PRESAS_USER_AGENT"); userAgent != "" {
		client.UserAgent = userAgent
	}

	downloader := services.NewDownloader(client, args.Dir)

	downloaded, err := downloader.DownloadYears(args.Years)
	if err != nil {
		return RunResult{}, err
	}

	return RunResult{Downloaded: downloaded}, nil
}

func main() {
	runCmd.PersistentFlags().IntSlice("years", []int{time.Now().Year()}, "The years to download.")
	runCmd.PersistentFlags().String("dir", "archivos", "The directory for the daily JSON snapshots.")

	runCmd.Execute()
}
