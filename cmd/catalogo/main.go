package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aguasmx/presas/conagua"
	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/services"
	"github.com/aguasmx/presas/utils"
)

type RunArgs struct {
	Fecha string
	Out   string
}

type RunResult struct {
	Dams int
}

var runCmd = &cobra.Command{
	Use:   "catalogo --fecha 2024-01-01",
	Short: "Build the static dam catalog from one reference report",
	Run: func(cmd *cobra.Command, args []string) {
		fecha, err := cmd.Flags().GetString("fecha")
		if err != nil {
			log.Fatalf("error getting fecha: %v", err)
		}

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		if result, err := Run(RunArgs{
			Fecha: fecha,
			Out:   out,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			log.Infof("Done: %d dams", result.Dams)
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	date, err := time.Parse(models.ReportDateLayout, args.Fecha)
	if err != nil {
		log.Fatalf("error parsing fecha: %v", err)
	}

	client := conagua.NewClient()
	if baseURL := os.Getenv("PRESAS_BASE_URL"); baseURL != "" {
		client.BaseURL = baseURL
	}
	if userAgent := os.Getenv("PRESAS_USER_AGENT"); userAgent != "" {
		client.UserAgent = userAgent
	}

	dams, err := services.BuildCatalog(client, date, args.Out)
	if err != nil {
		return RunResult{}, err
	}

	return RunResult{Dams: dams}, nil
}

func main() {
	runCmd.PersistentFlags().String("fecha", "2024-01-01", "The reference date for the catalog, as YYYY-MM-DD.")
	runCmd.PersistentFlags().String("out", "catalogo.csv", "The output CSV path.")

	runCmd.Execute()
}
