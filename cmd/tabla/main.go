package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aguasmx/presas/charts"
	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/services"
	"github.com/aguasmx/presas/utils"
)

type RunArgs struct {
	Fecha   string
	DataDir string
	Color   string
	Firma   string
	Out     string
}

type RunResult struct {
	OutPath string
}

var runCmd = &cobra.Command{
	Use:   "tabla --fecha 2024-04-02",
	Short: "Render the per-state storage table for one day",
	Run: func(cmd *cobra.Command, args []string) {
		fecha, err := cmd.Flags().GetString("fecha")
		if err != nil {
			log.Fatalf("error getting fecha: %v", err)
		}

		dataDir, err := cmd.Flags().GetString("dataDir")
		if err != nil {
			log.Fatalf("error getting dataDir: %v", err)
		}

		color, err := cmd.Flags().GetString("color")
		if err != nil {
			log.Fatalf("error getting color: %v", err)
		}

		firma, err := cmd.Flags().GetString("firma")
		if err != nil {
			log.Fatalf("error getting firma: %v", err)
		}

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		if result, err := Run(RunArgs{
			Fecha:   fecha,
			DataDir: dataDir,
			Color:   color,
			Firma:   firma,
			Out:     out,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			log.Infof("Output: %s", result.OutPath)
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	day, err := time.Parse(models.ReportDateLayout, args.Fecha)
	if err != nil {
		log.Fatalf("error parsing fecha: %v", err)
	}

	records, err := services.LoadYear(args.DataDir, day.Year())
	if err != nil {
		return RunResult{}, err
	}

	rows, err := services.StateSummary(records, day)
	if err != nil {
		return RunResult{}, err
	}

	fmt.Println(services.FormatStateTable(rows, day))

	outPath := args.Out
	if outPath == "" {
		outPath = fmt.Sprintf("tabla_presas_%d.png", day.Year())
	}

	file, err := os.Create(outPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("error creating %s: %v", outPath, err)
	}

	defer file.Close()

	opts := charts.StateTableOptions{
		Day:         day,
		HeaderColor: utils.ParseHexColor(args.Color),
		Firma:       args.Firma,
		Rows:        rows,
	}

	if err := charts.RenderStateTable(opts, file); err != nil {
		return RunResult{}, err
	}

	return RunResult{OutPath: outPath}, nil
}

func main() {
	runCmd.PersistentFlags().String("fecha", "", "The day to summarize, as YYYY-MM-DD.")
	runCmd.PersistentFlags().String("dataDir", "data", "The directory with the yearly CSV datasets.")
	runCmd.PersistentFlags().String("color", charts.DefaultHeaderHex, "The hex color of the header row.")
	runCmd.PersistentFlags().String("firma", charts.DefaultFirma, "The signature of the bottom right corner.")
	runCmd.PersistentFlags().String("out", "", "The output PNG path. Defaults to tabla_presas_{year}.png.")

	runCmd.MarkPersistentFlagRequired("fecha")

	runCmd.Execute()
}
