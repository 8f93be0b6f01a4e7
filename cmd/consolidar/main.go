package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aguasmx/presas/services"
	"github.com/aguasmx/presas/utils"
)

type RunArgs struct {
	Years      []int
	ArchiveDir string
	DataDir    string
}

type RunResult struct {
	Paths []string
}

var runCmd = &cobra.Command{
	Use:   "consolidar --years 2023,2024",
	Short: "Merge the daily JSON snapshots into yearly CSV datasets",
	Run: func(cmd *cobra.Command, args []string) {
		years, err := cmd.Flags().GetIntSlice("years")
		if err != nil {
			log.Fatalf("error getting years: %v", err)
		}

		archiveDir, err := cmd.Flags().GetString("archiveDir")
		if err != nil {
			log.Fatalf("error getting archiveDir: %v", err)
		}

		dataDir, err := cmd.Flags().GetString("dataDir")
		if err != nil {
			log.Fatalf("error getting dataDir: %v", err)
		}

		if result, err := Run(RunArgs{
			Years:      years,
			ArchiveDir: archiveDir,
			DataDir:    dataDir,
		}); err != nil {
			log.Errorf("Error: %v", err)
		} else {
			for _, path := range result.Paths {
				log.Infof("Output: %s", path)
			}
		}
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	var paths []string
	for _, year := range args.Years {
		path, err := services.ConsolidateYear(year, args.ArchiveDir, args.DataDir)
		if err != nil {
			return RunResult{}, err
		}

		paths = append(paths, path)
	}

	return RunResult{Paths: paths}, nil
}

func main() {
	runCmd.PersistentFlags().IntSlice("years", []int{time.Now().Year()}, "The years to consolidate.")
	runCmd.PersistentFlags().String("archiveDir", "archivos", "The directory with the daily JSON snapshots.")
	runCmd.PersistentFlags().String("dataDir", "data", "The directory for the yearly CSV datasets.")

	runCmd.Execute()
}
