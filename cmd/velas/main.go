package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aguasmx/presas/charts"
	"github.com/aguasmx/presas/models"
	"github.com/aguasmx/presas/services"
	"github.com/aguasmx/presas/utils"
)

// smoothingWindow is the trailing median window, in days, applied to the
// daily totals before the monthly OHLC resample.
const smoothingWindow = 7

type RunArgs struct {
	Clave    string
	Grupo    string
	Estado   string
	Titulo   string
	Side     string
	DataDir  string
	Catalogo string
	Grupos   string
	Years    int
	Raw      bool
	Firma    string
	Out      string
}

type RunResult struct {
	OutPath string
}

// selection is the set of dams to chart plus the texts that describe them.
type selection struct {
	claves []string
	titulo string
	note   string
	side   string
	namo   float64
	single bool
}

var runCmd = &cobra.Command{
	Use:   "velas --grupo cutzamala",
	Short: "Render the stacked monthly candlestick charts for a dam, a group or a state",
	Run: func(cmd *cobra.Command, args []string) {
		clave, err := cmd.Flags().GetString("clave")
		if err != nil {
			log.Fatalf("error getting clave: %v", err)
		}

		grupo, err := cmd.Flags().GetString("grupo")
		if err != nil {
			log.Fatalf("error getting grupo: %v", err)
		}

		estado, err := cmd.Flags().GetString("estado")
		if err != nil {
			log.Fatalf("error getting estado: %v", err)
		}

		titulo, err := cmd.Flags().GetString("titulo")
		if err != nil {
			log.Fatalf("error getting titulo: %v", err)
		}

		side, err := cmd.Flags().GetString("side")
		if err != nil {
			log.Fatalf("error getting side: %v", err)
		}

		dataDir, err := cmd.Flags().GetString("dataDir")
		if err != nil {
			log.Fatalf("error getting dataDir: %v", err)
		}

		catalogo, err := cmd.Flags().GetString("catalogo")
		if err != nil {
			log.Fatalf("error getting catalogo: %v", err)
		}

		grupos, err := cmd.Flags().GetString("grupos")
		if err != nil {
			log.Fatalf("error getting grupos: %v", err)
		}

		years, err := cmd.Flags().GetInt("years")
		if err != nil {
			log.Fatalf("error getting years: %v", err)
		}

		raw, err := cmd.Flags().GetBool("raw")
		if err != nil {
			log.Fatalf("error getting raw: %v", err)
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
			Clave:    clave,
			Grupo:    grupo,
			Estado:   estado,
			Titulo:   titulo,
			Side:     side,
			DataDir:  dataDir,
			Catalogo: catalogo,
			Grupos:   grupos,
			Years:    years,
			Raw:      raw,
			Firma:    firma,
			Out:      out,
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

	selectors := 0
	for _, flag := range []string{args.Clave, args.Grupo, args.Estado} {
		if flag != "" {
			selectors++
		}
	}

	if selectors != 1 {
		return RunResult{}, fmt.Errorf("exactly one of --clave, --grupo or --estado is required")
	}

	catalog, err := services.LoadCatalog(args.Catalogo)
	if err != nil {
		return RunResult{}, err
	}

	var sel selection
	switch {
	case args.Clave != "":
		sel, err = resolveClave(catalog, args.Clave)
	case args.Grupo != "":
		sel, err = resolveGrupo(catalog, args.Grupos, args.Grupo)
	default:
		sel, err = resolveEstado(catalog, args.Estado)
	}
	if err != nil {
		return RunResult{}, err
	}

	if args.Titulo != "" {
		sel.titulo = args.Titulo
	}

	side := args.Side
	if side == "" {
		side = sel.side
	}
	if side == "" {
		side = "right"
	}

	records, err := services.LoadDams(args.DataDir, sel.claves, args.Years)
	if err != nil {
		return RunResult{}, err
	}

	totals, err := services.DailyTotals(records)
	if err != nil {
		return RunResult{}, err
	}

	log.Infof("Loaded %d daily totals for %d dams", len(totals), len(sel.claves))

	smoothed := totals
	pct := services.PercentOfNAMO(totals)

	if !args.Raw {
		smoothed, err = services.SmoothMedian(totals, smoothingWindow)
		if err != nil {
			return RunResult{}, err
		}

		pct, err = services.SmoothMedian(pct, smoothingWindow)
		if err != nil {
			return RunResult{}, err
		}
	}

	var title string
	if sel.single {
		title = fmt.Sprintf("Evolución del almacenamiento de la presa %s (nivel máximo ordinario: %s hm³)",
			sel.titulo, utils.FormatHm3(sel.namo))
	} else {
		title = fmt.Sprintf("Evolución del volumen de almacenamiento de %s (NAMO: %s hm³)",
			sel.titulo, utils.FormatHm3(sel.namo))
	}

	sourceDate := models.MesAnio(totals[len(totals)-1].Date)

	opts := charts.CandleChartOptions{
		Title:      title,
		YAxisTitle: "Almacenamiento actual en hm³",
		Note:       sel.note,
		NoteSide:   side,
		SourceDate: sourceDate,
		Firma:      args.Firma,
		Candles:    services.MonthlyOHLC(smoothed),
	}

	var top bytes.Buffer
	if err := charts.RenderCandles(opts, &top); err != nil {
		return RunResult{}, err
	}

	opts.YAxisTitle = "Almacenamiento actual respecto al nivel máximo ordinario"
	opts.Percent = true
	opts.Candles = services.MonthlyOHLC(pct)

	var bottom bytes.Buffer
	if err := charts.RenderCandles(opts, &bottom); err != nil {
		return RunResult{}, err
	}

	outPath := args.Out
	if outPath == "" {
		if sel.single {
			outPath = fmt.Sprintf("f%s.png", sel.claves[0])
		} else {
			outPath = "final.png"
		}
	}

	if err := charts.WriteStacked(outPath, top.Bytes(), bottom.Bytes()); err != nil {
		return RunResult{}, err
	}

	return RunResult{OutPath: outPath}, nil
}

func resolveClave(catalog []models.CatalogEntry, clave string) (selection, error) {
	for _, entry := range catalog {
		if entry.ClaveSIH == clave {
			return selection{
				claves: []string{entry.ClaveSIH},
				titulo: entry.NombreComun,
				namo:   entry.NAMOAlmac,
				single: true,
			}, nil
		}
	}

	return selection{}, fmt.Errorf("resolveClave: clave %s not found in catalog", clave)
}

func resolveGrupo(catalog []models.CatalogEntry, gruposPath, name string) (selection, error) {
	data, err := os.ReadFile(gruposPath)
	if err != nil {
		return selection{}, fmt.Errorf("resolveGrupo: failed to read grupos config: %v", err)
	}

	var config models.GruposConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return selection{}, fmt.Errorf("resolveGrupo: failed to unmarshal grupos config: %v", err)
	}

	grupo, err := config.GetGrupo(name)
	if err != nil {
		return selection{}, fmt.Errorf("resolveGrupo: %v", err)
	}

	byClave := make(map[string]models.CatalogEntry)
	for _, entry := range catalog {
		byClave[entry.ClaveSIH] = entry
	}

	var namo float64
	lines := []string{"Nota:", "Cada vela representa las cifras", "mensuales de las presas:"}

	for _, clave := range grupo.Claves {
		entry, found := byClave[clave]
		if !found {
			return selection{}, fmt.Errorf("resolveGrupo: clave %s from grupo %s not found in catalog", clave, grupo.Name)
		}

		nombre, err := models.NombreConEstado(entry.NombreComun)
		if err != nil {
			return selection{}, fmt.Errorf("resolveGrupo: %v", err)
		}

		namo += entry.NAMOAlmac
		lines = append(lines, fmt.Sprintf("• %s", nombre))
	}

	return selection{
		claves: grupo.Claves,
		titulo: grupo.Titulo,
		note:   strings.Join(lines, "\n"),
		side:   grupo.Side,
		namo:   namo,
	}, nil
}

func resolveEstado(catalog []models.CatalogEntry, estado string) (selection, error) {
	var claves []string
	var namo float64

	for _, entry := range catalog {
		if entry.Estado == estado {
			claves = append(claves, entry.ClaveSIH)
			namo += entry.NAMOAlmac
		}
	}

	if len(claves) == 0 {
		return selection{}, fmt.Errorf("resolveEstado: no dams found in catalog for estado %s", estado)
	}

	note := strings.Join([]string{
		"Nota:",
		"Cada vela representa las cifras mensuales",
		"de las principales presas del estado.",
	}, "\n")

	return selection{
		claves: claves,
		titulo: fmt.Sprintf("las principales presas de %s", estado),
		note:   note,
		namo:   namo,
	}, nil
}

func main() {
	runCmd.PersistentFlags().String("clave", "", "The SIH key of a single dam, e.g. VBRMX.")
	runCmd.PersistentFlags().String("grupo", "", "The name of a dam group from the grupos file.")
	runCmd.PersistentFlags().String("estado", "", "The name of a state, e.g. Querétaro.")
	runCmd.PersistentFlags().String("titulo", "", "Overrides the subject named in the chart titles.")
	runCmd.PersistentFlags().String("side", "", "The side of the note box, left or right. Defaults to the grupo's side, or right.")
	runCmd.PersistentFlags().String("dataDir", "data", "The directory with the yearly CSV datasets.")
	runCmd.PersistentFlags().String("catalogo", "catalogo.csv", "The dam catalog CSV path.")
	runCmd.PersistentFlags().String("grupos", "grupos.yaml", "The YAML file with the named dam groups.")
	runCmd.PersistentFlags().Int("years", 15, "The number of most recent yearly datasets to chart.")
	runCmd.PersistentFlags().Bool("raw", false, "Plot the raw daily series, skipping the 7-day median smoothing.")
	runCmd.PersistentFlags().String("firma", charts.DefaultFirma, "The signature of the bottom right corner.")
	runCmd.PersistentFlags().String("out", "", "The output PNG path. Defaults to f{CLAVE}.png or final.png.")

	runCmd.Execute()
}
