package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goactorcritic/experiment/plot"
	"github.com/samuelfneumann/goactorcritic/experiment/tracker"
)

var (
	plotData   []string
	plotOut    string
	plotTitle  string
	plotWindow int
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot saved returns as an HTML learning curve",
	Long: `Plot the returns saved by one or more training runs.

Each data file is plotted as a separate line named after the file.

Examples:
  goac plot --data cacla.bin --out cacla.html
  goac plot --data cacla.bin,nac.bin --window 10 --out compare.html`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringSliceVarP(&plotData, "data", "d", nil, "Saved return files")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "learning-curve.html", "Output HTML file")
	plotCmd.Flags().StringVar(&plotTitle, "title", "Learning curve", "Chart title")
	plotCmd.Flags().IntVarP(&plotWindow, "window", "w", 1, "Moving average window in episodes")
	_ = plotCmd.MarkFlagRequired("data")
}

func runPlot(cmd *cobra.Command, args []string) error {
	series := make([]plot.Series, 0, len(plotData))
	for _, file := range plotData {
		data, err := tracker.LoadData(file)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		series = append(series, plot.Series{Name: name, Values: data})
	}

	out, err := os.Create(plotOut)
	if err != nil {
		return fmt.Errorf("plot: create output: %w", err)
	}
	defer out.Close()

	if err := plot.LearningCurve(out, plotTitle, plotWindow, series...); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", plotOut)
	return out.Close()
}
