package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/goactorcritic/experiment/tracker"
	ts "github.com/samuelfneumann/goactorcritic/timestep"
)

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "cacla.bin")
	out := filepath.Join(dir, "chart.html")

	returns := tracker.NewReturn(data)
	for _, r := range []float64{-5, -3, -1} {
		returns.Track(ts.Episode{Steps: 10, TotalReward: r})
	}
	if err := returns.Save(); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"plot", "--data", data, "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "cacla") {
		t.Errorf("chart does not name the plotted series")
	}
}

func TestTrainCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	saveFile := filepath.Join(dir, "returns.bin")

	data := `
agent:
  type: CACLAVar-Linear
  config:
    alpha: {value: 0.01}
    beta: {value: 0.1}
    gamma: {value: 0.9}
    critic_learning_rate: {value: 0.05}
    std_dev: 0.5
    exploration: 0.5
env:
  environment: Pendulum
  task: SwingUp
  continuous_actions: true
  episode_cutoff: 10
  tiling: {tilings: 2, bins: [3, 3]}
episodes: 2
step_limit: 100
eval_episodes: 1
seed: 7
save_file: ` + saveFile + "\n"
	if err := os.WriteFile(config, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"train", "--config", config, "--quiet"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	returns, err := tracker.LoadData(saveFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(returns) != 2 {
		t.Errorf("unexpected number of saved returns \n\twant(2) \n\thave(%v)",
			len(returns))
	}
}
