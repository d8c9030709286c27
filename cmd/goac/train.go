package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goactorcritic/experiment"
)

var (
	trainConfig string
	trainQuiet  bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train an agent online, then evaluate it",
	Long: `Train an agent described by a YAML experiment configuration.

The agent is trained online for the configured number of episodes, then
its target policy is evaluated without learning. Training returns are
saved to the configured save file.

Examples:
  goac train --config examples/cacla.yaml
  goac train --config examples/nac.yaml --quiet`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Path to experiment configuration")
	trainCmd.Flags().BoolVarP(&trainQuiet, "quiet", "q", false, "Only print summaries")
	_ = trainCmd.MarkFlagRequired("config")
}

func runTrain(cmd *cobra.Command, args []string) error {
	config, err := experiment.Load(trainConfig)
	if err != nil {
		return err
	}

	online, eval, err := config.Create()
	if err != nil {
		return err
	}

	fmt.Println(aurora.Bold(fmt.Sprintf("Training %v on %v", config.Agent.Type,
		config.Env.Environment)))

	var total float64
	for i := 0; i < config.Episodes; i++ {
		episode, err := online.RunEpisode()
		if err != nil {
			return fmt.Errorf("train: episode %d: %w", i, err)
		}
		total += episode.TotalReward

		if !trainQuiet {
			fmt.Printf("%s %v\n", aurora.Cyan(fmt.Sprintf("[%4d]", i)), episode)
		}
	}
	if config.Episodes > 0 {
		fmt.Println(aurora.Green(fmt.Sprintf("Mean training return: %.3f",
			total/float64(config.Episodes))))
	}

	if config.SaveFile != "" {
		if err := online.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved returns to %s\n", config.SaveFile)
	}

	episodes, err := eval.Run(config.EvalEpisodes)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	for i, episode := range episodes {
		fmt.Printf("%s %v\n", aurora.Yellow(fmt.Sprintf("[eval %d]", i)), episode)
	}
	return nil
}
