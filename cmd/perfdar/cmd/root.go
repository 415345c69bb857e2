package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/env"
	"github.com/Brandhoej/perfdar/yaml"
)

var (
	inputFile   string
	logger      *zap.Logger
	environment *env.Environment
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "perfdar",
	Short: "Work with guarded input/output automata",
	Long: `Load automata from yaml models, validate them, explore their
reachable state spaces, and render them as graphviz figures.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		environment = env.Load(logger)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "input yaml model")
}

func loadAutomaton(path string) *perfdar.Automaton {
	df, err := os.Open(path)
	if err != nil {
		logger.Fatal("open model", zap.String("path", path), zap.Error(err))
	}
	defer func() {
		_ = df.Close()
	}()
	automaton, err := yaml.NewService().Load(df)
	if err != nil {
		logger.Fatal("load model", zap.String("path", path), zap.Error(err))
	}
	return automaton
}

// stateCap resolves the effective state cap: the flag wins, then the
// environment, and zero means unbounded.
func stateCap(flag int) int {
	if flag > 0 {
		return flag
	}
	return environment.MaxStates
}
