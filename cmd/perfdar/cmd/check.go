package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Brandhoej/perfdar/analysis"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a model and report on its state space",
	Long: `Validate a yaml model and analyze the automaton it describes:
reachable states, fired transitions, deadlocks, and structural
connectivity. Loading alone already reports construction errors such as
missing initial locations or broken input/output partitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		automaton := loadAutomaton(inputFile)
		analyzer := analysis.NewAnalyzer(automaton).
			WithMaxStates(stateCap(maxStates))
		result, err := analyzer.Analyze()
		if err != nil {
			logger.Fatal("analyze", zap.String("automaton", automaton.Name()), zap.Error(err))
		}
		logger.Info("analyzed",
			zap.String("id", result.ID.String()),
			zap.String("automaton", result.Automaton),
			zap.Int("states", result.StateCount),
			zap.Int("transitions", result.TransitionCount),
			zap.Int("deadlocks", len(result.Deadlocks)),
			zap.Bool("truncated", result.Truncated),
			zap.Bool("connected", analyzer.StructurallyConnected()),
		)
		for _, deadlock := range result.Deadlocks {
			fmt.Println("deadlock:", deadlock.String())
		}
	},
}

var maxStates int

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&maxStates, "max-states", "m", 0, "state cap, 0 for unbounded")
}
