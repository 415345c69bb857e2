package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Brandhoej/perfdar/reach"
)

var (
	reachMax    int
	inputsOnly  bool
	outputsOnly bool
)

// reachCmd represents the reach command
var reachCmd = &cobra.Command{
	Use:   "reach",
	Short: "Enumerate the reachable states of an automaton",
	Long: `Enumerate the reachable states of an automaton breadth first,
optionally restricted to its input or output alphabet.`,
	Run: func(cmd *cobra.Command, args []string) {
		automaton := loadAutomaton(inputFile)
		actions := automaton.Actions()
		if inputsOnly {
			actions = automaton.Inputs()
		}
		if outputsOnly {
			actions = automaton.Outputs()
		}
		search := reach.NewSearch(automaton, actions).
			WithMaxStates(stateCap(reachMax))
		for search.Next() {
			fmt.Println(search.State().String())
		}
		if err := search.Err(); err != nil {
			logger.Fatal("search", zap.String("automaton", automaton.Name()), zap.Error(err))
		}
		if search.Truncated() {
			logger.Warn("truncated", zap.Int("visited", search.Visited()))
		}
	},
}

func init() {
	rootCmd.AddCommand(reachCmd)
	reachCmd.Flags().IntVarP(&reachMax, "max-states", "m", 0, "state cap, 0 for unbounded")
	reachCmd.Flags().BoolVar(&inputsOnly, "inputs", false, "restrict to the input alphabet")
	reachCmd.Flags().BoolVar(&outputsOnly, "outputs", false, "restrict to the output alphabet")
}
