package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Brandhoej/perfdar/graphviz"
)

var outputDir string

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Create a graphviz figure from an automaton",
	Long:  `Create a graphviz figure from an automaton. The input file must be a yaml model.`,
	Run: func(cmd *cobra.Command, args []string) {
		automaton := loadAutomaton(inputFile)
		if outputDir == "" {
			outputDir = environment.OutputDir
		}
		outName := automaton.Name() + ".dot"
		cfg := &graphviz.Config{
			Name:    automaton.Name(),
			Font:    graphviz.Helvetica,
			RankDir: graphviz.LeftToRight,
		}
		outPath := outputDir + "/" + outName
		fmt.Printf("writing figure for %s to %s...", inputFile, outPath)
		err := os.MkdirAll(outputDir, os.ModePerm)
		if err != nil {
			panic(err)
		}
		df, err := os.Create(outPath)
		if err != nil {
			panic(err)
		}
		defer func() {
			_ = df.Close()
		}()
		w := graphviz.New(cfg)
		err = w.Flush(df, automaton)
		if err != nil {
			panic(err)
		}
		fmt.Println("done")
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
}
