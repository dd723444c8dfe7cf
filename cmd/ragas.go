package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragadex/constants"
	"github.com/jsphweid/ragadex/csvdata"
	"github.com/jsphweid/ragadex/raga"
	"github.com/jsphweid/ragadex/swara"
)

func init() {
	rootCmd.AddCommand(ragasCmd)
}

var ragasCmd = &cobra.Command{
	Use:   "ragas",
	Short: "Lists the raga catalog",
	Long:  `Lists the raga catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		listRagas()
	},
}

func newRepository() *raga.Repository {
	return raga.NewRepository(csvdata.FileLoader{Path: constants.GetDataPath()})
}

func listRagas() {
	for _, rg := range newRepository().All() {
		count := swara.CountActiveGroups(rg.Combined)
		fmt.Printf("%v (%v)\n", rg.Name, swara.Jati(count))
	}
}
