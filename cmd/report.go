package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragadex/aggregate"
	"github.com/jsphweid/ragadex/model"
	"github.com/jsphweid/ragadex/swara"
	"github.com/jsphweid/ragadex/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over the raga catalog",
	Long:  `Creates a report over the raga catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type catalogReport struct {
	numRagas    int
	jatiCounts  map[string]int
	basicCounts []int
	extCounts   []int
}

func analyzeCatalog(ragas []model.Raga) catalogReport {
	res := catalogReport{jatiCounts: make(map[string]int)}
	for _, rg := range ragas {
		res.numRagas++
		jati := swara.Jati(swara.CountActiveGroups(rg.Combined))
		res.jatiCounts[jati]++

		counts := aggregate.Count(rg, model.DirCombined, true)
		res.basicCounts = append(res.basicCounts, counts.Basic)
		res.extCounts = append(res.extCounts, counts.Extended)
	}
	return res
}

func report() {
	r := analyzeCatalog(newRepository().All())

	fmt.Printf("numRagas: %v\n", r.numRagas)

	jatis := util.GetKeys(r.jatiCounts)
	sort.Strings(jatis)
	for _, jati := range jatis {
		fmt.Printf("%v: %v\n", jati, r.jatiCounts[jati])
	}

	totalBasic := util.Sum(r.basicCounts)
	totalExtended := util.Sum(r.extCounts)
	fmt.Printf("totalBasicChords: %v\n", totalBasic)
	fmt.Printf("totalExtendedChords: %v\n", totalExtended)
	if r.numRagas > 0 {
		avg := float32(totalBasic+totalExtended) / float32(r.numRagas)
		fmt.Printf("avgChordsPerRaga: %v\n", avg)
	}
}
