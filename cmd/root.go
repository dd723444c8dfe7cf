package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ragadex",
	Short: "Chord finder for Indian classical ragas",
	Long:  `Computes which western chord shapes are playable inside a raga's aaroha/avaroha patterns.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
