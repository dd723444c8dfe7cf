package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragadex/chord"
	"github.com/jsphweid/ragadex/export"
)

var (
	exportTemplate string
	exportExtend   bool
	exportTonic    int
)

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", chord.TemplateAll, "template id or all")
	exportCmd.Flags().BoolVar(&exportExtend, "extend", false, "add an extension interval")
	exportCmd.Flags().IntVar(&exportTonic, "tonic", 0, "tonic pitch class (0=C)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [raga] [outfile.mid]",
	Short: "Writes a raga's playable chords to a midi file",
	Long:  `Writes a raga's playable chords to a midi file`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exportChords(args[0], args[1])
	},
}

func exportChords(name string, path string) {
	rg, err := newRepository().Get(name)
	if err != nil {
		fmt.Printf("No raga named %v\n", name)
		return
	}

	matches := chord.Match(rg.Combined, exportTemplate, exportExtend)
	if len(matches) == 0 {
		fmt.Println("No chords to export")
		return
	}

	if err := export.Write(path, matches, exportTonic); err != nil {
		fmt.Printf("Could not write %v: %v\n", path, err)
		return
	}
	fmt.Printf("Wrote %v chords to %v\n", len(matches), path)
}
