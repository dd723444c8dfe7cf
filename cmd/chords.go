package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/ragadex/chord"
	"github.com/jsphweid/ragadex/western"
)

var (
	chordsTemplate string
	chordsExtend   bool
	chordsTonic    int
)

func init() {
	chordsCmd.Flags().StringVar(&chordsTemplate, "template", chord.TemplateAll, "template id or all")
	chordsCmd.Flags().BoolVar(&chordsExtend, "extend", false, "add an extension interval")
	chordsCmd.Flags().IntVar(&chordsTonic, "tonic", -1, "western tonic pitch class (0=C)")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [raga]",
	Short: "Prints playable chords for a raga",
	Long:  `Prints playable chords for a raga`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printChords(args[0])
	},
}

func printChords(name string) {
	rg, err := newRepository().Get(name)
	if err != nil {
		fmt.Printf("No raga named %v\n", name)
		return
	}

	matches := chord.Match(rg.Combined, chordsTemplate, chordsExtend)
	if chordsTonic >= 0 {
		matches = western.Annotate(matches, chordsTonic)
	}

	for _, m := range matches {
		notes := make([]string, len(m.Notes))
		for i, n := range m.Notes {
			notes[i] = fmt.Sprintf("%v", n)
		}
		line := fmt.Sprintf("%v %v [%v]", m.RootName, m.Template.Name, strings.Join(notes, "-"))
		if m.IsExtended {
			line += " (extended)"
		}
		if m.Western != "" {
			line += "  " + m.Western
		}
		fmt.Println(line)
	}
}
