package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/chordlabel"
	"github.com/jsphweid/chordex/dump"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/pretty"
	"github.com/jsphweid/chordex/registry"
	"github.com/spf13/cobra"
)

func init() {
	inspectCmd.Flags().String("root", "", "only show the chord on this root")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chord-label>",
	Short: "Inspects a chord label",
	Long: `Prints a chord label with its intervals, the chord it makes on every root,
the scales it fits in and its relationships to other labels. Use "" for the
major triad.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		root, _ := cmd.Flags().GetString("root")
		return inspect(cmd.OutOrStdout(), s.reg, args[0], root, s.cfg.Pretty)
	},
}

func inspect(out io.Writer, reg *registry.Registry, name string, rootName string, prettify bool) error {
	c, err := reg.ChordLabels.Get(name)
	if err != nil {
		return err
	}

	roots := reg.Roots
	if rootName != "" {
		root, err := reg.Root(rootName)
		if err != nil {
			return err
		}
		roots = []note.Note{root}
	}

	f := dump.Format{Sym: pretty.Formatter(prettify)}
	fmt.Fprintln(out, f.ChordLabel(c))

	fmt.Fprintln(out, "\nChords:")
	for _, root := range roots {
		ch, err := chord.New(root, c)
		if err != nil {
			fmt.Fprintf(out, "  %v: %v\n", f.Sym(root.Name()), err)
			continue
		}
		fmt.Fprintf(out, "  %v\n", f.Chord(ch))
	}

	fmt.Fprintln(out, "\nScales:")
	for _, sl := range scalesContaining(reg, c) {
		fmt.Fprintf(out, "  %v\n", sl)
	}

	fmt.Fprintln(out, "\nRelationships:")
	for _, r := range reg.Relationships.From(c) {
		fmt.Fprintf(out, "  %v\n", f.Relationship(r))
	}
	return nil
}

func scalesContaining(reg *registry.Registry, c *chordlabel.ChordLabel) []string {
	var res []string
	for _, sl := range reg.ScaleLabels.Values() {
		if sl.Extended().ContainsEnharmonics(c.Set) {
			res = append(res, sl.Name())
		}
	}
	return res
}
