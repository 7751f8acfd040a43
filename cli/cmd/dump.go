package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	sgmlcode "github.com/vippsas/sgmlcode"
)

// dumpEvent is a flat, repr-friendly projection of event.Event: the real
// type keeps its payload in the borrowed/owned event.Str union, which
// would dump as internal offsets rather than readable text.
type dumpEvent struct {
	Kind     string
	Name     string
	Value    string
	HasValue bool
}

var dumpDigest bool

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Parse a file and pretty-print its event stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return fmt.Errorf("need to specify argument <file>")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		source := string(raw)

		f, err := sgmlcode.ParseWithLogger(source, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, sgmlcode.Describe(err, source))
			return err
		}

		if dumpDigest {
			fmt.Fprintln(cmd.OutOrStdout(), f.Digest())
			return nil
		}

		out := make([]dumpEvent, f.Len())
		for i, e := range f.Events() {
			out[i] = dumpEvent{
				Kind:     e.Kind.String(),
				Name:     e.Name.AsString(),
				Value:    e.Value.AsString(),
				HasValue: e.HasValue,
			}
		}
		repr.Println(out)
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpDigest, "digest", false, "print the fragment's content digest instead of its events")
	rootCmd.AddCommand(dumpCmd)
}
