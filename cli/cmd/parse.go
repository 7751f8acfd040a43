package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sgmlcode "github.com/vippsas/sgmlcode"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and report success or the first syntax error",
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
		fmt.Printf("ok: %d events\n", f.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
