package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sgmlcode "github.com/vippsas/sgmlcode"
	"github.com/vippsas/sgmlcode/transform"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Parse a file, insert elided end tags, and print the normalized fragment",
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

		normalized, err := transform.NormalizeEndTags(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return err
		}

		fmt.Println(normalized.Display())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
