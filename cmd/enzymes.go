package cmd

import (
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mvgnu/BioLabs-sub002/internal/toolkit"
)

// enzymesCmd is for listing out all the enzymes in the canonical
// recognition-site table. Useful for if the user doesn't know which
// enzymes the digest scorer considers.
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List the restriction enzymes in the recognition-site table",
	Long: `Lists the enzymes the digest scorer scans with, along with their
recognition sequence and recommended buffer.

	<Name>: <Recognition sequence>	<Buffer>`,
	Run: func(cmd *cobra.Command, args []string) {
		filter := ""
		if len(args) > 0 {
			filter = strings.ToLower(args[0])
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
		for _, e := range toolkit.Enzymes() {
			if filter != "" && !strings.Contains(strings.ToLower(e.Name), filter) {
				continue
			}
			class := ""
			if e.TypeIIS {
				class = "type IIS"
			}
			w.Write([]byte(e.Name + "\t" + e.Recog + "\t" + e.Buffer + "\t" + class + "\n"))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}
