package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"certkit.dev/certkit/internal/domain"
	"certkit.dev/certkit/internal/ui"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the known certificate verification status codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := ui.NewCodesTable()
		table.Header([]string{"Code", "Description"})

		rows := make([][]string, 0)
		for _, code := range domain.KnownVerifyCodes() {
			desc := "ok"
			if e := domain.VerifyErrorFromRaw(code); e != nil {
				desc = e.ErrorString()
			}
			rows = append(rows, []string{strconv.Itoa(code), desc})
		}
		table.Bulk(rows)
		table.Render()
		return nil
	},
}
