package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrhache/fhirsearch/internal/schema"
	"github.com/lrhache/fhirsearch/internal/ui"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List known resource types",
	Long: `Lists every registered resource type with its reference and
index paths. Types from a schema overlay (schema_path in the config)
are included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types := schema.Builtin()
		if cfg.SchemaPath != "" {
			overlay, err := schema.LoadOverlay(cfg.SchemaPath)
			if err != nil {
				return handleError(ErrSchemaInvalid, err, "")
			}
			if err := overlay.Apply(types); err != nil {
				return handleError(ErrSchemaConflict, err, "Overlay types must match built-ins exactly or use new names")
			}
		}

		if jsonOutput {
			items := make([]map[string]interface{}, 0, len(types.Types()))
			for _, name := range types.Types() {
				spec, _ := types.Lookup(name)
				items = append(items, map[string]interface{}{
					"name":       name,
					"references": spec.References,
					"index":      spec.Index,
				})
			}
			outputSuccess(map[string]interface{}{"types": items}, nil, &Meta{Count: len(items)})
			return nil
		}

		table := ui.NewTable(3)
		table.AddHeader("TYPE", "REFERENCES", "INDEXED FIELDS")
		for _, name := range types.Types() {
			spec, _ := types.Lookup(name)
			table.AddRow(name,
				strings.Join(spec.References, ", "),
				strings.Join(spec.Index, ", "))
		}
		fmt.Print(table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
