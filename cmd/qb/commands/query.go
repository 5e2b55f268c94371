package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query <statement>",
		Short: "Run a raw SELECT statement",
		Long: `Run a raw SELECT statement against the query endpoint, for example:

  qb query "select * from Customer where Active = 'true' maxresults 10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrQueryRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Query().Raw(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// Decode each entity array generically for rendering.
			results := make(map[string]interface{})
			for name, raw := range resp.Entities {
				var decoded interface{}
				if err := json.Unmarshal(raw, &decoded); err != nil {
					return fmt.Errorf("decoding %s results: %w", name, err)
				}

				results[name] = decoded
			}

			return renderOutput(results, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Entity", "Count")

				names := make([]string, 0, len(results))
				for name := range results {
					names = append(names, name)
				}

				sort.Strings(names)

				for _, name := range names {
					count := 0
					if list, ok := results[name].([]interface{}); ok {
						count = len(list)
					}

					_ = table.Append(name, fmt.Sprintf("%d", count))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Println("Use --output json to see the full records")

				return nil
			})
		},
	}
}
