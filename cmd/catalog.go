package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/opusquiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the piece catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pieces (optionally filtered by group)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogForCmd(cmd)
		if err != nil {
			return err
		}

		groups, _ := cmd.Flags().GetStringSlice("group")
		items := cat.Items()
		if len(groups) > 0 {
			if items, err = cat.Select(groups...); err != nil {
				return err
			}
		}

		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				it.Group, truncate(it.Composer, 22), truncate(it.Title, 44),
				it.MediaRef, formatOffset(it.StartOffset),
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderTable(
			[]string{"Group", "Composer", "Title", "Clip", "Start"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		))
		fmt.Fprintf(out, "\n%d pieces\n", len(items))
		return nil
	},
}

var catalogGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the catalog's groups with their piece counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogForCmd(cmd)
		if err != nil {
			return err
		}
		var rows [][]string
		for _, g := range cat.Groups() {
			rows = append(rows, []string{g, strconv.Itoa(len(cat.ByGroup(g)))})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"Group", "Pieces"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringSlice("group", nil, "Only list pieces in this group (repeatable)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGroupsCmd)
}

// catalogForCmd loads the catalog named by the resolved configuration.
// Logs go to stderr for non-interactive commands.
func catalogForCmd(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, closer, err := setupLogging(cfg, "-")
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "path", cfg.CatalogPath, "items", cat.Len())
	return cat, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func formatOffset(sec int) string {
	if sec <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
