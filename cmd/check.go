package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/matcher"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Judge a guess against a catalog piece (no quiz)",
	Long: `Judge a composer/title guess the same way the quiz does and print the
verdict with both edit distances.

The reference piece is given with --piece "Composer - Title". Without it the
closest piece in the catalog is used.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("piece", "", `Reference piece as "Composer - Title"`)
	checkCmd.Flags().String("composer", "", "Guessed composer (required)")
	checkCmd.Flags().String("title", "", "Guessed title (required)")
	_ = checkCmd.MarkFlagRequired("composer")
	_ = checkCmd.MarkFlagRequired("title")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pieceVal, _ := cmd.Flags().GetString("piece")
	composer, _ := cmd.Flags().GetString("composer")
	title, _ := cmd.Flags().GetString("title")

	cat, err := catalogForCmd(cmd)
	if err != nil {
		return err
	}

	var ref catalog.Item
	if pieceVal != "" {
		ref, err = resolvePiece(cat, pieceVal)
		if err != nil {
			return err
		}
	} else {
		ref = closestPiece(cat, composer, title)
	}

	v := matcher.Judge(composer, title, ref)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Piece:    %s\n", ref)
	fmt.Fprintf(out, "Guess:    %s\n", v.Answer())
	fmt.Fprintf(out, "Composer: distance %d (max %d)\n", v.ComposerDistance, matcher.ComposerThreshold)
	fmt.Fprintf(out, "Title:    distance %d (max %d)\n", v.TitleDistance, matcher.TitleThreshold)
	if v.Correct {
		fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
	} else {
		fmt.Fprintln(out, "\033[31m✗ Not quite.\033[0m")
	}
	if ref.HasNote() {
		fmt.Fprintf(out, "Key point: %s\n", ref.Note)
	}
	return nil
}

// resolvePiece finds the catalog item named "Composer - Title", ignoring
// case and quotes around the title.
func resolvePiece(cat *catalog.Catalog, val string) (catalog.Item, error) {
	composer, title, ok := strings.Cut(val, " - ")
	if !ok {
		return catalog.Item{}, fmt.Errorf(`invalid --piece %q: want "Composer - Title"`, val)
	}
	composer = strings.TrimSpace(composer)
	title = strings.Trim(strings.TrimSpace(title), `"`)

	for _, it := range cat.Items() {
		if matcher.EditDistance(it.Composer, composer) == 0 && matcher.EditDistance(it.Title, title) == 0 {
			return it, nil
		}
	}
	return catalog.Item{}, fmt.Errorf("no piece found for %q", val)
}

// closestPiece returns the item with the smallest combined distance to the
// guess. Ties keep catalog order.
func closestPiece(cat *catalog.Catalog, composer, title string) catalog.Item {
	var best catalog.Item
	bestDist := -1
	for _, it := range cat.Items() {
		d := matcher.EditDistance(it.Composer, composer) + matcher.EditDistance(it.Title, title)
		if bestDist < 0 || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}
