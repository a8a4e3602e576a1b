package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/cookiemilk-backend/internal/entity"
	"github.com/rocketscienceinc/cookiemilk-backend/internal/service"
)

var errInvalidCount = errors.New("count must be positive")

var (
	randomSeed  int64
	randomCount int
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print seeded random boards without starting the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printRandomBoards(cmd.OutOrStdout(), randomSeed, randomCount)
	},
}

func init() {
	randomCmd.Flags().Int64Var(&randomSeed, "seed", service.DefaultSeed, "generator seed")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of consecutive boards")
}

// printRandomBoards prints the same sequence GET /random-board serves after a reset.
func printRandomBoards(w io.Writer, seed int64, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: %d", errInvalidCount, count)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // reproducible boards are required
	board := entity.NewBoard()

	for i := range count {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write board: %w", err)
			}
		}

		board.Randomize(rng)
		if _, err := io.WriteString(w, board.Display()); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	return nil
}
