// Package bioconsert_test — Gherkin acceptance suite over the public API.
// Scenarios live in features/consensus.feature.
package bioconsert_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/pierreandrieu/corankco/bioconsert"
	"github.com/pierreandrieu/corankco/pairwise"
	"github.com/pierreandrieu/corankco/rankings"
)

// consensusTestContext holds state between steps of one scenario.
type consensusTestContext struct {
	positions *rankings.Positions
	scheme    pairwise.Scheme
	matrix    *pairwise.CostMatrix
	consensus []int
	delta     float64
}

func (ctx *consensusTestContext) reset() {
	ctx.positions = nil
	ctx.scheme = pairwise.Scheme{}
	ctx.matrix = nil
	ctx.consensus = nil
	ctx.delta = 0
}

// parseRanking reads a space-separated bucket-index vector.
func parseRanking(s string) ([]int, error) {
	fields := strings.Fields(s)
	r := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("ranking entry %q: %w", f, err)
		}
		r[i] = v
	}

	return r, nil
}

func (ctx *consensusTestContext) aPositionsMatrix(table *godog.Table) error {
	if len(table.Rows) == 0 {
		return fmt.Errorf("empty positions table")
	}
	rows := make([][]int, len(table.Rows))
	for x, row := range table.Rows {
		rows[x] = make([]int, len(row.Cells))
		for v, cell := range row.Cells {
			pos, err := strconv.Atoi(strings.TrimSpace(cell.Value))
			if err != nil {
				return fmt.Errorf("positions cell (%d,%d) %q: %w", x, v, cell.Value, err)
			}
			rows[x][v] = pos
		}
	}

	p, err := rankings.NewPositionsFromRows(rows)
	if err != nil {
		return err
	}
	ctx.positions = p

	return nil
}

func (ctx *consensusTestContext) theInducedMeasureScoringScheme() error {
	ctx.scheme = pairwise.InducedMeasureScheme()

	return nil
}

func (ctx *consensusTestContext) theUnifyingScoringScheme() error {
	ctx.scheme = pairwise.UnifyingScheme()

	return nil
}

func (ctx *consensusTestContext) iImproveTheDepartureRanking(departure string) error {
	if ctx.positions == nil {
		return fmt.Errorf("no positions matrix defined")
	}
	r, err := parseRanking(departure)
	if err != nil {
		return err
	}

	cm, err := pairwise.NewCostMatrix(ctx.positions, ctx.scheme)
	if err != nil {
		return err
	}
	ctx.matrix = cm

	delta, err := bioconsert.ImproveRanking(cm, r, bioconsert.DefaultOptions())
	if err != nil {
		return err
	}
	ctx.consensus = r
	ctx.delta = delta

	return nil
}

func (ctx *consensusTestContext) theConsensusShouldBe(expected string) error {
	want, err := parseRanking(expected)
	if err != nil {
		return err
	}
	if len(want) != len(ctx.consensus) {
		return fmt.Errorf("consensus %v, want %v", ctx.consensus, want)
	}
	for i := range want {
		if want[i] != ctx.consensus[i] {
			return fmt.Errorf("consensus %v, want %v", ctx.consensus, want)
		}
	}

	return nil
}

func (ctx *consensusTestContext) theCostChangeShouldBe(expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	if ctx.delta != want {
		return fmt.Errorf("cost change %v, want %v", ctx.delta, want)
	}

	return nil
}

func (ctx *consensusTestContext) noRelocationShouldImprove() error {
	base, err := ctx.matrix.Cost(ctx.consensus)
	if err != nil {
		return err
	}
	for _, cand := range enumerateRelocations(ctx.consensus) {
		cost, cerr := ctx.matrix.Cost(cand)
		if cerr != nil {
			return cerr
		}
		if cost < base-costEps {
			return fmt.Errorf("relocation %v costs %v, below %v", cand, cost, base)
		}
	}

	return nil
}

func (ctx *consensusTestContext) improvingAgainChangesNothing() error {
	again := rankings.Clone(ctx.consensus)
	delta, err := bioconsert.ImproveRanking(ctx.matrix, again, bioconsert.DefaultOptions())
	if err != nil {
		return err
	}
	if delta != 0 {
		return fmt.Errorf("second improvement changed cost by %v", delta)
	}
	for i := range again {
		if again[i] != ctx.consensus[i] {
			return fmt.Errorf("second improvement changed ranking to %v", again)
		}
	}

	return nil
}

func (ctx *consensusTestContext) elementShouldBeRankedBefore(x, y int) error {
	n := len(ctx.consensus)
	if x < 0 || x >= n || y < 0 || y >= n {
		return fmt.Errorf("element out of range in consensus of %d elements", n)
	}
	if ctx.consensus[x] >= ctx.consensus[y] {
		return fmt.Errorf("element %d (bucket %d) is not before element %d (bucket %d)",
			x, ctx.consensus[x], y, ctx.consensus[y])
	}

	return nil
}

// InitializeScenario wires the step definitions.
func InitializeScenario(sc *godog.ScenarioContext) {
	ctx := &consensusTestContext{}

	sc.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		ctx.reset()

		return c, nil
	})

	sc.Step(`^a positions matrix:$`, ctx.aPositionsMatrix)
	sc.Step(`^the induced measure scoring scheme$`, ctx.theInducedMeasureScoringScheme)
	sc.Step(`^the unifying scoring scheme$`, ctx.theUnifyingScoringScheme)
	sc.Step(`^I improve the departure ranking "([^"]*)"$`, ctx.iImproveTheDepartureRanking)
	sc.Step(`^the consensus should be "([^"]*)"$`, ctx.theConsensusShouldBe)
	sc.Step(`^the cost change should be (-?[\d.]+)$`, ctx.theCostChangeShouldBe)
	sc.Step(`^no single-element relocation should improve the consensus$`, ctx.noRelocationShouldImprove)
	sc.Step(`^improving the consensus again should change nothing$`, ctx.improvingAgainChangesNothing)
	sc.Step(`^element (\d+) should be ranked before element (\d+)$`, ctx.elementShouldBeRankedBefore)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
