package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/arl/cde/cde"
	"github.com/arl/cde/geom"
	"github.com/arl/cde/hazard"
	"github.com/arl/cde/surrogate"
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>",
	Short: "Replay a scenario's placements and report overlapping items",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	sc, err := LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	bbox, err := geom.NewRect(0, 0, sc.Bin.Width, sc.Bin.Height)
	if err != nil {
		return fmt.Errorf("bin dimensions: %w", err)
	}

	engine := cde.New(cde.DefaultConfig(bbox))

	binEntity := hazard.NewBinExteriorEntity()
	binShape := geom.FromRect(bbox)
	if err := engine.RegisterHazard(hazard.NewHazard(binEntity, binShape, geom.Exterior)); err != nil {
		return err
	}

	conflicts := 0
	for _, item := range sc.Items {
		outline, err := item.Polygon()
		if err != nil {
			return fmt.Errorf("item %d: %w", item.ID, err)
		}
		placed := outline.Transform(item.Placement().Compose())
		surrogate.Generate(placed, engine.SurrogateConfig())

		if hits := engine.CollectPolyCollisions(placed, nil); len(hits) > 0 {
			conflicts++
			for _, h := range hits {
				log.Printf("item %d overlaps %s", item.ID, h.Entity)
			}
		}

		entity := hazard.NewPlacedItemEntity(item.ID, item.Placement())
		if err := engine.RegisterHazard(hazard.NewHazard(entity, placed, geom.Interior)); err != nil {
			return fmt.Errorf("item %d: %w", item.ID, err)
		}
	}

	fmt.Printf("%d item(s), %d conflicting\n", len(sc.Items), conflicts)
	return nil
}
