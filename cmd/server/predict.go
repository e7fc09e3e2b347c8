package main

import (
	"fmt"

	"car-price-service/internal/adapters/secondary/artifact"
	"car-price-service/internal/config"
	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/services"

	"github.com/spf13/cobra"
)

// newPredictCommand runs one prediction offline against the configured
// artifacts. Unlike the server, a load failure is fatal here.
func newPredictCommand() *cobra.Command {
	var features domain.CarFeatures

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a price without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			artifacts, err := services.LoadArtifacts(artifact.NewFileLoader(), cfg.Artifact.ModelFile(), cfg.Artifact.ScalerFile())
			if err != nil {
				return err
			}

			price, err := services.NewPredictionService(artifacts).Predict(features)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), domain.FormatUSD(price))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&features.Year, "year", 0, "model year")
	flags.Float64Var(&features.EngineSize, "engine-size", 0, "engine size in litres")
	flags.Float64Var(&features.Mileage, "mileage", 0, "odometer reading")
	flags.IntVar(&features.Doors, "doors", 0, "number of doors")
	flags.IntVar(&features.OwnerCount, "owner-count", 0, "number of previous owners")
	for _, name := range []string{"year", "engine-size", "mileage", "doors", "owner-count"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
