// Package cmd - classes and adducts listing commands
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gslgen/core/adduct"
	"gslgen/core/registry"
	"gslgen/internal/config"
)

// classesCmd lists the lipid class catalog
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the available lipid classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(config.Get())
		if err != nil {
			return err
		}

		fmt.Printf("%-8s %-12s %-10s %s\n", "CLASS", "MW RANGE", "CHARGES", "STRUCTURE")
		for _, name := range reg.Names() {
			def, err := reg.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %-12s %-10s %s\n",
				def.Name, def.MWRange, chargeRange(def), def.Description)
		}
		return nil
	},
}

func chargeRange(def *registry.LipidClassDef) string {
	if len(def.RecommendedCharges) > 0 {
		parts := make([]string, len(def.RecommendedCharges))
		for i, z := range def.RecommendedCharges {
			parts[i] = fmt.Sprintf("%d", z)
		}
		return strings.Join(parts, ",")
	}
	if def.MinCharge == def.MaxCharge {
		return fmt.Sprintf("%d", def.MinCharge)
	}
	return fmt.Sprintf("%d-%d", def.MinCharge, def.MaxCharge)
}

// adductsCmd lists the adduct catalog
var adductsCmd = &cobra.Command{
	Use:   "adducts",
	Short: "List the available adducts",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-16s %-8s %s\n", "ADDUCT", "CHARGE", "MASS DELTA")
		for _, ad := range adduct.All() {
			fmt.Printf("%-16s %+-8d %.6f\n", ad.Name, ad.Charge, ad.MassDelta)
		}
	},
}
