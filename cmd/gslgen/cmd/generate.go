// Package cmd - generate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"gslgen/adapters/skyline"
	"gslgen/core/engine"
	"gslgen/core/label"
	"gslgen/core/registry"
	"gslgen/internal/config"
	"gslgen/internal/logging"
)

var (
	lipidClass    string
	outputPath    string
	chargeStates  []int
	autoCharges   bool
	adductKeys    []string
	addLabels     bool
	gslIsotope    string
	cerIsotope    string
	doxcerIsotope string
	labelKeywords string
	blankMz       bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a transition list for one lipid class",
	Long: `Enumerate species from the configured chain lists and write the
transition list as CSV.

Examples:
  gslgen generate --lipid-class GM3
  gslgen generate --lipid-class GM1 --charge-states 1 2 --adducts '[M+H]+' '[M+Na]+'
  gslgen generate --lipid-class GT1b --auto-charges --add-labels -o gt1b.csv`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&lipidClass, "lipid-class", "", "lipid class to generate (see 'gslgen classes')")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV file (default <class>_transitions.csv)")
	generateCmd.Flags().IntSliceVar(&chargeStates, "charge-states", nil, "charge states to include (1-5)")
	generateCmd.Flags().BoolVar(&autoCharges, "auto-charges", false, "use the recommended charge states for the class")
	generateCmd.Flags().StringSliceVar(&adductKeys, "adducts", nil, "specific adducts to generate (default protonated pair)")
	generateCmd.Flags().BoolVar(&addLabels, "add-labels", false, "add isotope labels (light/heavy rows)")
	generateCmd.Flags().StringVar(&gslIsotope, "isotope", label.DefaultToken, "isotope token for GSLs")
	generateCmd.Flags().StringVar(&cerIsotope, "cer-isotope", label.DefaultToken, "isotope token for Cer")
	generateCmd.Flags().StringVar(&doxcerIsotope, "doxcer-isotope", label.DefaultDoxCerToken, "isotope token for doxCer")
	generateCmd.Flags().StringVar(&labelKeywords, "lcb", label.DefaultKeywords, "label keywords (comma separated)")
	generateCmd.Flags().BoolVar(&blankMz, "blank-mz", false, "blank all m/z values in light and heavy rows")

	_ = generateCmd.MarkFlagRequired("lipid-class")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	lcbs, err := cfg.Chains.ResolveLCBs(lipidClass)
	if err != nil {
		return err
	}
	fas, err := cfg.Chains.ResolveFAs()
	if err != nil {
		return err
	}

	req := engine.Request{
		Class:       lipidClass,
		Charges:     chargeStates,
		AutoCharges: autoCharges,
		Adducts:     adductKeys,
		LCBs:        lcbs,
		FAs:         fas,
	}
	if len(req.Charges) == 0 && !autoCharges {
		req.Charges = cfg.Generation.ChargeStates
	}

	if addLabels {
		scheme, err := label.NewScheme(gslIsotope, cerIsotope, doxcerIsotope, labelKeywords)
		if err != nil {
			return err
		}
		req.Labels = &scheme
	}

	plan, err := engine.Prepare(reg, req)
	if err != nil {
		return err
	}

	class := plan.Class()
	fmt.Printf("Generating transitions for %s\n", class.Name)
	if class.Description != "" {
		fmt.Printf("Structure: %s\n", class.Description)
	}
	if class.MWRange != "" {
		fmt.Printf("MW range: %s Da\n", class.MWRange)
	}
	fmt.Printf("Species: %d\n", plan.SpeciesCount())
	var names []string
	for _, ad := range plan.Adducts() {
		names = append(names, ad.Name)
	}
	fmt.Printf("Adducts: %s\n", strings.Join(names, ", "))

	if outputPath == "" {
		outputPath = strings.ToLower(lipidClass) + "_transitions.csv"
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	writer := skyline.NewWriter(out, skyline.Options{
		IncludeLabels: addLabels,
		BlankMz:       blankMz,
	})

	rows := 0
	for rec, err := range plan.Stream(ctx) {
		if err != nil {
			return err
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
		rows++
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	logging.Info("transition list written")
	fmt.Printf("Generated %d transitions\n", rows)
	fmt.Printf("Saved to: %s\n", outputPath)
	return nil
}

// loadRegistry returns the built-in catalog, extended with any user
// classes from the configured catalog directory.
func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.Default()
	if cfg.CatalogDir == "" {
		return reg, nil
	}

	// User catalogs merge into a fresh registry so the shared default
	// stays pristine across runs.
	merged := registry.NewRegistry()
	for _, name := range reg.Names() {
		def, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		if err := merged.Register(def); err != nil {
			return nil, err
		}
	}
	if err := registry.NewLoader().LoadDir(merged, cfg.CatalogDir); err != nil {
		return nil, err
	}
	return merged, nil
}
