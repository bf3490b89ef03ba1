package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/paletteedit/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a procedural starter palette",
	Long: `Generate produces a palette whose entries follow smooth noise walks
through hue, saturation, and value, and prints it as hex colors.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("entries", "n", 16, "Number of palette entries")
	generateCmd.Flags().Int64("seed", 1337, "Deterministic seed")
	generateCmd.Flags().Float64("base-hue", 0, "Hue in degrees the walk is centered on")
	generateCmd.Flags().Float64("hue-spread", 120, "How far in degrees the walk may wander")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.entries", "entries"},
		{"generate.seed", "seed"},
		{"generate.base_hue", "base-hue"},
		{"generate.hue_spread", "hue-spread"},
	}
	for _, b := range bindFlags {
		if err := viper.BindPFlag(b.key, generateCmd.Flags().Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := generate.Palette(generate.Config{
		Entries:   viper.GetInt("generate.entries"),
		Seed:      viper.GetInt64("generate.seed"),
		BaseHue:   viper.GetFloat64("generate.base_hue"),
		HueSpread: viper.GetFloat64("generate.hue_spread"),
	})
	if err != nil {
		return err
	}
	fmt.Println(p.HexList())
	return nil
}
