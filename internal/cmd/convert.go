package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/paletteedit/internal/color"
)

var convertCmd = &cobra.Command{
	Use:   "convert [hex colors...]",
	Short: "Convert colors between RGB, HSV, and HSL",
	Long:  "Convert prints the HSV or HSL view of hex colors, or both.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("to", "hsv", "Target representation (hsv, hsl, all)")

	if err := viper.BindPFlag("convert.to", convertCmd.Flags().Lookup("to")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	to := viper.GetString("convert.to")
	if to != "hsv" && to != "hsl" && to != "all" {
		return fmt.Errorf("unknown target %q (want hsv, hsl, or all)", to)
	}

	for _, arg := range args {
		c, err := color.ParseHex(arg)
		if err != nil {
			return err
		}
		fmt.Printf("%s", c.Hex())
		if to == "hsv" || to == "all" {
			hsv := color.RGBToHSV(c)
			fmt.Printf("  hsv(%.1f, %.3f, %.3f)", hsv.H, hsv.S, hsv.V)
		}
		if to == "hsl" || to == "all" {
			hsl := color.RGBToHSL(c)
			fmt.Printf("  hsl(%.1f, %.3f, %.3f)", hsl.H, hsl.S, hsl.L)
		}
		fmt.Println()
	}
	return nil
}
