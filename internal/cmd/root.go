package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "paletteedit",
	Short: "An indexed-palette color editing engine",
	Long: `PaletteEdit edits entries of fixed-size indexed color palettes through
RGB, HSV, or HSL channels, in absolute or relative mode, with undo-batched
commits against a document palette.

It can run edit scripts against palettes, convert colors between spaces,
render swatch-sheet previews, and generate procedural starter palettes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Duration("coalesce-window", 0, "Coalescing tick interval for undo batching (default 250ms)")
	rootCmd.PersistentFlags().String("delta-reset-scope", "global", "Relative-delta reset on colorspace switch (global, colorspace)")
	rootCmd.PersistentFlags().String("journal", "", "SQLite edit journal path (empty = disabled)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	if err := viper.BindPFlag("coalesce-window", rootCmd.PersistentFlags().Lookup("coalesce-window")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("delta-reset-scope", rootCmd.PersistentFlags().Lookup("delta-reset-scope")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("journal", rootCmd.PersistentFlags().Lookup("journal")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PALETTEEDIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
