package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available project features",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.New()

		var pairs []kvPair
		for _, d := range cat.Features() {
			pairs = append(pairs, kvPair{d.Key, d.DisplayName})
		}
		_, _ = fmt.Fprintln(out, renderCard("Available project features", renderKeyValueLines(pairs)))

		pairs = pairs[:0]
		for _, d := range cat.Wireless() {
			pairs = append(pairs, kvPair{d.Key, d.DisplayName})
		}
		_, _ = fmt.Fprintln(out, renderCard("Pico W wireless options", renderKeyValueLines(pairs)))

		pairs = pairs[:0]
		for _, d := range cat.Examples() {
			pairs = append(pairs, kvPair{d.Key, d.DisplayName})
		}
		_, _ = fmt.Fprintln(out, renderCard("Standard library examples (--examples)", renderKeyValueLines(pairs)))
		return nil
	},
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List available board types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sdkPath, err := config.ResolveSDKPath()
		if err != nil {
			return err
		}
		boards, err := config.LoadBoardTypes(sdkPath)
		if err != nil {
			return fmt.Errorf("enumerate boards: %w", err)
		}
		for _, board := range boards {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), board)
		}
		return nil
	},
}

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "List available advanced configuration items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		items, err := config.LoadConfigItems(tsvPath(cmd))
		if err != nil {
			return err
		}
		if len(items) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No configuration file found. Continuing without")
			return nil
		}

		var pairs []kvPair
		for _, item := range items {
			pairs = append(pairs, kvPair{item.Name, item.Description})
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Available project configuration items", renderKeyValueLines(pairs)))
		return nil
	},
}

func init() {
	configsCmd.Flags().StringP("tsv", "t", "", "Alternative pico_configs.tsv file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(configsCmd)
}
