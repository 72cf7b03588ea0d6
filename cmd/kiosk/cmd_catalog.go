package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"voicekiosk/internal/dialog"
)

var catalogTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// catalogCmd prints the validated catalog the way the matcher will see it,
// including entries dropped by validation.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the loaded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadCatalog()
		if err != nil {
			return err
		}

		for _, cat := range snap.Categories {
			fmt.Println(catalogTitleStyle.Render(cat.DisplayName(cfg.Language)))
			for _, p := range snap.Products {
				if p.CategoryID != cat.ID {
					continue
				}
				kind := "single"
				if p.IsSet() {
					kind = "set"
				}
				fmt.Printf("  %-3d %-20s %8s  %s\n", p.ID, p.DisplayName(cfg.Language), dialog.FormatPrice(p.Price), kind)
				for _, g := range p.OptionGroups {
					fmt.Printf("      %s (choose %d)\n", g.Name, g.MaxSelection)
					for _, opt := range g.Options {
						mark := " "
						if opt.IsDefault {
							mark = "*"
						}
						fmt.Printf("        %s %-3d %-18s +%s\n", mark, opt.ID, opt.Name, dialog.FormatPrice(opt.Price))
					}
				}
			}
		}
		if snap.Dropped > 0 {
			fmt.Printf("\n%d malformed entries dropped by validation\n", snap.Dropped)
		}
		return nil
	},
}
