package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the configured styles and platforms",
	RunE:  runStyles,
}

func init() {
	RootCmd.AddCommand(stylesCmd)
}

func runStyles(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}
	reg, err := loadRegistry(st)
	if err != nil {
		return err
	}

	u := newUI()

	if u.IsJSON() {
		out := struct {
			Styles    []string `json:"styles"`
			Platforms []string `json:"platforms"`
		}{}
		for _, s := range reg.Styles() {
			out.Styles = append(out.Styles, s.ID)
		}
		for _, p := range reg.Platforms() {
			out.Platforms = append(out.Platforms, p.ID)
		}
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	s := u.Styles

	fmt.Fprintln(u.Writer, s.Header.Render("Styles"))
	for _, style := range reg.Styles() {
		fmt.Fprintf(u.Writer, "  %-14s %s\n", style.ID, s.Dim.Render(style.Tone))
	}

	fmt.Fprintln(u.Writer)
	fmt.Fprintln(u.Writer, s.Header.Render("Platforms"))
	for _, p := range reg.Platforms() {
		fmt.Fprintf(u.Writer, "  %-14s %s\n", p.ID,
			s.Dim.Render(fmt.Sprintf("%s · optimal length %d", p.Tone, p.MaxOptimalLength)))
	}

	return nil
}
