package main

import (
	"fmt"
	"strings"

	"dining-companion/internal/catalog"
	"dining-companion/internal/model"

	"github.com/spf13/cobra"
)

func (c *cli) locationsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List dining locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := c.locations(cmd)
			if err != nil {
				return err
			}

			matched := catalog.Search(locations, search)
			if len(matched) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No locations found.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, loc := range matched {
				fmt.Fprintf(out, "%-3s %-16s %-7s %-20s closes %s\n",
					loc.ID, loc.Name, loc.Status(), loc.CrowdSummary(), loc.ClosingTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match location or menu item names")
	return cmd
}

func (c *cli) menuCmd() *cobra.Command {
	var diet string

	cmd := &cobra.Command{
		Use:   "menu <location-id>",
		Short: "Show a location's menu grouped by station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := model.ParseDietaryTag(diet)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return errOutcome
			}

			locations, err := c.locations(cmd)
			if err != nil {
				return err
			}

			loc, ok := catalog.Find(locations, args[0])
			if !ok {
				cmd.PrintErrln("Error:", model.ErrLocationNotFound)
				return errOutcome
			}

			menu := catalog.BuildMenu(*loc, tag)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s (%s, %s)\n", loc.Name, loc.Status(), loc.CrowdSummary())
			if len(menu.Sections) == 0 {
				fmt.Fprintln(out, "No items match this filter.")
				return nil
			}

			for _, section := range menu.Sections {
				fmt.Fprintf(out, "\n%s\n", section.Title)
				for _, item := range section.Items {
					fmt.Fprintf(out, "  %-24s $%6.2f %5d cal%s%s\n",
						item.Name, item.Price, item.Calories, formatTags(item.DietaryTags), popular(item))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&diet, "diet", "", "filter by dietary tag (Vegan, Vegetarian, Gluten-Free, Halal)")
	return cmd
}

func (c *cli) recommendationsCmd() *cobra.Command {
	var user string
	var limit int

	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "Fetch personalised recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(user) == "" {
				cmd.PrintErrln("Error:", model.ErrUserRequired)
				return errOutcome
			}

			client, err := c.client(cmd)
			if err != nil {
				return err
			}

			cmd.PrintErrln("Loading recommendations...")
			result := client.Recommendations(commandContext(cmd), user, limit)
			if !result.OK() {
				return report(cmd, result)
			}
			if result.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No recommendations yet. Keep logging meals to get personalised picks.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, rec := range result.Items {
				fmt.Fprintf(out, "%-24s %5.1f%% match  %-6s %-12s %s\n",
					rec.Name, rec.MatchPercentage, rec.Confidence, rec.Category, strings.Join(rec.Tags, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", c.cfg.Session.DefaultUserID, "user identifier")
	cmd.Flags().IntVarP(&limit, "limit", "n", c.cfg.Analytics.DefaultLimit, "maximum number of recommendations")
	return cmd
}

func (c *cli) dislikesCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "dislikes",
		Short: "Fetch the foods a user tends to leave uneaten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(user) == "" {
				cmd.PrintErrln("Error:", model.ErrUserRequired)
				return errOutcome
			}

			client, err := c.client(cmd)
			if err != nil {
				return err
			}

			cmd.PrintErrln("Loading dislikes...")
			result := client.Dislikes(commandContext(cmd), user)
			if !result.OK() {
				return report(cmd, result)
			}
			if result.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No dislikes found.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, d := range result.Items {
				fmt.Fprintf(out, "%-24s %3dx  %-12s last seen %s\n", d.Name, d.Frequency, d.Category, d.LastSeen)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", c.cfg.Session.DefaultUserID, "user identifier")
	return cmd
}

func formatTags(tags []model.DietaryTag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return "  [" + strings.Join(names, ", ") + "]"
}

func popular(item model.MenuItem) string {
	if item.IsPopular {
		return "  *popular*"
	}
	return ""
}
