package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/tt-league/internal/app"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func seasonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "Inspect and switch league seasons",
	}

	var visibleOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List seasons, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, services *app.Services) error {
				seasons, err := services.League.ListSeasons(ctx, visibleOnly)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tSLUG\tNAME\tSTART\tEND\tVISIBLE\tCURRENT")
				for _, s := range seasons {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\t%t\n",
						s.ID, s.Slug, s.Name, s.StartDate.Format(dateLayout), s.EndDate.Format(dateLayout), s.IsVisible, s.IsCurrent)
				}
				return tw.Flush()
			})
		},
	}
	list.Flags().BoolVar(&visibleOnly, "visible", false, "only list seasons shown to the public")

	setCurrent := &cobra.Command{
		Use:   "set-current <season-id>",
		Short: "Mark one season as the current season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seasonID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, services *app.Services) error {
				if err := services.League.SetCurrentSeason(ctx, seasonID); err != nil {
					return err
				}
				cmd.Printf("season %d is now current\n", seasonID)
				return nil
			})
		},
	}

	cmd.AddCommand(list, setCurrent)
	return cmd
}

func approvalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Moderate club info, venue info and reviews",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List everything awaiting approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, services *app.Services) error {
				queue, err := services.Moderation.Pending(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "KIND\tTARGET\tSUBMITTED\tSUMMARY")
				for _, info := range queue.ClubInfos {
					fmt.Fprintf(tw, "club-info\t%d\t%s\t%s\n", info.ClubID, info.CreatedOn.Format(dateLayout), info.ContactName)
				}
				for _, info := range queue.VenueInfos {
					fmt.Fprintf(tw, "venue-info\t%d\t%s\t%s\n", info.VenueID, info.CreatedOn.Format(dateLayout), info.Postcode)
				}
				for _, r := range queue.Reviews {
					fmt.Fprintf(tw, "review\t%d\t%s\t%s\n", r.ID, r.CreatedOn.Format(dateLayout), r.Headline)
				}
				return tw.Flush()
			})
		},
	})
	cmd.AddCommand(approveCmd("club-info <club-id>", "Approve the newest club info snapshot",
		func(ctx context.Context, services *app.Services, id int64) error {
			_, err := services.Moderation.ApproveClubInfo(ctx, id)
			return err
		}))
	cmd.AddCommand(approveCmd("venue-info <venue-id>", "Approve the newest venue info snapshot",
		func(ctx context.Context, services *app.Services, id int64) error {
			_, err := services.Moderation.ApproveVenueInfo(ctx, id)
			return err
		}))
	cmd.AddCommand(approveCmd("review <review-id>", "Publish a club review",
		func(ctx context.Context, services *app.Services, id int64) error {
			return services.Moderation.ApproveReview(ctx, id)
		}))
	return cmd
}

func approveCmd(use, short string, approve func(ctx context.Context, services *app.Services, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, services *app.Services) error {
				if err := approve(ctx, services, id); err != nil {
					return err
				}
				cmd.Printf("approved %s %d\n", strings.Fields(use)[0], id)
				return nil
			})
		},
	}
}

func fixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Fixture maintenance",
	}

	var season string
	check := &cobra.Command{
		Use:   "check",
		Short: "Re-validate every stored fixture of a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, services *app.Services) error {
				violations, err := services.Fixture.CheckSeason(ctx, season)
				if err != nil {
					return err
				}
				if len(violations) == 0 {
					cmd.Println("all fixtures valid")
					return nil
				}
				for _, v := range violations {
					for _, field := range v.Errors.Fields() {
						for _, msg := range v.Errors[field] {
							cmd.Printf("fixture %d: %s: %s\n", v.FixtureID, field, msg)
						}
					}
				}
				return fmt.Errorf("%d fixture(s) failed validation", len(violations))
			})
		},
	}
	check.Flags().StringVar(&season, "season", "", "season slug")
	_ = check.MarkFlagRequired("season")

	cmd.AddCommand(check)
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
