package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/plans"
)

func (a *App) showPlans() {
	rows := make([][]string, 0, len(plans.Tiers()))
	for _, tier := range plans.Tiers() {
		p, _ := plans.ByTier(tier)
		rows = append(rows, []string{
			string(p.Name),
			"$" + strconv.Itoa(p.Price) + "/mo",
			strconv.Itoa(p.ImagesIncluded),
			strconv.Itoa(p.VideoSecondsIncluded),
		})
	}
	fmt.Fprintln(a.out, renderTable(
		[]string{"Plan", "Price", "Images", "Video seconds"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))
}

// SwitchPlan moves the active user to the named tier. Usage counters reset,
// as on a new billing period.
func (a *App) SwitchPlan(ctx context.Context, tier string) error {
	view, err := a.auth.SwitchPlan(ctx, plans.Tier(tier))
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			fmt.Fprintln(a.out, "Unknown plan. Use one of: Free, Starter, Creator, Pro.")
			return nil
		}
		return err
	}
	if view == nil {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}
	fmt.Fprintf(a.out, "You are now on the %s plan. Usage counters reset.\n", view.Plan)
	return nil
}

// ShowUsage prints remaining allowances for the active user.
func (a *App) ShowUsage(ctx context.Context) error {
	rem, err := a.quota.Remaining(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, renderTable(
		[]string{"Plan", "Images left", "Video seconds left"},
		[][]string{{
			string(rem.Plan.Name),
			fmt.Sprintf("%d of %d", rem.Images, rem.Plan.ImagesIncluded),
			fmt.Sprintf("%d of %d", rem.VideoSeconds, rem.Plan.VideoSecondsIncluded),
		}},
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
	return nil
}
