package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/platforms"
)

// ShowGallery lists the active user's saved items, newest first, resolving
// each to a local file path the user can open.
func (a *App) ShowGallery(ctx context.Context) error {
	handles, err := a.gallery.List(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}
	if len(handles) == 0 {
		fmt.Fprintln(a.out, "Gallery is empty. Try 'generate'.")
		return nil
	}

	rows := make([][]string, 0, len(handles))
	for _, h := range handles {
		rows = append(rows, []string{
			strconv.FormatInt(h.Item.ID, 10),
			string(h.Item.Kind),
			h.Item.Prompt,
			h.Item.CreatedAt,
			h.Path,
		})
	}
	fmt.Fprintln(a.out, renderTable(
		[]string{"ID", "Kind", "Prompt", "Created", "File"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

// RemoveItem deletes a gallery item and its stored bytes. Unknown ids are
// reported but not treated as failures.
func (a *App) RemoveItem(ctx context.Context, id int64) error {
	if err := a.gallery.Remove(ctx, id); err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Fprintln(a.out, "Sign in first.")
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Item %d removed.\n", id)
	return nil
}

func (a *App) showPlatforms() {
	names := platforms.Names()
	sort.Strings(names)

	var rows [][]string
	for _, name := range names {
		spec, _ := platforms.Lookup(name)
		for placement, f := range spec.Images {
			rows = append(rows, []string{spec.Name, "image", placement, f.Label,
				fmt.Sprintf("%dx%d", f.Width, f.Height), f.AspectRatio, ""})
		}
		for placement, f := range spec.Videos {
			rows = append(rows, []string{spec.Name, "video", placement, f.Label,
				fmt.Sprintf("%dx%d", f.Width, f.Height), f.AspectRatio,
				strconv.Itoa(f.MaxDurationSeconds) + "s"})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][0] != rows[j][0] {
			return rows[i][0] < rows[j][0]
		}
		if rows[i][1] != rows[j][1] {
			return rows[i][1] < rows[j][1]
		}
		return rows[i][2] < rows[j][2]
	})

	fmt.Fprintln(a.out, renderTable(
		[]string{"Platform", "Kind", "Placement", "Label", "Size", "Ratio", "Max"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))
}
