package repository

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

func (r *repository) Stats(ctx context.Context) (model.Stats, error) {
	var st model.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.GetContext(ctx, &st.TotalBooks,
			`SELECT count(*) FROM books`)
	})
	g.Go(func() error {
		return r.db.GetContext(ctx, &st.TotalMembers,
			`SELECT count(*) FROM members`)
	})
	g.Go(func() error {
		return r.db.GetContext(ctx, &st.CurrentlyBorrowed,
			`SELECT count(*) FROM borrowing WHERE return_date IS NULL`)
	})
	g.Go(func() error {
		return r.db.GetContext(ctx, &st.Overdue,
			`SELECT count(*) FROM borrowing WHERE return_date IS NULL AND due_date < current_date`)
	})

	if err := g.Wait(); err != nil {
		return model.Stats{}, err
	}
	return st, nil
}
