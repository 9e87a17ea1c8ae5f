package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/errs"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "pages", "year_published", "status", "category", "quantity").
		Values(req.Title, req.Author, req.Pages, req.YearPublished, req.Status, req.Category, req.Quantity).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, translatePgErr(err)
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookID int, req model.UpdateBookRequest) (model.Book, error) {
	set := map[string]any{}
	if req.Title != nil && *req.Title != "" {
		set["title"] = *req.Title
	}
	if req.Author != nil && *req.Author != "" {
		set["author"] = *req.Author
	}
	if req.Pages != nil {
		set["pages"] = *req.Pages
	}
	if req.YearPublished != nil {
		set["year_published"] = *req.YearPublished
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Category != nil && *req.Category != "" {
		set["category"] = *req.Category
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
	}
	if len(set) == 0 {
		return model.Book{}, errs.ErrEmptyUpdate
	}

	query, args, err := qb.Update(booksTableName).
		SetMap(set).
		Where(sq.Eq{"book_id": bookID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, translatePgErr(err)
	}
	return book, nil
}

// DeleteBook rejects deletion while the advisory status flag says
// the book is borrowed. The flag is client-maintained and may lag
// behind the borrowing table.
func (r *repository) DeleteBook(ctx context.Context, bookID int) error {
	var status int
	q := `SELECT status FROM books WHERE book_id = $1`
	if err := r.db.GetContext(ctx, &status, q, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrBookNotFound
		}
		return err
	}
	if status == model.BookStatusBorrowed {
		return errs.ErrBookBorrowed
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE book_id = $1`, bookID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("*").
		From(booksTableName).
		OrderBy("book_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBookByID(ctx context.Context, bookID int) (model.Book, error) {
	query, args, err := qb.Select("*").
		From(booksTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByTitle(ctx context.Context, title string) (model.Book, error) {
	query, args, err := qb.Select("*").
		From(booksTableName).
		Where(sq.Eq{"title": title}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) SearchBooks(ctx context.Context, keyword string) ([]model.Book, error) {
	query, args, err := qb.Select("*").
		From(booksTableName).
		Where(sq.Like{"title": "%" + keyword + "%"}).
		OrderBy("book_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}
