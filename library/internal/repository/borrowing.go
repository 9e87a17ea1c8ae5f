package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/errs"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

// BorrowBook decrements the book's stock and opens a borrowing row
// in one transaction. The quantity row is locked with FOR UPDATE so
// two concurrent borrows of the last copy serialize and the loser
// sees quantity 0.
func (r *repository) BorrowBook(ctx context.Context, req model.BorrowRequest) (model.Borrowing, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Borrowing{}, errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	var quantity int
	err = tx.GetContext(ctx, &quantity,
		`SELECT quantity FROM books WHERE book_id = $1 FOR UPDATE`, req.BookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrowing{}, errs.ErrBookNotFound
		}
		return model.Borrowing{}, err
	}
	if quantity <= 0 {
		return model.Borrowing{}, errs.ErrOutOfStock
	}

	var memberID int
	err = tx.GetContext(ctx, &memberID,
		`SELECT member_id FROM members WHERE member_id = $1`, req.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrowing{}, errs.ErrMemberNotFound
		}
		return model.Borrowing{}, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE books SET quantity = quantity - 1 WHERE book_id = $1`, req.BookID); err != nil {
		return model.Borrowing{}, translatePgErr(err)
	}

	var bor model.Borrowing
	err = tx.GetContext(ctx, &bor, `
INSERT INTO borrowing (member_id, book_id, borrow_date, due_date, return_date)
VALUES ($1, $2, current_date, current_date + $3::int, NULL)
RETURNING *`, req.MemberID, req.BookID, req.Days)
	if err != nil {
		r.log.Error("BorrowBook insert", zap.Error(err), zap.Int("book_id", req.BookID))
		return model.Borrowing{}, translatePgErr(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Borrowing{}, errors.Wrap(err, "commit")
	}
	return bor, nil
}

// ReturnBook closes a borrowing and restores the book's stock in one
// transaction. The borrowing row is locked with FOR UPDATE so a
// concurrent double-return fails on the return_date check. Nothing
// bounds the quantity increment against the book's total copy count.
func (r *repository) ReturnBook(ctx context.Context, req model.ReturnRequest) (model.Borrowing, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Borrowing{}, errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	var bor model.Borrowing
	switch {
	case req.ByID():
		err = tx.GetContext(ctx, &bor, `
SELECT borrowing_id, member_id, book_id, borrow_date, due_date, return_date
FROM borrowing WHERE borrowing_id = $1 FOR UPDATE`, *req.BorrowingID)
	case req.ByMemberBook():
		err = tx.GetContext(ctx, &bor, `
SELECT borrowing_id, member_id, book_id, borrow_date, due_date, return_date
FROM borrowing
WHERE member_id = $1 AND book_id = $2 AND return_date IS NULL
ORDER BY borrow_date DESC, borrowing_id DESC
LIMIT 1 FOR UPDATE`, *req.MemberID, *req.BookID)
	default:
		return model.Borrowing{}, errs.ErrBorrowingNotFound
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Borrowing{}, errs.ErrBorrowingNotFound
		}
		return model.Borrowing{}, err
	}
	if bor.ReturnDate != nil {
		return model.Borrowing{}, errs.ErrAlreadyReturned
	}

	err = tx.GetContext(ctx, &bor, `
UPDATE borrowing SET return_date = current_date
WHERE borrowing_id = $1
RETURNING *`, bor.BorrowingID)
	if err != nil {
		return model.Borrowing{}, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE books SET quantity = quantity + 1 WHERE book_id = $1`, bor.BookID); err != nil {
		return model.Borrowing{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Borrowing{}, errors.Wrap(err, "commit")
	}
	return bor, nil
}

func (r *repository) RecentBorrowings(ctx context.Context) ([]model.BorrowingRecord, error) {
	q := `
SELECT b.borrowing_id, m.name AS member_name, bk.title AS book_title,
       b.borrow_date, b.due_date, b.return_date
FROM borrowing b
JOIN members m ON m.member_id = b.member_id
JOIN books bk ON bk.book_id = b.book_id
ORDER BY b.borrow_date DESC, b.borrowing_id DESC`

	records := make([]model.BorrowingRecord, 0)
	if err := r.db.SelectContext(ctx, &records, q); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Overdue(ctx context.Context) ([]model.OverdueRecord, error) {
	q := `
SELECT m.member_id, m.name AS member_name, b.book_id, b.title,
       bo.borrow_date, bo.due_date,
       (current_date - bo.due_date) AS days_overdue
FROM borrowing bo
JOIN books b ON b.book_id = bo.book_id
JOIN members m ON m.member_id = bo.member_id
WHERE bo.return_date IS NULL AND bo.due_date < current_date
ORDER BY days_overdue DESC`

	records := make([]model.OverdueRecord, 0)
	if err := r.db.SelectContext(ctx, &records, q); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) CurrentlyBorrowed(ctx context.Context) ([]model.CurrentlyBorrowedRecord, error) {
	q := `
SELECT m.name AS member_name, b.title, bo.borrow_date, bo.due_date
FROM borrowing bo
JOIN books b ON b.book_id = bo.book_id
JOIN members m ON m.member_id = bo.member_id
WHERE bo.return_date IS NULL
ORDER BY bo.due_date ASC`

	records := make([]model.CurrentlyBorrowedRecord, 0)
	if err := r.db.SelectContext(ctx, &records, q); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) MemberHistory(ctx context.Context, memberID int) ([]model.MemberHistoryRecord, error) {
	q := `
SELECT b.book_id, b.title, b.author, bo.borrow_date, bo.due_date, bo.return_date
FROM borrowing bo
JOIN books b ON b.book_id = bo.book_id
WHERE bo.member_id = $1
ORDER BY bo.borrow_date DESC`

	records := make([]model.MemberHistoryRecord, 0)
	if err := r.db.SelectContext(ctx, &records, q, memberID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) MemberCurrentlyBorrowed(ctx context.Context, memberID int) ([]model.MemberBorrowedBook, error) {
	q := `
SELECT b.book_id, b.title, b.author
FROM borrowing bo
JOIN books b ON b.book_id = bo.book_id
WHERE bo.member_id = $1 AND bo.return_date IS NULL`

	records := make([]model.MemberBorrowedBook, 0)
	if err := r.db.SelectContext(ctx, &records, q, memberID); err != nil {
		return nil, err
	}
	return records, nil
}
