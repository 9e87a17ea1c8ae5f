package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/errs"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

type Repository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookID int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID int) error
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBookByID(ctx context.Context, bookID int) (model.Book, error)
	GetBookByTitle(ctx context.Context, title string) (model.Book, error)
	SearchBooks(ctx context.Context, keyword string) ([]model.Book, error)

	CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	UpdateMember(ctx context.Context, memberID int, req model.UpdateMemberRequest) (model.Member, error)
	DeleteMember(ctx context.Context, memberID int) error
	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMemberByID(ctx context.Context, memberID int) (model.Member, error)
	SearchMembers(ctx context.Context, keyword string) ([]model.Member, error)

	BorrowBook(ctx context.Context, req model.BorrowRequest) (model.Borrowing, error)
	ReturnBook(ctx context.Context, req model.ReturnRequest) (model.Borrowing, error)
	RecentBorrowings(ctx context.Context) ([]model.BorrowingRecord, error)
	Overdue(ctx context.Context) ([]model.OverdueRecord, error)
	CurrentlyBorrowed(ctx context.Context) ([]model.CurrentlyBorrowedRecord, error)
	MemberHistory(ctx context.Context, memberID int) ([]model.MemberHistoryRecord, error)
	MemberCurrentlyBorrowed(ctx context.Context, memberID int) ([]model.MemberBorrowedBook, error)

	Stats(ctx context.Context) (model.Stats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	membersTableName   = `members`
	borrowingTableName = `borrowing`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// translatePgErr maps constraint violations onto the domain error set.
func translatePgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrNotFound
		case pgerrcode.CheckViolation:
			return errs.ErrOutOfStock
		}
	}
	return err
}
