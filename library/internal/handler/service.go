package handler

import (
	"context"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
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

var _ LibraryService = (*service.Service)(nil)
