package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
	libraryRepo "github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/repository"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/pkg/kafka"
)

type Service struct {
	log    *zap.Logger
	repo   libraryRepo.Repository
	events EventPublisher
}

func NewService(repo libraryRepo.Repository, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, bookID int, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, bookID, req)
}

func (s *Service) DeleteBook(ctx context.Context, bookID int) error {
	return s.repo.DeleteBook(ctx, bookID)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBookByID(ctx context.Context, bookID int) (model.Book, error) {
	return s.repo.GetBookByID(ctx, bookID)
}

func (s *Service) GetBookByTitle(ctx context.Context, title string) (model.Book, error) {
	return s.repo.GetBookByTitle(ctx, title)
}

func (s *Service) SearchBooks(ctx context.Context, keyword string) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, keyword)
}

func (s *Service) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	return s.repo.CreateMember(ctx, req)
}

func (s *Service) UpdateMember(ctx context.Context, memberID int, req model.UpdateMemberRequest) (model.Member, error) {
	return s.repo.UpdateMember(ctx, memberID, req)
}

func (s *Service) DeleteMember(ctx context.Context, memberID int) error {
	return s.repo.DeleteMember(ctx, memberID)
}

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMemberByID(ctx context.Context, memberID int) (model.Member, error) {
	return s.repo.GetMemberByID(ctx, memberID)
}

func (s *Service) SearchMembers(ctx context.Context, keyword string) ([]model.Member, error) {
	return s.repo.SearchMembers(ctx, keyword)
}

func (s *Service) BorrowBook(ctx context.Context, req model.BorrowRequest) (model.Borrowing, error) {
	bor, err := s.repo.BorrowBook(ctx, req)
	if err != nil {
		return model.Borrowing{}, err
	}
	s.publish(kafka.EventBorrowed, bor)
	return bor, nil
}

func (s *Service) ReturnBook(ctx context.Context, req model.ReturnRequest) (model.Borrowing, error) {
	bor, err := s.repo.ReturnBook(ctx, req)
	if err != nil {
		return model.Borrowing{}, err
	}
	s.publish(kafka.EventReturned, bor)
	return bor, nil
}

func (s *Service) RecentBorrowings(ctx context.Context) ([]model.BorrowingRecord, error) {
	return s.repo.RecentBorrowings(ctx)
}

func (s *Service) Overdue(ctx context.Context) ([]model.OverdueRecord, error) {
	return s.repo.Overdue(ctx)
}

func (s *Service) CurrentlyBorrowed(ctx context.Context) ([]model.CurrentlyBorrowedRecord, error) {
	return s.repo.CurrentlyBorrowed(ctx)
}

func (s *Service) MemberHistory(ctx context.Context, memberID int) ([]model.MemberHistoryRecord, error) {
	return s.repo.MemberHistory(ctx, memberID)
}

func (s *Service) MemberCurrentlyBorrowed(ctx context.Context, memberID int) ([]model.MemberBorrowedBook, error) {
	return s.repo.MemberCurrentlyBorrowed(ctx, memberID)
}

func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	return s.repo.Stats(ctx)
}
