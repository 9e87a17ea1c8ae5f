package model

type Book struct {
	BookID        int    `json:"book_id" db:"book_id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	Pages         int    `json:"pages" db:"pages"`
	YearPublished int    `json:"year_published" db:"year_published"`
	Status        int    `json:"status" db:"status"`
	Category      string `json:"category" db:"category"`
	Quantity      int    `json:"quantity" db:"quantity"`
}

// Book status flag. Advisory only: it is set by clients through
// create/update and is not derived from the borrowing table.
const (
	BookStatusAvailable = 0
	BookStatusBorrowed  = 1
	BookStatusOther     = 2
)

type Member struct {
	MemberID int     `json:"member_id" db:"member_id"`
	Name     string  `json:"name" db:"name"`
	Email    *string `json:"email" db:"email"`
	Status   string  `json:"status" db:"status"`
}

const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusBanned   = "banned"
)

type Borrowing struct {
	BorrowingID int   `json:"borrowing_id" db:"borrowing_id"`
	MemberID    int   `json:"member_id" db:"member_id"`
	BookID      int   `json:"book_id" db:"book_id"`
	BorrowDate  Date  `json:"borrow_date" db:"borrow_date"`
	DueDate     Date  `json:"due_date" db:"due_date"`
	ReturnDate  *Date `json:"return_date" db:"return_date"`
}

// BorrowingRecord is a borrowing row joined with member and book names.
type BorrowingRecord struct {
	BorrowingID int    `json:"borrowing_id" db:"borrowing_id"`
	MemberName  string `json:"member_name" db:"member_name"`
	BookTitle   string `json:"book_title" db:"book_title"`
	BorrowDate  Date   `json:"borrow_date" db:"borrow_date"`
	DueDate     Date   `json:"due_date" db:"due_date"`
	ReturnDate  *Date  `json:"return_date" db:"return_date"`
}

type OverdueRecord struct {
	MemberID    int    `json:"member_id" db:"member_id"`
	MemberName  string `json:"member_name" db:"member_name"`
	BookID      int    `json:"book_id" db:"book_id"`
	Title       string `json:"title" db:"title"`
	BorrowDate  Date   `json:"borrow_date" db:"borrow_date"`
	DueDate     Date   `json:"due_date" db:"due_date"`
	DaysOverdue int    `json:"days_overdue" db:"days_overdue"`
}

type CurrentlyBorrowedRecord struct {
	MemberName string `json:"member_name" db:"member_name"`
	Title      string `json:"title" db:"title"`
	BorrowDate Date   `json:"borrow_date" db:"borrow_date"`
	DueDate    Date   `json:"due_date" db:"due_date"`
}

type MemberHistoryRecord struct {
	BookID     int    `json:"book_id" db:"book_id"`
	Title      string `json:"title" db:"title"`
	Author     string `json:"author" db:"author"`
	BorrowDate Date   `json:"borrow_date" db:"borrow_date"`
	DueDate    Date   `json:"due_date" db:"due_date"`
	ReturnDate *Date  `json:"return_date" db:"return_date"`
}

type MemberBorrowedBook struct {
	BookID int    `json:"book_id" db:"book_id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
}

type Stats struct {
	TotalBooks        int `json:"total_books" db:"total_books"`
	TotalMembers      int `json:"total_members" db:"total_members"`
	CurrentlyBorrowed int `json:"currently_borrowed" db:"currently_borrowed"`
	Overdue           int `json:"overdue" db:"overdue"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Pages         int    `json:"pages" validate:"required,gt=0"`
	YearPublished int    `json:"year_published" validate:"required,gt=0"`
	Category      string `json:"category" validate:"required"`
	Quantity      int    `json:"quantity" validate:"gte=0"`
	Status        int    `json:"status" validate:"gte=0,lte=2"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Pages         *int    `json:"pages" validate:"omitempty,gt=0"`
	YearPublished *int    `json:"year_published" validate:"omitempty,gt=0"`
	Status        *int    `json:"status" validate:"omitempty,gte=0,lte=2"`
	Category      *string `json:"category"`
	Quantity      *int    `json:"quantity" validate:"omitempty,gte=0"`
}

type CreateMemberRequest struct {
	Name   string  `json:"name" validate:"required"`
	Email  *string `json:"email"`
	Status string  `json:"status" validate:"omitempty,oneof=active inactive banned"`
}

type UpdateMemberRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive banned"`
}

type BorrowRequest struct {
	MemberID int `json:"member_id" validate:"required,gt=0"`
	BookID   int `json:"book_id" validate:"required,gt=0"`
	Days     int `json:"days" validate:"omitempty,gt=0"`
}

// ReturnRequest resolves a borrowing either directly by id or as the
// most recent open borrowing of the (member_id, book_id) pair.
type ReturnRequest struct {
	BorrowingID *int `json:"borrowing_id"`
	MemberID    *int `json:"member_id"`
	BookID      *int `json:"book_id"`
}

func (r ReturnRequest) ByID() bool {
	return r.BorrowingID != nil
}

func (r ReturnRequest) ByMemberBook() bool {
	return r.MemberID != nil && r.BookID != nil
}
