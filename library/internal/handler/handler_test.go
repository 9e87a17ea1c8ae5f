package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/errs"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"

	service_mocks "github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/handler/mocks"
)

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"T","author":"A","pages":100,"year_published":2020,"category":"C","quantity":1}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(gomock.Any(), model.CreateBookRequest{
						Title:         "T",
						Author:        "A",
						Pages:         100,
						YearPublished: 2020,
						Category:      "C",
						Quantity:      1,
					}).
					Return(model.Book{
						BookID:        1,
						Title:         "T",
						Author:        "A",
						Pages:         100,
						YearPublished: 2020,
						Category:      "C",
						Quantity:      1,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"book_id":1,"title":"T","author":"A","pages":100,"year_published":2020,"status":0,"category":"C","quantity":1}`,
			},
		},
		{
			name:         "err. missing title",
			body:         `{"author":"A","pages":100,"year_published":2020,"category":"C"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. zero pages",
			body:         `{"title":"T","author":"A","pages":0,"year_published":2020,"category":"C"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. negative quantity",
			body:         `{"title":"T","author":"A","pages":100,"year_published":2020,"category":"C","quantity":-1}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "10",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteBook(gomock.Any(), 10).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true}`,
			},
		},
		{
			name:         "err. invalid id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"invalid id"}`,
			},
		},
		{
			name: "err. not found",
			id:   "99",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteBook(gomock.Any(), 99).
					Return(errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"book not found"}`,
			},
		},
		{
			name: "err. borrowed",
			id:   "10",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteBook(gomock.Any(), 10).
					Return(errs.ErrBookBorrowed)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"error":"book is currently borrowed"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodDelete, "/api/books/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteMember(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "2",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteMember(gomock.Any(), 2).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true}`,
			},
		},
		{
			name: "err. has active borrowings",
			id:   "2",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteMember(gomock.Any(), 2).
					Return(errs.ErrOpenBorrowings)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"error":"member has active borrowings"}`,
			},
		},
		{
			name: "err. not found",
			id:   "99",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteMember(gomock.Any(), 99).
					Return(errs.ErrMemberNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"member not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodDelete, "/api/members/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchBookByID(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "5",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetBookByID(gomock.Any(), 5).
					Return(model.Book{
						BookID:        5,
						Title:         "T",
						Author:        "A",
						Pages:         100,
						YearPublished: 2020,
						Category:      "C",
						Quantity:      1,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book_id":5,"title":"T","author":"A","pages":100,"year_published":2020,"status":0,"category":"C","quantity":1}`,
			},
		},
		{
			name: "ok. not found is null",
			id:   "99",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					GetBookByID(gomock.Any(), 99).
					Return(model.Book{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `null`,
			},
		},
		{
			name:         "err. invalid id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"invalid id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodGet, "/api/books/search/id/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchBookByTitle(t *testing.T) {
	t.Parallel()
	svc, e := newTestRouter(t)

	t.Run("err. missing title param", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/books/search/title", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, `{"error":"missing title parameter"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().
			GetBookByTitle(gomock.Any(), "T").
			Return(model.Book{BookID: 5, Title: "T", Author: "A", Pages: 100, YearPublished: 2020, Category: "C", Quantity: 1}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/books/search/title?title=T", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"book_id":5,"title":"T","author":"A","pages":100,"year_published":2020,"status":0,"category":"C","quantity":1}`,
			strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListBooks(gomock.Any()).
					Return([]model.Book{
						{BookID: 1, Title: "Truyện Kiều", Author: "Nguyễn Du", Pages: 254, YearPublished: 1820, Category: "Thơ", Quantity: 3},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"book_id":1,"title":"Truyện Kiều","author":"Nguyễn Du","pages":254,"year_published":1820,"status":0,"category":"Thơ","quantity":3}]`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListBooks(gomock.Any()).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodGet, "/api/books", http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateMember(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. status defaults to active",
			body: `{"name":"Binh"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateMember(gomock.Any(), model.CreateMemberRequest{Name: "Binh", Status: "active"}).
					Return(model.Member{MemberID: 2, Name: "Binh", Status: "active"}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"member_id":2,"name":"Binh","email":null,"status":"active"}`,
			},
		},
		{
			name:         "err. missing name",
			body:         `{"email":"b@example.com"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. bad status",
			body:         `{"name":"Binh","status":"vip"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	quantity := 4
	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "5",
			body: `{"quantity":4}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), 5, model.UpdateBookRequest{Quantity: &quantity}).
					Return(model.Book{BookID: 5, Title: "T", Author: "A", Pages: 100, YearPublished: 2020, Category: "C", Quantity: 4}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"book_id":5,"title":"T","author":"A","pages":100,"year_published":2020,"status":0,"category":"C","quantity":4}`,
			},
		},
		{
			name: "err. empty update",
			id:   "5",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), 5, model.UpdateBookRequest{}).
					Return(model.Book{}, errs.ErrEmptyUpdate)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"no fields to update"}`,
			},
		},
		{
			name: "err. not found",
			id:   "99",
			body: `{"quantity":4}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), 99, model.UpdateBookRequest{Quantity: &quantity}).
					Return(model.Book{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"book not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPut, "/api/books/"+tt.id, strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
