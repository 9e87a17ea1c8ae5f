package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/luunhuttan/QLTV-LNT-lab2.2/pkg/middleware"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySrv LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySrv,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.HTTPErrorHandler = h.errorHandler
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.GET("/books/search/id/:id", h.SearchBookByID)
	api.GET("/books/search/title", h.SearchBookByTitle)
	api.GET("/books/search/keyword", h.SearchBooks)

	api.GET("/members", h.ListMembers)
	api.POST("/members", h.CreateMember)
	api.GET("/members/:id", h.GetMember)
	api.PUT("/members/:id", h.UpdateMember)
	api.DELETE("/members/:id", h.DeleteMember)
	api.GET("/members/search/id/:id", h.SearchMemberByID)
	api.GET("/members/search/name", h.SearchMembers)
	api.GET("/members/:id/history", h.MemberHistory)
	api.GET("/members/:id/currently-borrowed", h.MemberCurrentlyBorrowed)

	api.POST("/borrow", h.Borrow)
	api.POST("/return", h.Return)

	api.GET("/borrowing", h.RecentBorrowings)
	api.GET("/stats", h.Stats)
	api.GET("/overdue", h.Overdue)
	api.GET("/currently-borrowed", h.CurrentlyBorrowed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// errorHandler renders every error as {"error": "<message>"}.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}
	if err := c.JSON(code, map[string]string{"error": msg}); err != nil {
		h.log.Error("error response", zap.Error(err))
	}
}
