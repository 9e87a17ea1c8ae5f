package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/errs"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

const defaultBorrowDays = 7

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Days == 0 {
		req.Days = defaultBorrowDays
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if _, err := h.librarySvc.BorrowBook(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrBookNotFound) || errors.Is(err, errs.ErrMemberNotFound) || errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrOutOfStock) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, model.SuccessResponse{Success: true})
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.ByID() && !req.ByMemberBook() {
		return echo.NewHTTPError(http.StatusBadRequest, "either borrowing_id or (member_id + book_id) required")
	}

	if _, err := h.librarySvc.ReturnBook(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrBorrowingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrAlreadyReturned) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

func (h *Handler) RecentBorrowings(c echo.Context) error {
	records, err := h.librarySvc.RecentBorrowings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Overdue(c echo.Context) error {
	records, err := h.librarySvc.Overdue(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) CurrentlyBorrowed(c echo.Context) error {
	records, err := h.librarySvc.CurrentlyBorrowed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.librarySvc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
