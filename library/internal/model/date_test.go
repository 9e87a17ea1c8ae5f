package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
)

func TestDate_MarshalJSON(t *testing.T) {
	t.Parallel()
	d := model.NewDate(time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2026-08-31"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	var d model.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-31"`), &d))
	require.Equal(t, model.NewDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)), d)

	require.Error(t, json.Unmarshal([]byte(`"31/08/2026"`), &d))
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()
	var d model.Date
	require.NoError(t, d.Scan(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2026-08-31", d.Format(time.DateOnly))

	require.NoError(t, d.Scan("2026-09-01"))
	require.Equal(t, "2026-09-01", d.Format(time.DateOnly))

	require.Error(t, d.Scan(42))
}

func TestBorrowing_ReturnDateNull(t *testing.T) {
	t.Parallel()
	bor := model.Borrowing{
		BorrowingID: 1,
		MemberID:    2,
		BookID:      3,
		BorrowDate:  model.NewDate(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)),
		DueDate:     model.NewDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)),
	}
	data, err := json.Marshal(bor)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"borrowing_id":1,"member_id":2,"book_id":3,"borrow_date":"2026-08-24","due_date":"2026-08-31","return_date":null}`,
		string(data))
}

func TestReturnRequest_Selector(t *testing.T) {
	t.Parallel()
	var req model.ReturnRequest
	require.NoError(t, json.Unmarshal([]byte(`{"borrowing_id":3}`), &req))
	require.True(t, req.ByID())
	require.False(t, req.ByMemberBook())

	req = model.ReturnRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"member_id":1,"book_id":5}`), &req))
	require.False(t, req.ByID())
	require.True(t, req.ByMemberBook())

	req = model.ReturnRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"member_id":1}`), &req))
	require.False(t, req.ByID())
	require.False(t, req.ByMemberBook())
}
