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

func (r *repository) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	query, args, err := qb.Insert(membersTableName).
		Columns("name", "email", "status").
		Values(req.Name, req.Email, req.Status).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		r.log.Error("CreateMember", zap.String("q", query), zap.Any("args", args))
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) UpdateMember(ctx context.Context, memberID int, req model.UpdateMemberRequest) (model.Member, error) {
	set := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		set["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		set["email"] = *req.Email
	}
	if req.Status != nil && *req.Status != "" {
		set["status"] = *req.Status
	}
	if len(set) == 0 {
		return model.Member{}, errs.ErrEmptyUpdate
	}

	query, args, err := qb.Update(membersTableName).
		SetMap(set).
		Where(sq.Eq{"member_id": memberID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

// DeleteMember refuses to delete a member with an open borrowing.
func (r *repository) DeleteMember(ctx context.Context, memberID int) error {
	var cnt int
	q := `SELECT count(*) FROM borrowing WHERE member_id = $1 AND return_date IS NULL`
	if err := r.db.GetContext(ctx, &cnt, q, memberID); err != nil {
		return err
	}
	if cnt > 0 {
		return errs.ErrOpenBorrowings
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE member_id = $1`, memberID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrMemberNotFound
	}
	return nil
}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	query, args, err := qb.Select("*").
		From(membersTableName).
		OrderBy("member_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0)
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) GetMemberByID(ctx context.Context, memberID int) (model.Member, error) {
	query, args, err := qb.Select("*").
		From(membersTableName).
		Where(sq.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) SearchMembers(ctx context.Context, keyword string) ([]model.Member, error) {
	query, args, err := qb.Select("*").
		From(membersTableName).
		Where(sq.Like{"name": "%" + keyword + "%"}).
		OrderBy("member_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0)
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}
