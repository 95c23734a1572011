package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
	qb "github.com/riskibarqy/tt-league/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) ListClubs(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("*").From("clubs").OrderBy("LOWER(name)", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.Club{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *ClubRepository) GetClub(ctx context.Context, clubID int64) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").Where(qb.Eq("id", clubID)).ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club: %w", err)
	}
	return club.Club{ID: row.ID, Name: row.Name}, true, nil
}

func (r *ClubRepository) CreateClub(ctx context.Context, c club.Club) (club.Club, error) {
	query, args, err := qb.InsertModel("clubs", clubTableModel{Name: c.Name}, "RETURNING id")
	if err != nil {
		return club.Club{}, fmt.Errorf("build insert club query: %w", err)
	}
	if err := r.db.GetContext(ctx, &c.ID, query, args...); err != nil {
		return club.Club{}, fmt.Errorf("insert club: %w", dberr.Classify(err))
	}
	return c, nil
}

func (r *ClubRepository) ListInfos(ctx context.Context, clubID int64) ([]club.Info, error) {
	return selectClubInfos(ctx, r.db, qb.Eq("club_id", clubID))
}

func (r *ClubRepository) ListAllInfos(ctx context.Context) ([]club.Info, error) {
	return selectClubInfos(ctx, r.db, qb.Expr("TRUE"))
}

func selectClubInfos(ctx context.Context, q sqlx.QueryerContext, cond qb.Condition) ([]club.Info, error) {
	query, args, err := qb.Select("*").From("club_infos").
		Where(cond).
		OrderBy("created_on DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club infos query: %w", err)
	}

	var rows []clubInfoTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club infos: %w", err)
	}

	out := make([]club.Info, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// AppendInfo inserts the snapshot and prunes the ladder under a lock on the
// club row so concurrent edits serialise.
func (r *ClubRepository) AppendInfo(ctx context.Context, info club.Info) (club.Info, []int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return club.Info{}, nil, fmt.Errorf("begin tx append club info: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockRow(ctx, tx, "clubs", info.ClubID); err != nil {
		return club.Info{}, nil, err
	}

	query, args, err := qb.InsertModel("club_infos", clubInfoModelOf(info), "RETURNING id")
	if err != nil {
		return club.Info{}, nil, fmt.Errorf("build insert club info query: %w", err)
	}
	if err := tx.GetContext(ctx, &info.ID, query, args...); err != nil {
		return club.Info{}, nil, fmt.Errorf("insert club info: %w", dberr.Classify(err))
	}

	ladder, err := selectClubInfos(ctx, tx, qb.Eq("club_id", info.ClubID))
	if err != nil {
		return club.Info{}, nil, err
	}
	purged := infoladder.Superseded(ladder, info.ID)
	if _, err := deleteByIDs(ctx, tx, "club_infos", "club_id", info.ClubID, purged); err != nil {
		return club.Info{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return club.Info{}, nil, fmt.Errorf("commit append club info tx: %w", err)
	}
	return info, purged, nil
}

func (r *ClubRepository) ApproveInfo(ctx context.Context, infoID int64) (club.Info, bool, error) {
	query, args, err := qb.Update("club_infos").
		Set("approved", true).
		Where(qb.Eq("id", infoID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return club.Info{}, false, fmt.Errorf("build approve club info query: %w", err)
	}

	var row clubInfoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Info{}, false, nil
		}
		return club.Info{}, false, fmt.Errorf("approve club info: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubRepository) DeleteInfos(ctx context.Context, clubID int64, infoIDs []int64) (int, error) {
	return deleteByIDs(ctx, r.db, "club_infos", "club_id", clubID, infoIDs)
}

func (r *ClubRepository) GetAdmin(ctx context.Context, userID string) (club.Admin, bool, error) {
	query, args, err := qb.Select("*").From("club_admins").Where(qb.Eq("user_id", userID)).ToSQL()
	if err != nil {
		return club.Admin{}, false, fmt.Errorf("build get club admin query: %w", err)
	}

	var row clubAdminTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Admin{}, false, nil
		}
		return club.Admin{}, false, fmt.Errorf("get club admin: %w", err)
	}
	return club.Admin{UserID: row.UserID, ClubID: row.ClubID}, true, nil
}

func (r *ClubRepository) SaveAdmin(ctx context.Context, a club.Admin) error {
	query, args, err := sqlx.Named(`
INSERT INTO club_admins (user_id, club_id)
VALUES (:user_id, :club_id)
ON CONFLICT (user_id) DO UPDATE SET club_id = EXCLUDED.club_id`, map[string]any{
		"user_id": a.UserID,
		"club_id": a.ClubID,
	})
	if err != nil {
		return fmt.Errorf("build save club admin query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("save club admin: %w", dberr.Classify(err))
	}
	return nil
}

func (r *ClubRepository) ListReviews(ctx context.Context, clubID int64) ([]club.Review, error) {
	return r.selectReviews(ctx, qb.Eq("club_id", clubID))
}

func (r *ClubRepository) ListAllReviews(ctx context.Context) ([]club.Review, error) {
	return r.selectReviews(ctx, qb.Expr("TRUE"))
}

func (r *ClubRepository) selectReviews(ctx context.Context, cond qb.Condition) ([]club.Review, error) {
	query, args, err := qb.Select("*").From("club_reviews").
		Where(cond).
		OrderBy("updated_on DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club reviews query: %w", err)
	}

	var rows []clubReviewTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club reviews: %w", err)
	}

	out := make([]club.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) CreateReview(ctx context.Context, rv club.Review) (club.Review, error) {
	model := clubReviewTableModel{
		ClubID:     rv.ClubID,
		UserID:     rv.UserID,
		Score:      rv.Score,
		Headline:   rv.Headline,
		ReviewText: rv.ReviewText,
		Approved:   rv.Approved,
		CreatedOn:  rv.CreatedOn,
		UpdatedOn:  rv.UpdatedOn,
	}
	query, args, err := qb.InsertModel("club_reviews", model, "RETURNING id")
	if err != nil {
		return club.Review{}, fmt.Errorf("build insert club review query: %w", err)
	}
	if err := r.db.GetContext(ctx, &rv.ID, query, args...); err != nil {
		return club.Review{}, fmt.Errorf("insert club review: %w", dberr.Classify(err))
	}
	return rv, nil
}

func (r *ClubRepository) ApproveReview(ctx context.Context, reviewID int64) (bool, error) {
	query, args, err := qb.Update("club_reviews").Set("approved", true).Where(qb.Eq("id", reviewID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build approve club review query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("approve club review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("approve club review rows: %w", err)
	}
	return n > 0, nil
}

// lockRow takes a row lock on the parent of an info ladder. A missing parent
// is left for the insert's foreign key to report.
func lockRow(ctx context.Context, tx *sqlx.Tx, table string, id int64) error {
	query, args, err := qb.Select("id").From(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build lock %s query: %w", table, err)
	}

	var locked int64
	if err := tx.GetContext(ctx, &locked, query+" FOR UPDATE", args...); err != nil && !isNotFound(err) {
		return fmt.Errorf("lock %s row: %w", table, err)
	}
	return nil
}

// deleteByIDs removes the listed rows that belong to the given parent and
// reports how many went.
func deleteByIDs(ctx context.Context, exec sqlx.ExecerContext, table, parentColumn string, parentID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := qb.DeleteFrom(table).
		Where(qb.Eq(parentColumn, parentID), qb.In("id", int64sToAny(ids))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete %s query: %w", table, err)
	}
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, dberr.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete %s rows: %w", table, err)
	}
	return int(n), nil
}
