package club

import "context"

// Repository describes club, club info ladder, admin and review persistence.
type Repository interface {
	ListClubs(ctx context.Context) ([]Club, error)
	GetClub(ctx context.Context, clubID int64) (Club, bool, error)
	CreateClub(ctx context.Context, c Club) (Club, error)

	ListInfos(ctx context.Context, clubID int64) ([]Info, error)
	ListAllInfos(ctx context.Context) ([]Info, error)
	// AppendInfo stores info as a new unapproved snapshot and purges the
	// snapshots it supersedes, returning the stored row and purged ids.
	AppendInfo(ctx context.Context, info Info) (Info, []int64, error)
	ApproveInfo(ctx context.Context, infoID int64) (Info, bool, error)
	DeleteInfos(ctx context.Context, clubID int64, infoIDs []int64) (int, error)

	GetAdmin(ctx context.Context, userID string) (Admin, bool, error)
	SaveAdmin(ctx context.Context, a Admin) error

	ListReviews(ctx context.Context, clubID int64) ([]Review, error)
	ListAllReviews(ctx context.Context) ([]Review, error)
	CreateReview(ctx context.Context, r Review) (Review, error)
	ApproveReview(ctx context.Context, reviewID int64) (bool, error)
}
