package venue

import "context"

// Repository describes venue, venue info ladder and club link persistence.
type Repository interface {
	ListVenues(ctx context.Context) ([]Venue, error)
	GetVenue(ctx context.Context, venueID int64) (Venue, bool, error)
	// CreateVenue stores the venue, its first info snapshot and, when clubID
	// is non-zero, the club link in one transaction.
	CreateVenue(ctx context.Context, v Venue, info Info, clubID int64) (Venue, Info, error)
	DeleteVenue(ctx context.Context, venueID int64) error

	ListInfos(ctx context.Context, venueID int64) ([]Info, error)
	ListAllInfos(ctx context.Context) ([]Info, error)
	AppendInfo(ctx context.Context, info Info) (Info, []int64, error)
	ApproveInfo(ctx context.Context, infoID int64) (Info, bool, error)
	DeleteInfos(ctx context.Context, venueID int64, infoIDs []int64) (int, error)

	ListLinks(ctx context.Context) ([]ClubVenue, error)
	ListLinksByClub(ctx context.Context, clubID int64) ([]ClubVenue, error)
	ListLinksByVenue(ctx context.Context, venueID int64) ([]ClubVenue, error)
	Assign(ctx context.Context, link ClubVenue) error
	Unassign(ctx context.Context, link ClubVenue) (bool, error)
}
