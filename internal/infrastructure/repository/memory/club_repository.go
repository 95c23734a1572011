package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/tt-league/internal/domain/club"
	"github.com/riskibarqy/tt-league/internal/domain/infoladder"
	"github.com/riskibarqy/tt-league/internal/platform/dberr"
)

type ClubRepository struct {
	s *Store
}

func NewClubRepository(s *Store) *ClubRepository {
	return &ClubRepository{s: s}
}

func byClubName(a, b club.Club) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

func (r *ClubRepository) ListClubs(_ context.Context) ([]club.Club, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.clubs, nil, byClubName), nil
}

func (r *ClubRepository) GetClub(_ context.Context, clubID int64) (club.Club, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clubs[clubID]
	return c, ok, nil
}

func (r *ClubRepository) CreateClub(_ context.Context, c club.Club) (club.Club, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.clubs {
		if strings.EqualFold(other.Name, c.Name) {
			return club.Club{}, dberr.Unique("clubs_name_key")
		}
	}
	c.ID = r.s.reserve(c.ID)
	r.s.clubs[c.ID] = c
	return c, nil
}

func (r *ClubRepository) ListInfos(_ context.Context, clubID int64) ([]club.Info, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.clubInfosOf(clubID), nil
}

func (s *Store) clubInfosOf(clubID int64) []club.Info {
	out := collect(s.clubInfos,
		func(i club.Info) bool { return i.ClubID == clubID },
		func(a, b club.Info) bool { return infoladder.Newer(a, b) },
	)
	return out
}

func (r *ClubRepository) ListAllInfos(_ context.Context) ([]club.Info, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return collect(r.s.clubInfos, nil, func(a, b club.Info) bool { return infoladder.Newer(a, b) }), nil
}

func (r *ClubRepository) AppendInfo(_ context.Context, info club.Info) (club.Info, []int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clubs[info.ClubID]; !ok {
		return club.Info{}, nil, dberr.ForeignKey("club_infos_club_id_fkey")
	}
	info.ID = r.s.reserve(info.ID)
	r.s.clubInfos[info.ID] = info

	purged := infoladder.Superseded(r.s.clubInfosOf(info.ClubID), info.ID)
	for _, id := range purged {
		delete(r.s.clubInfos, id)
	}
	return info, purged, nil
}

func (r *ClubRepository) ApproveInfo(_ context.Context, infoID int64) (club.Info, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	info, ok := r.s.clubInfos[infoID]
	if !ok {
		return club.Info{}, false, nil
	}
	info.Approved = true
	r.s.clubInfos[infoID] = info
	return info, true, nil
}

func (r *ClubRepository) DeleteInfos(_ context.Context, clubID int64, infoIDs []int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	deleted := 0
	for _, id := range infoIDs {
		if info, ok := r.s.clubInfos[id]; ok && info.ClubID == clubID {
			delete(r.s.clubInfos, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *ClubRepository) GetAdmin(_ context.Context, userID string) (club.Admin, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.admins[userID]
	return a, ok, nil
}

func (r *ClubRepository) SaveAdmin(_ context.Context, a club.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clubs[a.ClubID]; !ok {
		return dberr.ForeignKey("club_admins_club_id_fkey")
	}
	r.s.admins[a.UserID] = a
	return nil
}

func (r *ClubRepository) ListReviews(_ context.Context, clubID int64) ([]club.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := collect(r.s.reviews, func(rv club.Review) bool { return rv.ClubID == clubID }, byReviewID)
	club.SortReviews(out)
	return out, nil
}

func (r *ClubRepository) ListAllReviews(_ context.Context) ([]club.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := collect(r.s.reviews, nil, byReviewID)
	club.SortReviews(out)
	return out, nil
}

func byReviewID(a, b club.Review) bool { return a.ID < b.ID }

func (r *ClubRepository) CreateReview(_ context.Context, rv club.Review) (club.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clubs[rv.ClubID]; !ok {
		return club.Review{}, dberr.ForeignKey("club_reviews_club_id_fkey")
	}
	for _, other := range r.s.reviews {
		if other.ClubID == rv.ClubID && other.UserID == rv.UserID {
			return club.Review{}, dberr.Unique("club_reviews_club_id_user_id_key")
		}
	}
	rv.ID = r.s.reserve(rv.ID)
	r.s.reviews[rv.ID] = rv
	return rv, nil
}

func (r *ClubRepository) ApproveReview(_ context.Context, reviewID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rv, ok := r.s.reviews[reviewID]
	if !ok {
		return false, nil
	}
	rv.Approved = true
	r.s.reviews[reviewID] = rv
	return true, nil
}
