package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/models"
)

// In-memory repository fakes. Ownership is resolved through the shared
// account fake, mirroring the SQL joins of the real repositories.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, bool, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperr.ErrDuplicateEmail
		}
	}
	f.users = append(f.users, user)
	return nil
}

type fakeAccountRepo struct {
	accounts []*models.SocialAccount
}

func (f *fakeAccountRepo) Create(_ context.Context, sa *models.SocialAccount) error {
	for _, a := range f.accounts {
		if a.Provider == sa.Provider && a.ProviderUserID == sa.ProviderUserID && a.UserID == sa.UserID {
			return apperr.ErrConflict
		}
	}
	f.accounts = append(f.accounts, sa)
	return nil
}

func (f *fakeAccountRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.SocialAccount, error) {
	var out []*models.SocialAccount
	for _, a := range f.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	accounts, _ := f.ListByUserID(ctx, userID)
	return len(accounts), nil
}

func (f *fakeAccountRepo) CheckByUserID(_ context.Context, accountID, userID uuid.UUID) (bool, error) {
	for _, a := range f.accounts {
		if a.ID == accountID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) Remove(_ context.Context, accountID, userID uuid.UUID) (bool, error) {
	for i, a := range f.accounts {
		if a.ID == accountID && a.UserID == userID {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) ownerOf(accountID uuid.UUID) (uuid.UUID, bool) {
	for _, a := range f.accounts {
		if a.ID == accountID {
			return a.UserID, true
		}
	}
	return uuid.Nil, false
}

type fakeScheduledPostRepo struct {
	accounts *fakeAccountRepo
	posts    []*models.ScheduledPost
}

func (f *fakeScheduledPostRepo) Create(_ context.Context, post *models.ScheduledPost) error {
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakeScheduledPostRepo) ListByUserID(_ context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.ScheduledPost, error) {
	var out []*models.ScheduledPost
	for _, p := range f.posts {
		owner, ok := f.accounts.ownerOf(p.SocialAccountID)
		if !ok || owner != userID {
			continue
		}
		if accountID != nil && p.SocialAccountID != *accountID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledFor.Before(out[j].ScheduledFor)
	})
	return out, nil
}

func (f *fakeScheduledPostRepo) CheckByUserID(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	for _, p := range f.posts {
		if p.ID == postID {
			owner, ok := f.accounts.ownerOf(p.SocialAccountID)
			return ok && owner == userID, nil
		}
	}
	return false, nil
}

func (f *fakeScheduledPostRepo) SetCanceled(_ context.Context, postID uuid.UUID) error {
	for _, p := range f.posts {
		if p.ID == postID && p.Status == models.PostStatusScheduled {
			p.Status = models.PostStatusCanceled
		}
	}
	return nil
}

type fakePublishedPostRepo struct {
	accounts *fakeAccountRepo
	posts    []*models.PublishedPost
}

func (f *fakePublishedPostRepo) Create(_ context.Context, post *models.PublishedPost) error {
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePublishedPostRepo) ListByUserID(_ context.Context, userID uuid.UUID, accountID *uuid.UUID) ([]*models.PublishedPost, error) {
	var out []*models.PublishedPost
	for _, p := range f.posts {
		owner, ok := f.accounts.ownerOf(p.SocialAccountID)
		if !ok || owner != userID {
			continue
		}
		if accountID != nil && p.SocialAccountID != *accountID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out, nil
}

type fakeSnapshotRepo struct {
	accounts  *fakeAccountRepo
	snapshots []*models.AnalyticsSnapshot
}

func (f *fakeSnapshotRepo) Create(_ context.Context, snapshot *models.AnalyticsSnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeSnapshotRepo) ListByUserID(_ context.Context, userID uuid.UUID, from, to *time.Time) ([]*models.AnalyticsSnapshot, error) {
	var out []*models.AnalyticsSnapshot
	for _, s := range f.snapshots {
		owner, ok := f.accounts.ownerOf(s.SocialAccountID)
		if !ok || owner != userID {
			continue
		}
		if from != nil && s.CapturedAt.Before(*from) {
			continue
		}
		if to != nil && s.CapturedAt.After(*to) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CapturedAt.Before(out[j].CapturedAt)
	})
	return out, nil
}

type fakeRuleRepo struct {
	rules []*models.AutomationRule
}

func (f *fakeRuleRepo) Create(_ context.Context, rule *models.AutomationRule) error {
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeRuleRepo) GetByID(_ context.Context, ruleID, userID uuid.UUID) (*models.AutomationRule, bool, error) {
	for _, r := range f.rules {
		if r.ID == ruleID && r.UserID == userID {
			clone := *r
			return &clone, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeRuleRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.AutomationRule, error) {
	var out []*models.AutomationRule
	for _, r := range f.rules {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRuleRepo) Update(_ context.Context, rule *models.AutomationRule) (bool, error) {
	for i, r := range f.rules {
		if r.ID == rule.ID && r.UserID == rule.UserID {
			clone := *rule
			f.rules[i] = &clone
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRuleRepo) SetEnabled(_ context.Context, ruleID, userID uuid.UUID, enabled bool) (bool, error) {
	for _, r := range f.rules {
		if r.ID == ruleID && r.UserID == userID {
			r.Enabled = enabled
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRuleRepo) Remove(_ context.Context, ruleID, userID uuid.UUID) (bool, error) {
	for i, r := range f.rules {
		if r.ID == ruleID && r.UserID == userID {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
