// AngelaMos | 2026
// service.go

package customer

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/auth"
	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.CustomerInfo, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCustomerInfo(c), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.CustomerInfo, error) {
	c, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toCustomerInfo(c), nil
}

// Create stores a new free-tier customer with data consent recorded at
// signup and a fresh access key.
func (s *Service) Create(
	ctx context.Context,
	req auth.NewCustomer,
) (*auth.CustomerInfo, error) {
	now := s.now()

	c := &Customer{
		Email:            strings.ToLower(req.Email),
		PasswordHash:     req.PasswordHash,
		AccessKey:        core.GenerateAccessKey(),
		DataConsent:      true,
		ConsentUpdatedAt: &now,
		SignupDate:       now,
		UsageCount:       0,
		UsageResetDate:   &now,
		IsPremium:        false,
		IsEmailVerified:  false,
	}
	if req.Name != nil {
		c.ShopName = sql.NullString{String: *req.Name, Valid: true}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return toCustomerInfo(c), nil
}

func (s *Service) RecordLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	return s.repo.UpdateLastLogin(ctx, id, at)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) Entitlements(
	ctx context.Context,
	id string,
) ([]string, error) {
	return s.repo.ListProductIDs(ctx, id)
}

func toCustomerInfo(c *Customer) *auth.CustomerInfo {
	info := &auth.CustomerInfo{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		IsPremium:    c.IsPremium,
		UsageCount:   c.UsageCount,
		SignupDate:   c.SignupDate,
	}
	if c.ShopName.Valid {
		name := c.ShopName.String
		info.Name = &name
	}
	return info
}

var _ auth.CustomerProvider = (*Service)(nil)
