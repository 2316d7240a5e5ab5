// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

const (
	// PremiumProduct is the entitlement that unlocks unlimited analyses.
	PremiumProduct = "insights"

	UnlimitedAnalyses = 999999
	FreeAnalysesLimit = 10
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type CustomerInfo struct {
	ID           string
	Email        string
	Name         *string
	PasswordHash string
	IsPremium    bool
	UsageCount   int
	SignupDate   time.Time
}

type NewCustomer struct {
	Email        string
	PasswordHash string
	Name         *string
}

type CustomerProvider interface {
	GetByEmail(ctx context.Context, email string) (*CustomerInfo, error)
	GetByID(ctx context.Context, id string) (*CustomerInfo, error)
	Create(ctx context.Context, req NewCustomer) (*CustomerInfo, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Entitlements(ctx context.Context, id string) ([]string, error)
}

type Service struct {
	tokens    *TokenManager
	customers CustomerProvider
	now       func() time.Time
}

func NewService(tokens *TokenManager, customers CustomerProvider) *Service {
	return &Service{
		tokens:    tokens,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	ctx, span := core.StartSpan(ctx, "auth.Register")
	defer span.End()

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer, err := s.customers.Create(ctx, NewCustomer{
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Name:         req.Name,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return s.authResponse(customer)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	ctx, span := core.StartSpan(ctx, "auth.Login")
	defer span.End()

	customer, err := s.customers.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&customer.PasswordHash,
	)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if err := s.customers.UpdatePassword(ctx, customer.ID, newHash); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"customer_id", customer.ID,
				"error", err,
			)
		}
	}

	if err := s.customers.RecordLogin(ctx, customer.ID, s.now()); err != nil {
		slog.WarnContext(ctx, "record last login failed",
			"customer_id", customer.ID,
			"error", err,
		)
	}

	return s.authResponse(customer)
}

// GetUserInfo returns the account behind userID. The token must belong to
// that same account, which is checked before the store is consulted.
func (s *Service) GetUserInfo(
	ctx context.Context,
	userID, token string,
) (*UserInfoResponse, error) {
	ctx, span := core.StartSpan(ctx, "auth.GetUserInfo")
	defer span.End()

	claims, err := s.tokens.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if claims.UserID != userID {
		return nil, fmt.Errorf("get user info: %w", core.ErrForbidden)
	}

	customer, err := s.customers.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}

	products, err := s.customers.Entitlements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get entitlements: %w", err)
	}

	premium := slices.Contains(products, PremiumProduct)
	limit := FreeAnalysesLimit
	if premium {
		limit = UnlimitedAnalyses
	}

	return &UserInfoResponse{
		UserID:           customer.ID,
		Email:            customer.Email,
		Name:             customer.Name,
		IsPremium:        premium,
		AnalysesThisWeek: customer.UsageCount,
		AnalysesLimit:    limit,
		CreatedAt:        customer.SignupDate,
	}, nil
}

func (s *Service) authResponse(customer *CustomerInfo) (*AuthResponse, error) {
	accessToken, err := s.tokens.CreateToken(customer.ID, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &AuthResponse{
		UserID:      customer.ID,
		Email:       customer.Email,
		Name:        customer.Name,
		IsPremium:   customer.IsPremium,
		AccessToken: accessToken,
	}, nil
}
