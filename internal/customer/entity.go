// AngelaMos | 2026
// entity.go

package customer

import (
	"database/sql"
	"time"
)

type Customer struct {
	ID               string         `db:"id"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	ShopName         sql.NullString `db:"shop_name"`
	AccessKey        string         `db:"access_key"`
	DataConsent      bool           `db:"data_consent"`
	ConsentUpdatedAt *time.Time     `db:"consent_updated_at"`
	SignupDate       time.Time      `db:"signup_date"`
	UsageCount       int            `db:"usage_count"`
	UsageResetDate   *time.Time     `db:"usage_reset_date"`
	IsPremium        bool           `db:"is_premium"`
	IsEmailVerified  bool           `db:"is_email_verified"`
	LastLogin        *time.Time     `db:"last_login"`
	CreatedAt        time.Time      `db:"created_at"`
}
