package staff

import (
	"net/http"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "staff member not found")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already used")
)

// Staff is an admin-panel account. Customers never have accounts;
// they book with contact details only.
type Staff struct {
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
