package initializers

import (
	"unicode"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"timetracker-backend/config"
	"timetracker-backend/db"
	usersstore "timetracker-backend/lib/users/store"
	"timetracker-backend/models"
	dbmodels "timetracker-backend/models/db"
)

// SeedSuperAdmin provisions the superadmin account from the environment on
// startup. The account is the only way into supervisor management, so there is
// no registration path for it. Re-running is a no-op once the account exists.
func SeedSuperAdmin() {
	email := config.Conf.Superadmin.Email
	password := config.Conf.Superadmin.Password
	if email == "" || password == "" {
		log.Info("superadmin seed is skipped, credentials are not configured")
		return
	}
	logger := log.WithField("email", email)

	store := usersstore.NewInstance(db.DB)
	existing, err := store.FindByEmail(email)
	if err != nil {
		panic(errors.Wrap(err, "failed to check the superadmin account"))
	}
	if existing != nil {
		if !existing.Role.IsSuperAdmin() {
			panic("superadmin email is taken by a non-superadmin account")
		}
		return
	}

	if err = checkPasswordStrength(password); err != nil {
		panic(errors.Wrap(err, "superadmin password is too weak"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(errors.Wrap(err, "failed to hash the superadmin password"))
	}
	_, err = store.Create(dbmodels.User{
		Name:         config.Conf.Superadmin.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.UserRoleSuperAdmin,
	})
	if err != nil {
		panic(errors.Wrap(err, "failed to create the superadmin account"))
	}
	logger.Info("superadmin account created")
}

func checkPasswordStrength(password string) error {
	if len(password) < 12 {
		return errors.New("at least 12 characters are required")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return errors.New("upper and lower case letters, a digit and a symbol are required")
	}
	return nil
}
