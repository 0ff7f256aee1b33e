package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"timetracker-backend/db"
	usersstore "timetracker-backend/lib/users/store"
	authutils "timetracker-backend/lib/utils/auth-utils"
	"timetracker-backend/models"
	authapimodels "timetracker-backend/models/api/auth"
	teamapimodels "timetracker-backend/models/api/team"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (authapimodels.JWTResponse, error)
	Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	Me(userID string) (teamapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

// Register always creates an employee account. Supervisor accounts are
// provisioned by the superadmin, the superadmin itself is seeded at startup.
func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	if err := data.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check the email")
		return authapimodels.JWTResponse{}, err
	}
	if exist {
		return authapimodels.JWTResponse{}, models.NewConflictError("user with this email already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("failed to hash the password")
		return authapimodels.JWTResponse{}, err
	}
	rec := dbmodels.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         models.UserRoleEmployee,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the user")
		return authapimodels.JWTResponse{}, err
	}
	created, err := i.usersStore.GetByID(id)
	if err != nil || created == nil {
		logger.WithError(err).Error("failed to load the created user")
		return authapimodels.JWTResponse{}, err
	}
	logger.WithField("rec_id", id).Info("user registered")
	return i.issueToken(created)
}

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to look up the user")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, models.NewInvalidCredentialsError("invalid email or password")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password))
	if err != nil {
		return authapimodels.JWTResponse{}, models.NewInvalidCredentialsError("invalid email or password")
	}
	logger.WithField("rec_id", user.ID).Info("user logged in")
	return i.issueToken(user)
}

func (i impl) Me(userID string) (teamapimodels.UserView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load the user")
		return teamapimodels.UserView{}, err
	}
	if user == nil {
		return teamapimodels.UserView{}, models.NewNotFoundError("user not found")
	}
	return user.ToModel(), nil
}

// issueToken also advances the last login date, which drives the first-login
// flag the frontend uses for onboarding.
func (i impl) issueToken(user *dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("failed to sign the token")
		return authapimodels.JWTResponse{}, err
	}
	isFirstLogin := user.LastLoginDate == nil
	err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login_date": time.Now()})
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("failed to update the last login date")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		IsFirstLogin: isFirstLogin,
	}, nil
}
