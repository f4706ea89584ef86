package service

import (
	"context"
	"errors"
	"time"

	"github.com/phvlkn/CookBook/controller"
	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/logger"
	"github.com/phvlkn/CookBook/util"

	"go.uber.org/zap"
)

// LoginTokenTTL is the lifetime of tokens issued by the login flow.
// Other callers of util.GenerateJWT pick their own TTL.
const LoginTokenTTL = 60 * time.Minute

// AuthService interface
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Identify(ctx context.Context, token string) (*entity.User, error)
}

// authService struct
type authService struct {
	userController controller.UserController
	jwtSecretKey   []byte
}

// NewAuthService creates and returns a new AuthService
func NewAuthService(userController controller.UserController, config *entity.Config) AuthService {
	return &authService{
		userController: userController,
		jwtSecretKey:   []byte(config.JWTSecretKey),
	}
}

// Login handles user authentication. Unknown email and wrong password both
// come back as entity.ErrInvalidCredentials so callers cannot enumerate
// accounts; the root cause is only logged.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := a.userController.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			logger.Debug("login rejected: unknown email", zap.String("email", email))
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !util.CheckPasswordHash(password, user.Password) {
		logger.Debug("login rejected: bad password", zap.Uint("user_id", user.ID))
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.Email, LoginTokenTTL, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Identify resolves a bearer token to a user: signature and expiry are
// verified, then the embedded email claim is looked up. A valid token for
// a user that no longer exists is entity.ErrUnknownSubject.
func (a *authService) Identify(ctx context.Context, token string) (*entity.User, error) {
	email, err := util.ValidateJWT(token, a.jwtSecretKey)
	if err != nil {
		return nil, err
	}

	user, err := a.userController.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}
