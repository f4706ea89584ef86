package controller

import (
	"context"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/repository"
	"github.com/phvlkn/CookBook/util"
)

// UserController interface
type UserController interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// userController struct
type userController struct {
	userRepository *repository.UserRepository
	timeout        time.Duration
}

// NewUserController creates and returns a new UserController
func NewUserController(userRepository *repository.UserRepository, timeout time.Duration) UserController {
	return &userController{
		userRepository: userRepository,
		timeout:        timeout,
	}
}

// Register validates and hashes the password, then inserts the user.
// A taken email comes back as entity.ErrDuplicateEmail.
func (c *userController) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	if err := util.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	digest, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	user := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		Password: digest,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		IsActive: true,
	}
	created, err := c.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return created, nil
}

// GetUser retrieves a single user by ID
func (c *userController) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return user, nil
}

func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translateTimeout(err)
	}
	return user, nil
}

// DeleteUser removes a user and everything the user owns.
func (c *userController) DeleteUser(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	return translateTimeout(c.userRepository.DeleteUser(ctx, id))
}
