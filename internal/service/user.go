package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nyashahama/bkw-backend/internal/errs"
	"github.com/nyashahama/bkw-backend/internal/lib/job"
	"github.com/nyashahama/bkw-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	Create(ctx context.Context, payload *model.CreateUserPayload, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserService struct {
	users      UserRepository
	jobs       TaskEnqueuer
	bcryptCost int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(users UserRepository, jobs TaskEnqueuer, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		jobs:       jobs,
		bcryptCost: bcryptCost,
	}
}

// Register hashes the password, stores the user and queues a welcome e-mail.
// The stored row, hash included, is returned.
func (s *UserService) Register(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errs.NewBadRequestError("Password must not exceed 72 bytes", true, nil,
			[]errs.FieldError{{Field: "password", Error: "must not exceed 72 bytes"}}, nil)
	}
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, payload, string(hash))
	if err != nil {
		return nil, err
	}

	task, err := job.NewWelcomeEmailTask(user.Email, user.FullName)
	enqueue(ctx, s.jobs, task, err)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Login answers 401 with the same message whether the e-mail is unknown or
// the password is wrong. An unknown e-mail still costs one bcrypt comparison.
func (s *UserService) Login(ctx context.Context, payload *model.LoginPayload) (*model.LoginResponse, error) {
	invalid := errs.NewUnauthorizedError("Invalid email or password", true)

	user, err := s.users.GetByEmail(ctx, payload.Email)
	if isNoRows(err) {
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(payload.Password))
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Message: "Login successful", User: user}, nil
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.bcryptCost)
	})
	return s.dummyHash
}
