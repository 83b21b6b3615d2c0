package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/apperr"
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Patcher applies merge-patches to accounts. Upload and analysis flows only
// need this part of the service.
type Patcher interface {
	Patch(ctx context.Context, id string, p Patch) (View, error)
}

type Servicer interface {
	Patcher
	Register(ctx context.Context, in RegisterInput) (View, error)
	Authenticate(ctx context.Context, email, password string) (View, error)
	Get(ctx context.Context, id string) (View, error)
}

type Service struct {
	repo      Repository
	validator Validator
	hasher    PasswordHasher
	newID     func() string
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, hasher PasswordHasher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		newID:     uuid.NewString,
		log:       log,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (View, error) {
	if err := s.validator.ValidateRegister(in); err != nil {
		s.log.Debug("registration rejected", "email", in.Email, "error", err)
		return View{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return View{}, err
	}

	acc := Account{
		ID:       s.newID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return View{}, apperr.Conflict(CodeEmailTaken, MsgEmailTaken)
		}
		return View{}, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account registered", "account_id", acc.ID)
	return acc.View(), nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (View, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, apperr.Auth(CodeInvalidCredentials, MsgInvalidCredentials)
		}
		return View{}, fmt.Errorf("find account: %w", err)
	}

	if !s.hasher.Compare(acc.Password, password) {
		s.log.Debug("password mismatch", "account_id", acc.ID)
		return View{}, apperr.Auth(CodeInvalidCredentials, MsgInvalidCredentials)
	}

	return acc.View(), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, apperr.NotFound(CodeAccountNotFound, MsgAccountNotFound)
		}
		return View{}, fmt.Errorf("find account: %w", err)
	}
	return acc.View(), nil
}

func (s *Service) Patch(ctx context.Context, id string, p Patch) (View, error) {
	acc, err := s.repo.Update(ctx, id, p.Apply)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, apperr.NotFound(CodeAccountNotFound, MsgAccountNotFound)
		}
		if apperr.IsUserFacing(err) {
			return View{}, err
		}
		return View{}, fmt.Errorf("update account: %w", err)
	}
	return acc.View(), nil
}
