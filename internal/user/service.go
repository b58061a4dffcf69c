package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gofood/internal/logger"
	"gofood/internal/storage"
	"gofood/internal/store"
	"gofood/internal/validate"
)

// accountsKey is the registry's durable storage entry, owned by this
// package, not by the state container.
const accountsKey = "accounts"

// Service is mock authentication: accounts live in local storage, any
// well-formed signup is accepted, and the delay stands in for a remote
// call. No server is involved.
type Service interface {
	SignUp(ctx context.Context, params SignUpParams) (string, store.User, error)
	Login(ctx context.Context, email, password string) (string, store.User, error)
	ParseSession(token string) (*SessionClaims, error)
}

type service struct {
	kv     storage.KV
	secret string
	delay  time.Duration
}

func NewService(kv storage.KV, secret string, delay time.Duration) Service {
	return &service{kv: kv, secret: secret, delay: delay}
}

func (s *service) SignUp(ctx context.Context, params SignUpParams) (string, store.User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SignUp"),
	)

	if err := validate.Required(params.Name, "name"); err != nil {
		return "", store.User{}, err
	}
	if err := validate.Email(params.Email); err != nil {
		return "", store.User{}, err
	}
	if err := validate.Phone(params.Phone); err != nil {
		return "", store.User{}, err
	}
	if err := validate.Password(params.Password); err != nil {
		return "", store.User{}, err
	}

	if err := s.simulateRemote(ctx); err != nil {
		return "", store.User{}, err
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		log.Error("failed to load accounts", zap.Error(err))
		return "", store.User{}, ErrFailedLoadAccounts
	}

	for _, acc := range accounts {
		if strings.EqualFold(acc.User.Email, params.Email) {
			return "", store.User{}, ErrEmailExists
		}
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", store.User{}, err
	}

	u := store.User{
		ID:      uuid.NewString(),
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
	}

	accounts = append(accounts, Account{User: u, PasswordHash: hashed})
	if err := s.kv.Set(accountsKey, accounts); err != nil {
		log.Error("failed to save accounts", zap.Error(err))
		return "", store.User{}, ErrFailedSaveAccounts
	}

	token, err := GenerateSessionToken(s.secret, u)
	if err != nil {
		log.Error("failed to generate session token", zap.String("user_id", u.ID), zap.Error(err))
		return "", store.User{}, err
	}

	log.Info("signup completed",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, store.User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	if err := s.simulateRemote(ctx); err != nil {
		return "", store.User{}, err
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		log.Error("failed to load accounts", zap.Error(err))
		return "", store.User{}, ErrFailedLoadAccounts
	}

	for _, acc := range accounts {
		if !strings.EqualFold(acc.User.Email, email) {
			continue
		}
		if !CheckPasswordHash(password, acc.PasswordHash) {
			// Same answer as an unknown email, on purpose.
			return "", store.User{}, ErrInvalidCredentials
		}

		token, err := GenerateSessionToken(s.secret, acc.User)
		if err != nil {
			return "", store.User{}, err
		}

		log.Info("login completed", zap.String("user_id", acc.User.ID))
		return token, acc.User, nil
	}

	return "", store.User{}, ErrInvalidCredentials
}

func (s *service) ParseSession(token string) (*SessionClaims, error) {
	return ParseSessionToken(s.secret, token)
}

func (s *service) loadAccounts() ([]Account, error) {
	var accounts []Account
	if _, err := s.kv.Get(accountsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// simulateRemote waits out the configured mock-API delay, honoring
// cancellation.
func (s *service) simulateRemote(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
