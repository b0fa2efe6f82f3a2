package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/clarityimpactfinance/portal/pkg/cryptox"
	"github.com/clarityimpactfinance/portal/pkg/idx"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

const (
	DefaultCodePrefix  = "CIF-"
	MaxCodePrefixLen   = 10
	codeSuffixLen      = 6
	GeneratedPasswordN = 10
)

var (
	ErrAdminPassword     = errors.New("invalid admin password")
	ErrInvalidCodePrefix = errors.New("invitation code prefix too long")
	ErrAccountNotFound   = errors.New("client account not found")
	ErrAllFieldsRequired = errors.New("all fields are required")
)

// AdminService backs the admin panel. Mutations of the shared arrays run in
// a transaction so two admins cannot overwrite each other.
type AdminService struct {
	Store    store.Store
	Password string

	// InvitationTTL defaults to domain.DefaultInvitationTTL.
	InvitationTTL time.Duration

	Now func() time.Time
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AuthenticateAdmin compares against the configured admin password.
func (s *AdminService) AuthenticateAdmin(ctx context.Context, password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) != 1 {
		slogx.FromContext(ctx).Warn("admin login failed")
		return ErrAdminPassword
	}
	slogx.FromContext(ctx).Info("admin logged in")
	return nil
}

// CreateInvitationCode mints prefix plus six upper-case base-36 characters,
// valid for the invitation TTL. An empty prefix means DefaultCodePrefix.
// Collisions with an existing code are not retried.
func (s *AdminService) CreateInvitationCode(ctx context.Context, prefix string) (domain.InvitationCode, error) {
	log := slogx.FromContext(ctx)

	if prefix == "" {
		prefix = DefaultCodePrefix
	}
	if len(prefix) > MaxCodePrefixLen {
		return domain.InvitationCode{}, ErrInvalidCodePrefix
	}

	suffix, err := cryptox.RandomString(cryptox.Base36Upper, codeSuffixLen)
	if err != nil {
		log.Error("failed to generate invitation code", slog.Any("error", err))
		return domain.InvitationCode{}, err
	}

	ttl := s.InvitationTTL
	if ttl <= 0 {
		ttl = domain.DefaultInvitationTTL
	}

	now := s.now().UTC()
	code := domain.InvitationCode{
		Code:      prefix + suffix,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		a := store.NewAccessor(tx.Values())
		codes, err := a.InvitationCodes(ctx)
		if err != nil {
			return err
		}
		return a.SaveInvitationCodes(ctx, append(codes, code))
	})
	if err != nil {
		log.Error("failed to save invitation code", slog.Any("error", err))
		return domain.InvitationCode{}, err
	}

	log.Info("invitation code created",
		slog.String("invitation_code", code.Code),
		slog.Time("expires_at", code.ExpiresAt),
	)
	return code, nil
}

// ListInvitationCodes returns every code with its derived used and expired
// flags.
func (s *AdminService) ListInvitationCodes(ctx context.Context) ([]domain.InvitationCodeStatus, error) {
	a := store.NewAccessor(s.Store.Values())

	codes, err := a.InvitationCodes(ctx)
	if err != nil {
		return nil, err
	}
	used, err := a.UsedInvitationCodes(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]domain.InvitationCodeStatus, 0, len(codes))
	for _, c := range codes {
		out = append(out, domain.InvitationCodeStatus{
			InvitationCode: c,
			Used:           slices.Contains(used, c.Code),
			Expired:        c.Expired(now),
		})
	}
	return out, nil
}

// DeleteInvitationCode removes the code and any used marker for it.
func (s *AdminService) DeleteInvitationCode(ctx context.Context, code string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a := store.NewAccessor(tx.Values())

		codes, err := a.InvitationCodes(ctx)
		if err != nil {
			return err
		}
		kept := slices.DeleteFunc(codes, func(c domain.InvitationCode) bool { return c.Code == code })

		used, err := a.UsedInvitationCodes(ctx)
		if err != nil {
			return err
		}
		usedKept := slices.DeleteFunc(used, func(u string) bool { return u == code })

		if err := a.SaveInvitationCodes(ctx, kept); err != nil {
			return err
		}
		return a.SaveUsedInvitationCodes(ctx, usedKept)
	})
	if err != nil {
		log.Error("failed to delete invitation code", slog.Any("error", err))
		return err
	}

	log.Info("invitation code deleted", slog.String("invitation_code", code))
	return nil
}

// CreateClientAccountRequest is the admin's direct account form. No
// invitation code is consumed.
type CreateClientAccountRequest struct {
	Username     string
	Password     string
	FullName     string
	Organization string
}

func (s *AdminService) CreateClientAccount(ctx context.Context, req CreateClientAccountRequest) (domain.AccountProfile, error) {
	log := slogx.FromContext(ctx)

	for _, f := range []string{req.Username, req.Password, req.FullName, req.Organization} {
		if strings.TrimSpace(f) == "" {
			return domain.AccountProfile{}, ErrAllFieldsRequired
		}
	}

	now := s.now().UTC()
	account := domain.ClientAccount{
		ID:           idx.NewAt(now).String(),
		Username:     req.Username,
		Password:     req.Password,
		FullName:     req.FullName,
		Organization: req.Organization,
		CreatedAt:    now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a := store.NewAccessor(tx.Values())
		accounts, err := a.ClientAccounts(ctx)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(accounts, func(acc domain.ClientAccount) bool { return acc.Username == req.Username }) {
			return ErrUsernameTaken
		}
		return a.SaveClientAccounts(ctx, append(accounts, account))
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			log.Warn("account creation rejected: duplicate username", slog.String("username", req.Username))
		} else {
			log.Error("failed to create client account", slog.Any("error", err))
		}
		return domain.AccountProfile{}, err
	}

	log.Info("client account created",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)
	return account.Profile(), nil
}

// ListClientAccounts never exposes passwords.
func (s *AdminService) ListClientAccounts(ctx context.Context) ([]domain.AccountProfile, error) {
	accounts, err := store.NewAccessor(s.Store.Values()).ClientAccounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AccountProfile, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc.Profile())
	}
	return out, nil
}

func (s *AdminService) DeleteClientAccount(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a := store.NewAccessor(tx.Values())
		accounts, err := a.ClientAccounts(ctx)
		if err != nil {
			return err
		}

		kept := slices.DeleteFunc(accounts, func(acc domain.ClientAccount) bool { return acc.ID == id })
		if len(kept) == len(accounts) {
			return ErrAccountNotFound
		}
		return a.SaveClientAccounts(ctx, kept)
	})
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			log.Error("failed to delete client account", slog.Any("error", err))
		}
		return err
	}

	log.Info("client account deleted", slog.String("account_id", id))
	return nil
}

// GeneratePassword suggests a password for a new client account.
func (s *AdminService) GeneratePassword() (string, error) {
	return cryptox.RandomString(cryptox.PasswordAlphabet, GeneratedPasswordN)
}
