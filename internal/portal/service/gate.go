package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/clarityimpactfinance/portal/pkg/asyncx"
	"github.com/clarityimpactfinance/portal/pkg/idx"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

var (
	ErrInvalidInvitationCode = errors.New("invalid or expired invitation code")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrPasswordMismatch      = errors.New("passwords do not match")
)

// GateService guards the client area: invitation codes, registration and the
// per-browser login flags.
type GateService struct {
	Store store.Store

	// Latency is the simulated round trip applied to Register and Login.
	Latency time.Duration

	Now func() time.Time
}

func (s *GateService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RegisterRequest carries the registration form. ConfirmPassword is only
// checked when supplied.
type RegisterRequest struct {
	Username        string
	Password        string
	ConfirmPassword string
	FullName        string
	Organization    string
	InvitationCode  string
}

func (r RegisterRequest) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = "Username is required"
	}
	if r.Password == "" {
		fields["password"] = "Password is required"
	}
	if strings.TrimSpace(r.FullName) == "" {
		fields["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(r.Organization) == "" {
		fields["organization"] = "Organization is required"
	}
	return domain.NewValidationError("Please fill in all required fields", fields)
}

// ValidateInvitationCode reports whether code exists, is unused and has not
// expired. It never writes.
func (s *GateService) ValidateInvitationCode(ctx context.Context, code string) (bool, error) {
	return validInvitationCode(ctx, store.NewAccessor(s.Store.Values()), code, s.now())
}

func validInvitationCode(ctx context.Context, a store.Accessor, code string, now time.Time) (bool, error) {
	codes, err := a.InvitationCodes(ctx)
	if err != nil {
		return false, err
	}

	i := slices.IndexFunc(codes, func(c domain.InvitationCode) bool { return c.Code == code })
	if i < 0 || codes[i].Expired(now) {
		return false, nil
	}

	used, err := a.UsedInvitationCodes(ctx)
	if err != nil {
		return false, err
	}
	return !slices.Contains(used, code), nil
}

// Register creates an account and consumes its invitation code. The new
// account is not logged in.
func (s *GateService) Register(ctx context.Context, req RegisterRequest) (domain.AccountProfile, error) {
	log := slogx.FromContext(ctx)

	// 1. Form checks
	if err := req.validate(); err != nil {
		return domain.AccountProfile{}, err
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return domain.AccountProfile{}, ErrPasswordMismatch
	}

	// 2. Simulated round trip
	if err := asyncx.Sleep(ctx, s.Latency); err != nil {
		return domain.AccountProfile{}, err
	}

	var account domain.ClientAccount

	// 3. Check and write under one transaction
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a := store.NewAccessor(tx.Values())

		accounts, err := a.ClientAccounts(ctx)
		if err != nil {
			return err
		}

		if slices.ContainsFunc(accounts, func(acc domain.ClientAccount) bool { return acc.Username == req.Username }) {
			log.Warn("registration rejected: duplicate username", slog.String("username", req.Username))
			return ErrUsernameTaken
		}

		now := s.now()
		ok, err := validInvitationCode(ctx, a, req.InvitationCode, now)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("registration rejected: invalid invitation code",
				slog.String("username", req.Username),
				slog.String("invitation_code", req.InvitationCode),
			)
			return ErrInvalidInvitationCode
		}

		used, err := a.UsedInvitationCodes(ctx)
		if err != nil {
			return err
		}
		if err := a.SaveUsedInvitationCodes(ctx, append(used, req.InvitationCode)); err != nil {
			return err
		}

		account = domain.ClientAccount{
			ID:           idx.NewAt(now).String(),
			Username:     req.Username,
			Password:     req.Password,
			FullName:     req.FullName,
			Organization: req.Organization,
			CreatedAt:    now.UTC(),
		}
		return a.SaveClientAccounts(ctx, append(accounts, account))
	})
	if err != nil {
		if !errors.Is(err, ErrUsernameTaken) && !errors.Is(err, ErrInvalidInvitationCode) {
			log.Error("failed to register account", slog.Any("error", err))
		}
		return domain.AccountProfile{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
		slog.String("invitation_code", req.InvitationCode),
	)

	return account.Profile(), nil
}

// Login checks the exact username and password pair and, on success, writes
// the login flags into the session's namespace. Attempts are not limited.
func (s *GateService) Login(ctx context.Context, sid, username, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	if err := asyncx.Sleep(ctx, s.Latency); err != nil {
		return domain.Session{}, err
	}

	accounts, err := store.NewAccessor(s.Store.Values()).ClientAccounts(ctx)
	if err != nil {
		log.Error("failed to load accounts", slog.Any("error", err))
		return domain.Session{}, err
	}

	i := slices.IndexFunc(accounts, func(acc domain.ClientAccount) bool {
		return acc.Username == username && acc.Password == password
	})
	if i < 0 {
		log.Warn("login failed", slog.String("username", username))
		return domain.Session{}, ErrInvalidCredentials
	}
	account := accounts[i]

	data := domain.UserData{FullName: account.FullName, Organization: account.Organization}
	if err := s.session(sid).SaveSession(ctx, account.Username, data); err != nil {
		log.Error("failed to save session", slog.Any("error", err))
		return domain.Session{}, err
	}

	log.Info("client logged in", slog.String("username", account.Username))

	return domain.Session{LoggedIn: true, Username: account.Username, UserData: data}, nil
}

// Logout clears the session flags whether or not anyone was logged in.
func (s *GateService) Logout(ctx context.Context, sid string) error {
	return s.session(sid).ClearSession(ctx)
}

// CurrentSession rehydrates the login state of one browser session.
func (s *GateService) CurrentSession(ctx context.Context, sid string) (domain.Session, error) {
	return s.session(sid).Session(ctx)
}

func (s *GateService) session(sid string) store.Accessor {
	return store.NewAccessor(store.Namespace(s.Store.Values(), store.SessionNamespace(sid)))
}
