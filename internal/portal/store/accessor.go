package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// Fixed keys. The names match what existing browsers already hold so a
// profile exported from local storage can be imported verbatim.
const (
	KeyInvitationCodes     = "invitationCodes"
	KeyUsedInvitationCodes = "usedInvitationCodes"
	KeyClientAccounts      = "clientAccounts"
	KeyIsLoggedIn          = "isLoggedIn"
	KeyUsername            = "username"
	KeyUserData            = "userData"
)

// ErrCorrupt is returned when a stored value is not valid JSON for its key.
var ErrCorrupt = errors.New("store: corrupt value")

// Accessor reads and writes the JSON values kept under the fixed keys.
// Missing arrays read as empty.
type Accessor struct {
	v Values
}

func NewAccessor(v Values) Accessor { return Accessor{v: v} }

func (a Accessor) InvitationCodes(ctx context.Context) ([]domain.InvitationCode, error) {
	var codes []domain.InvitationCode
	if err := a.readJSON(ctx, KeyInvitationCodes, &codes); err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []domain.InvitationCode{}
	}
	return codes, nil
}

func (a Accessor) SaveInvitationCodes(ctx context.Context, codes []domain.InvitationCode) error {
	if codes == nil {
		codes = []domain.InvitationCode{}
	}
	return a.writeJSON(ctx, KeyInvitationCodes, codes)
}

func (a Accessor) UsedInvitationCodes(ctx context.Context) ([]string, error) {
	var used []string
	if err := a.readJSON(ctx, KeyUsedInvitationCodes, &used); err != nil {
		return nil, err
	}
	if used == nil {
		used = []string{}
	}
	return used, nil
}

func (a Accessor) SaveUsedInvitationCodes(ctx context.Context, used []string) error {
	if used == nil {
		used = []string{}
	}
	return a.writeJSON(ctx, KeyUsedInvitationCodes, used)
}

func (a Accessor) ClientAccounts(ctx context.Context) ([]domain.ClientAccount, error) {
	var accounts []domain.ClientAccount
	if err := a.readJSON(ctx, KeyClientAccounts, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.ClientAccount{}
	}
	return accounts, nil
}

func (a Accessor) SaveClientAccounts(ctx context.Context, accounts []domain.ClientAccount) error {
	if accounts == nil {
		accounts = []domain.ClientAccount{}
	}
	return a.writeJSON(ctx, KeyClientAccounts, accounts)
}

// Session rehydrates the login flags. A session counts as logged in only when
// isLoggedIn is "true" and a username is present. An unreadable userData blob
// is logged and ignored rather than failing the whole session.
func (a Accessor) Session(ctx context.Context) (domain.Session, error) {
	flag, err := a.get(ctx, KeyIsLoggedIn)
	if err != nil {
		return domain.Session{}, err
	}
	username, err := a.get(ctx, KeyUsername)
	if err != nil {
		return domain.Session{}, err
	}
	if flag != "true" || username == "" {
		return domain.Session{}, nil
	}

	sess := domain.Session{LoggedIn: true, Username: username}

	var data domain.UserData
	if err := a.readJSON(ctx, KeyUserData, &data); err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return domain.Session{}, err
		}
		slogx.FromContext(ctx).Warn("ignoring unreadable user data", slog.Any("error", err))
	} else {
		sess.UserData = data
	}

	return sess, nil
}

func (a Accessor) SaveSession(ctx context.Context, username string, data domain.UserData) error {
	if err := a.v.Set(ctx, KeyIsLoggedIn, "true"); err != nil {
		return err
	}
	if err := a.v.Set(ctx, KeyUsername, username); err != nil {
		return err
	}
	return a.writeJSON(ctx, KeyUserData, data)
}

// ClearSession removes all three session keys unconditionally.
func (a Accessor) ClearSession(ctx context.Context) error {
	for _, key := range []string{KeyIsLoggedIn, KeyUsername, KeyUserData} {
		if err := a.v.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// get returns "" for missing keys.
func (a Accessor) get(ctx context.Context, key string) (string, error) {
	raw, err := a.v.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return raw, err
}

func (a Accessor) readJSON(ctx context.Context, key string, dst any) error {
	raw, err := a.get(ctx, key)
	if err != nil || raw == "" {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (a Accessor) writeJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return a.v.Set(ctx, key, string(raw))
}
