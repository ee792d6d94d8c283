package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/auth"
	apperrors "wordnest/internal/shared/errors"
)

// In-memory doubles for the repositories and services the usecases touch.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email().Equals(u.Email()) {
			return user.ErrEmailTaken
		}
	}
	r.nextID++
	u.SetID(r.nextID)
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if t := u.EmailVerificationToken(); t != nil && *t == token {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

type fakeOAuthRepo struct {
	mu       sync.Mutex
	nextID   uint
	accounts []*user.OAuthAccount
}

func newFakeOAuthRepo() *fakeOAuthRepo {
	return &fakeOAuthRepo{}
}

func (r *fakeOAuthRepo) Create(ctx context.Context, account *user.OAuthAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Provider == account.Provider && a.ProviderUserID == account.ProviderUserID {
			return apperrors.NewAlreadyLinkedError(account.Provider)
		}
		if a.UserID == account.UserID && a.Provider == account.Provider {
			return apperrors.NewAlreadyLinkedError(account.Provider)
		}
	}
	r.nextID++
	account.ID = r.nextID
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeOAuthRepo) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.OAuthAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Provider == provider && a.ProviderUserID == providerUserID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeOAuthRepo) GetByUserID(ctx context.Context, userID uint) ([]*user.OAuthAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*user.OAuthAccount
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeOAuthRepo) Update(ctx context.Context, account *user.OAuthAccount) error {
	return nil
}

func (r *fakeOAuthRepo) DeleteByUserAndProvider(ctx context.Context, userID uint, provider string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.UserID == userID && a.Provider == provider {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeStateStore struct {
	mu     sync.Mutex
	states map[string]*user.OAuthState
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: make(map[string]*user.OAuthState)}
}

func (s *fakeStateStore) Create(ctx context.Context, state *user.OAuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.Value] = state
	return nil
}

func (s *fakeStateStore) Consume(ctx context.Context, value string) (*user.OAuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[value]
	if !ok || state.IsExpired(time.Now()) {
		return nil, nil
	}
	delete(s.states, value)
	return state, nil
}

func (s *fakeStateStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for value, state := range s.states {
		if state.ExpiresAt.Before(before) {
			delete(s.states, value)
			removed++
		}
	}
	return removed, nil
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []*audit.Entry
	insertErr error
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Insert(ctx context.Context, entry *audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, entry)
	return nil
}

// fakeTxManager runs the function directly; rollback behavior is covered
// by the sqlite-backed transaction tests in the repository package.
type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeAuditRepo) ListByActor(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*audit.Entry
	for _, e := range r.entries {
		if e.ActorID == actorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// fakeHasher prefixes instead of hashing; Verify just re-derives.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeSessionIssuer struct{}

func (fakeSessionIssuer) Generate(userID uint, email, role string) (string, error) {
	return fmt.Sprintf("session-%d-%s", userID, role), nil
}

type fakeEmailService struct {
	mu            sync.Mutex
	verifications []string
	changed       []string
}

func (s *fakeEmailService) SendVerificationEmail(to, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifications = append(s.verifications, to)
	return nil
}

func (s *fakeEmailService) SendPasswordChangedEmail(to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = append(s.changed, to)
	return nil
}

// fakeOAuthClient returns a canned provider profile.
type fakeOAuthClient struct {
	userInfo    *auth.OAuthUserInfo
	exchangeErr error
}

func (c *fakeOAuthClient) GetAuthURL(state string) string {
	return "https://provider.example/auth?state=" + state
}

func (c *fakeOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	if c.exchangeErr != nil {
		return "", c.exchangeErr
	}
	return "provider-access-token", nil
}

func (c *fakeOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error) {
	return c.userInfo, nil
}
