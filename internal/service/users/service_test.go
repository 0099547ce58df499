package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
	userRepo "github.com/anuratyres/ATS-ShopService/internal/infra/storage/users"
	"github.com/anuratyres/ATS-ShopService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTokens struct{}

func (fakeTokens) Issue(userID int64) (string, error) { return "token-for-test", nil }

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	calls  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.calls++
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, userRepo.ErrDuplicateUsername
		}
	}
	out := *u
	out.ID = r.nextID
	out.CreatedAt = time.Now()
	r.users[out.ID] = &out
	r.nextID++
	return &out, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.calls++
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.calls++
	return len(r.users), nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.calls++
	existing, ok := r.users[u.ID]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	existing.Username = u.Username
	existing.Name = u.Name
	existing.Role = u.Role
	return existing, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id int64) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.calls++
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, fakeTokens{}, nopLogger{})
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Test User",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "nimal", "secret123", domain.RoleManager)
	svc := newTestService(repo)

	res, err := svc.Login(context.Background(), &models.LoginRequest{Username: "nimal", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "token-for-test", res.Token)
	assert.Equal(t, "nimal", res.User.Username)
	assert.Equal(t, string(domain.RoleManager), res.User.Role)
	assert.Contains(t, res.User.Permissions, domain.PermManageInventory)

	stored, _ := repo.GetByUsername(context.Background(), "nimal")
	assert.NotNil(t, stored.LastLogin, "login stamps last_login")
}

func TestLoginValidatesBeforeStoreAccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: " ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "nimal", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.calls, "field validation must not touch the store")
}

func TestLoginGenericCredentialError(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "nimal", "secret123", domain.RoleManager)
	svc := newTestService(repo)

	// Unknown user and bad password come back as the same error.
	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{Username: "ghost", Password: "secret123"})
	_, errBadPass := svc.Login(context.Background(), &models.LoginRequest{Username: "nimal", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errBadPass)
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	res, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "kamala",
		Password: "secret123",
		Name:     "Kamala Silva",
		Role:     string(domain.RoleCashier),
	})
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreateRejectsShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "kamala",
		Password: "abc",
		Name:     "Kamala Silva",
		Role:     string(domain.RoleCashier),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "kamala",
		Password: "secret123",
		Name:     "Kamala Silva",
		Role:     "Intern",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "kamala", "secret123", domain.RoleCashier)
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "kamala",
		Password: "secret123",
		Name:     "Other Kamala",
		Role:     string(domain.RoleCashier),
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))
	require.Len(t, repo.users, 1)

	res, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleSuperAdmin), res.User.Role)
}

func TestBootstrapSkipsNonEmptyStore(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "nimal", "secret123", domain.RoleManager)
	svc := newTestService(repo)

	require.NoError(t, svc.Bootstrap(context.Background()))
	assert.Len(t, repo.users, 1, "existing accounts block the seed")
}

func TestResponsesNeverCarryPasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "nimal", "secret123", domain.RoleManager)
	svc := newTestService(repo)

	res, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, res.Username)
	assert.NotEmpty(t, res.Permissions)
}
