// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramacollection/storefront/internal/platform/apperr"
	"github.com/dramacollection/storefront/internal/platform/sec"
	"github.com/dramacollection/storefront/internal/users/auth"
)

// # Test Doubles

type memoryUserRepository struct {
	byEmail map[string]*auth.User
	byID    map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: map[string]*auth.User{},
		byID:    map[string]*auth.User{},
	}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *auth.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := r.byID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (r *memoryUserRepository) SoftDelete(_ context.Context, id string) error {
	if user, ok := r.byID[id]; ok {
		delete(r.byEmail, user.Email)
		delete(r.byID, id)
	}
	return nil
}

func (r *memoryUserRepository) MarkVerified(_ context.Context, userID string) error {
	if user, ok := r.byID[userID]; ok {
		user.IsVerified = true
	}
	return nil
}

type memorySessionRepository struct {
	byHash  map[string]*auth.Session
	revoked map[string]bool
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{
		byHash:  map[string]*auth.Session{},
		revoked: map[string]bool{},
	}
}

func (r *memorySessionRepository) Create(_ context.Context, session *auth.Session) error {
	r.byHash[session.TokenHash] = session
	return nil
}

func (r *memorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := r.byHash[tokenHash]
	if !ok || r.revoked[session.ID] {
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (r *memorySessionRepository) ListActiveByUser(_ context.Context, userID string) ([]*auth.Session, error) {
	var sessions []*auth.Session
	for _, session := range r.byHash {
		if session.UserID == userID && !r.revoked[session.ID] {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (r *memorySessionRepository) Revoke(_ context.Context, sessionID string) error {
	r.revoked[sessionID] = true
	return nil
}

func (r *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID {
			r.revoked[session.ID] = true
		}
	}
	return nil
}

func (r *memorySessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID && session.ID != currentSessionID {
			r.revoked[session.ID] = true
		}
	}
	return nil
}

func (r *memorySessionRepository) DeleteExpired(_ context.Context) error { return nil }

type memoryTokenRepository struct {
	values map[string]string
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{values: map[string]string{}}
}

func (r *memoryTokenRepository) Set(_ context.Context, token string, userID string, _ time.Duration) error {
	r.values[token] = userID
	return nil
}

func (r *memoryTokenRepository) Get(_ context.Context, token string) (string, error) {
	if userID, ok := r.values[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Token")
}

func (r *memoryTokenRepository) Delete(_ context.Context, token string) error {
	delete(r.values, token)
	return nil
}

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, email, displayName string, _ time.Duration) (string, error) {
	return "jwt-" + userID, nil
}

// identityRecorder captures every broadcast identity transition.
type identityRecorder struct {
	emails   []string
	presents []bool
}

func (r *identityRecorder) OnIdentityChanged(_ context.Context, email string, present bool) {
	r.emails = append(r.emails, email)
	r.presents = append(r.presents, present)
}

// # Fixtures

type serviceFixture struct {
	service  *auth.Service
	users    *memoryUserRepository
	sessions *memorySessionRepository
	resets   *memoryTokenRepository
	verifies *memoryTokenRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	resets := newMemoryTokenRepository()
	verifies := newMemoryTokenRepository()
	service := auth.NewService(users, sessions, resets, verifies, staticTokenProvider{})
	return &serviceFixture{
		service:  service,
		users:    users,
		sessions: sessions,
		resets:   resets,
		verifies: verifies,
	}
}

// seedUser registers and optionally verifies an account through the service.
func (f *serviceFixture) seedUser(t *testing.T, email, password string, verified bool) *auth.User {
	t.Helper()
	user, err := f.service.Register(context.Background(), auth.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: "Test Customer",
	})
	require.NoError(t, err)
	if verified {
		user.IsVerified = true
	}
	return user
}

// # Tests

/*
TestService_RegisterRejectsDuplicateEmail verifies that a second registration
with the same email fails with a CONFLICT error.
*/
func TestService_RegisterRejectsDuplicateEmail(t *testing.T) {
	f := newServiceFixture(t)

	// 1. First registration succeeds
	f.seedUser(t, "musteri@example.com", "gizli-sifre", false)

	// 2. Second registration with the same email fails
	_, err := f.service.Register(context.Background(), auth.RegisterInput{
		Email:    "musteri@example.com",
		Password: "baska-sifre",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_RegisterStartsUnverified verifies that new accounts are created
unverified and with a hashed (never plain-text) password.
*/
func TestService_RegisterStartsUnverified(t *testing.T) {
	f := newServiceFixture(t)

	user := f.seedUser(t, "musteri@example.com", "gizli-sifre", false)

	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "gizli-sifre", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("gizli-sifre", user.PasswordHash))
}

/*
TestService_LoginRejectsUnverified verifies that correct credentials on an
unverified account are rejected with FORBIDDEN, not UNAUTHORIZED.
*/
func TestService_LoginRejectsUnverified(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", false)

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
}

/*
TestService_LoginRejectsBadCredentials verifies the generic UNAUTHORIZED
response for both unknown emails and wrong passwords.
*/
func TestService_LoginRejectsBadCredentials(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", true)

	// 1. Unknown email
	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "yok@example.com",
		Password: "gizli-sifre",
	})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 2. Wrong password
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "yanlis-sifre",
	})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_LoginBroadcastsIdentityArrival verifies that a successful login
notifies every subscribed listener with the email and present=true.
*/
func TestService_LoginBroadcastsIdentityArrival(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", true)

	recorder := &identityRecorder{}
	f.service.Subscribe(recorder)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	require.Len(t, recorder.emails, 1)
	assert.Equal(t, "musteri@example.com", recorder.emails[0])
	assert.True(t, recorder.presents[0])
}

/*
TestService_LogoutBroadcastsIdentityDeparture verifies that logout revokes the
session and notifies listeners with present=false.
*/
func TestService_LogoutBroadcastsIdentityDeparture(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", true)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	recorder := &identityRecorder{}
	f.service.Subscribe(recorder)

	// 1. Logout revokes and broadcasts the departure
	require.NoError(t, f.service.Logout(context.Background(), session.RefreshToken))
	require.Len(t, recorder.emails, 1)
	assert.Equal(t, "musteri@example.com", recorder.emails[0])
	assert.False(t, recorder.presents[0])

	// 2. A second logout with the same token is an idempotent no-op
	require.NoError(t, f.service.Logout(context.Background(), session.RefreshToken))
	assert.Len(t, recorder.emails, 1)
}

/*
TestService_RefreshRotatesToken verifies the refresh token rotation: the old
token is revoked and a new one is issued.
*/
func TestService_RefreshRotatesToken(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", true)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	// 1. Rotation issues a different refresh token
	rotated, err := f.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// 2. The old token can never be replayed
	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_ResetPasswordRevokesSessions verifies the full forgot-password
round trip: token issue, password change, global sign-out, departure broadcast.
*/
func TestService_ResetPasswordRevokesSessions(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "musteri@example.com", "gizli-sifre", true)

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	recorder := &identityRecorder{}
	f.service.Subscribe(recorder)

	// 1. Request a reset token
	token, err := f.service.RequestPasswordReset(context.Background(), "musteri@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 2. Redeem it with a new password
	require.NoError(t, f.service.ResetPassword(context.Background(), token, "yeni-sifre"))

	// 3. Existing sessions are gone and the departure was broadcast
	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)
	require.Len(t, recorder.emails, 1)
	assert.False(t, recorder.presents[0])

	// 4. The new password works, the old one does not
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.Error(t, err)

	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "yeni-sifre",
	})
	require.NoError(t, err)
}

/*
TestService_RequestPasswordResetIsSilentForUnknownEmail verifies the
enumeration guard: unknown emails return no error and no token.
*/
func TestService_RequestPasswordResetIsSilentForUnknownEmail(t *testing.T) {
	f := newServiceFixture(t)

	token, err := f.service.RequestPasswordReset(context.Background(), "yok@example.com")
	assert.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestService_VerifyEmailUnlocksLogin verifies that redeeming the verification
token flips the account to verified and allows sign-in.
*/
func TestService_VerifyEmailUnlocksLogin(t *testing.T) {
	f := newServiceFixture(t)
	user := f.seedUser(t, "musteri@example.com", "gizli-sifre", false)

	// Registration staged exactly one verification token for this user
	var token string
	for candidate, userID := range f.verifies.values {
		if userID == user.ID {
			token = candidate
		}
	}
	require.NotEmpty(t, token)

	// 1. Redeem the token
	require.NoError(t, f.service.VerifyEmail(context.Background(), token))

	// 2. Login is now allowed
	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Email:    "musteri@example.com",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)

	// 3. The token is single-use
	require.Error(t, f.service.VerifyEmail(context.Background(), token))
}
