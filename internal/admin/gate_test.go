// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package admin_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramacollection/storefront/internal/admin"
	"github.com/dramacollection/storefront/internal/platform/dberr"
)

type memoryPrivileges struct {
	admins    map[string]bool
	grantedBy map[string]string
	err       error
}

func (m *memoryPrivileges) IsAdmin(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.admins[email], nil
}

func (m *memoryPrivileges) Grant(_ context.Context, email string, grantedBy string) error {
	if m.err != nil {
		return m.err
	}
	if m.grantedBy == nil {
		m.grantedBy = map[string]string{}
	}
	m.admins[email] = true
	m.grantedBy[email] = grantedBy
	return nil
}

func (m *memoryPrivileges) Revoke(_ context.Context, email string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.admins[email]; !ok {
		return dberr.ErrNotFound
	}
	m.admins[email] = false
	return nil
}

type memoryElevations struct {
	elevated map[string]bool
}

func newMemoryElevations() *memoryElevations {
	return &memoryElevations{elevated: map[string]bool{}}
}

func (m *memoryElevations) IsElevated(_ context.Context, email string) (bool, error) {
	return m.elevated[email], nil
}

func (m *memoryElevations) SetElevated(_ context.Context, email string) error {
	m.elevated[email] = true
	return nil
}

func (m *memoryElevations) ClearElevated(_ context.Context, email string) error {
	delete(m.elevated, email)
	return nil
}

const testPassphrase = "sealed-showcase"

func newTestGate(privileges *memoryPrivileges, elevations *memoryElevations) *admin.Gate {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admin.NewGate(privileges, elevations, testPassphrase, logger)
}

/*
TestGate_LoginGrantsAccessOnlyWithBothFactors verifies that privilege alone,
elevation alone, and the empty state all deny access, and that a correct
login on a privileged email opens the gate.
*/
func TestGate_LoginGrantsAccessOnlyWithBothFactors(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	// 1. Privileged but not elevated
	assert.False(t, gate.HasAccess(ctx, "boss@example.com"))

	// 2. Correct passphrase elevates
	require.NoError(t, gate.Login(ctx, "boss@example.com", testPassphrase))
	assert.True(t, gate.HasAccess(ctx, "boss@example.com"))
}

/*
TestGate_WrongPassphraseIsRejected verifies that a wrong passphrase never
records elevation, even for a privileged email.
*/
func TestGate_WrongPassphraseIsRejected(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	err := gate.Login(ctx, "boss@example.com", "guess")
	assert.Error(t, err)
	assert.False(t, gate.HasAccess(ctx, "boss@example.com"))
	assert.Empty(t, elevations.elevated)
}

/*
TestGate_UnprivilegedEmailCannotElevate verifies that knowing the passphrase
is worthless without a privilege row.
*/
func TestGate_UnprivilegedEmailCannotElevate(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	err := gate.Login(ctx, "visitor@example.com", testPassphrase)
	assert.Error(t, err)
	assert.Empty(t, elevations.elevated)
}

/*
TestGate_LogoutClearsElevation verifies that logout drops elevation while
leaving the privilege untouched, and that it is idempotent.
*/
func TestGate_LogoutClearsElevation(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	require.NoError(t, gate.Login(ctx, "boss@example.com", testPassphrase))
	require.NoError(t, gate.Logout(ctx, "boss@example.com"))

	isAdmin, isElevated := gate.Status(ctx, "boss@example.com")
	assert.True(t, isAdmin)
	assert.False(t, isElevated)

	// Repeated logout is fine
	require.NoError(t, gate.Logout(ctx, "boss@example.com"))
}

/*
TestGate_StatusClearsStaleElevation verifies that a revoked admin's
lingering elevation flag is removed the first time their status is read.
*/
func TestGate_StatusClearsStaleElevation(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	require.NoError(t, gate.Login(ctx, "boss@example.com", testPassphrase))

	// Privilege is revoked while the flag is still set
	privileges.admins["boss@example.com"] = false

	isAdmin, isElevated := gate.Status(ctx, "boss@example.com")
	assert.False(t, isAdmin)
	assert.False(t, isElevated)
	assert.Empty(t, elevations.elevated)
}

/*
TestGate_FailsClosedOnRepositoryError verifies that a privilege lookup
failure reads as no access rather than an open gate.
*/
func TestGate_FailsClosedOnRepositoryError(t *testing.T) {
	privileges := &memoryPrivileges{err: errors.New("connection refused")}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	assert.False(t, gate.HasAccess(ctx, "boss@example.com"))
	assert.Error(t, gate.Login(ctx, "boss@example.com", testPassphrase))
}

/*
TestGate_GrantOpensTheFirstFactor verifies that a granted email can log in
with the passphrase, that the granting admin is recorded, and that the grant
alone never opens the gate.
*/
func TestGate_GrantOpensTheFirstFactor(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	// 1. Before the grant, the passphrase is worthless
	assert.Error(t, gate.Login(ctx, "clerk@example.com", testPassphrase))

	// 2. Grant records who vouched for the new admin
	require.NoError(t, gate.Grant(ctx, "clerk@example.com", "boss@example.com"))
	assert.Equal(t, "boss@example.com", privileges.grantedBy["clerk@example.com"])

	// 3. The grant is only the first factor
	assert.False(t, gate.HasAccess(ctx, "clerk@example.com"))
	require.NoError(t, gate.Login(ctx, "clerk@example.com", testPassphrase))
	assert.True(t, gate.HasAccess(ctx, "clerk@example.com"))
}

/*
TestGate_RevokeEndsAccessImmediately verifies that revoking drops both the
privilege and any live elevation, and that revoking an unknown email reports
not found.
*/
func TestGate_RevokeEndsAccessImmediately(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	require.NoError(t, gate.Login(ctx, "boss@example.com", testPassphrase))
	require.True(t, gate.HasAccess(ctx, "boss@example.com"))

	// 1. Revoke closes the gate without waiting for a sign-out
	require.NoError(t, gate.Revoke(ctx, "boss@example.com"))
	assert.False(t, gate.HasAccess(ctx, "boss@example.com"))
	assert.Empty(t, elevations.elevated)

	// 2. The audit row survives with the privilege flipped off
	flag, ok := privileges.admins["boss@example.com"]
	assert.True(t, ok)
	assert.False(t, flag)

	// 3. Revoking an email that never had a row reports not found
	assert.ErrorIs(t, gate.Revoke(ctx, "stranger@example.com"), dberr.ErrNotFound)
}

/*
TestGate_IdentitySignOutDropsElevation verifies that admin tenure ends with
the identity: an absent identity event clears elevation, a present one does
not touch it.
*/
func TestGate_IdentitySignOutDropsElevation(t *testing.T) {
	privileges := &memoryPrivileges{admins: map[string]bool{"boss@example.com": true}}
	elevations := newMemoryElevations()
	gate := newTestGate(privileges, elevations)
	ctx := context.Background()

	require.NoError(t, gate.Login(ctx, "boss@example.com", testPassphrase))

	// 1. Sign-in event leaves elevation alone
	gate.OnIdentityChanged(ctx, "boss@example.com", true)
	assert.True(t, gate.HasAccess(ctx, "boss@example.com"))

	// 2. Sign-out event clears it
	gate.OnIdentityChanged(ctx, "boss@example.com", false)
	assert.False(t, gate.HasAccess(ctx, "boss@example.com"))
}
