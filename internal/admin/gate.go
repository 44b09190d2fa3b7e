// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

/*
Package admin implements the two-factor back-office gate.

Admin access requires BOTH of:

 1. A privilege row: the identity's email is marked admin in the store.
 2. An elevation flag: the identity has entered the admin passphrase during
    this tenure (persisted until logout or identity switch).

The privilege answers "may this person ever administer"; the elevation
answers "have they proven it right now". Either alone grants nothing, so a
leaked passphrase is useless without a privileged account and vice versa.
*/
package admin

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/platform/apperr"
	"github.com/dramacollection/storefront/internal/platform/sec"
)

// PrivilegeRepository answers and manages whether an email is marked admin.
type PrivilegeRepository interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
	Grant(ctx context.Context, email string, grantedBy string) error
	Revoke(ctx context.Context, email string) error
}

// ElevationRepository persists the per-identity passphrase elevation flag.
type ElevationRepository interface {
	IsElevated(ctx context.Context, email string) (bool, error)
	SetElevated(ctx context.Context, email string) error
	ClearElevated(ctx context.Context, email string) error
}

// Gate combines privilege and elevation into one access decision.
type Gate struct {
	privileges PrivilegeRepository
	elevations ElevationRepository
	passphrase string
	logger     *slog.Logger
}

func NewGate(privileges PrivilegeRepository, elevations ElevationRepository, passphrase string, logger *slog.Logger) *Gate {
	return &Gate{
		privileges: privileges,
		elevations: elevations,
		passphrase: passphrase,
		logger:     logger,
	}
}

// Status reports the full gate state for an email.
//
// Fail-closed: any repository error reads as "no access". When the
// privilege resolves false while an elevation flag is still set, the stale
// flag is cleared so a revoked admin cannot regain access by being
// re-granted later with an old elevation still in place.
func (gate *Gate) Status(context context.Context, email string) (isAdmin, isElevated bool) {
	privileged, err := gate.privileges.IsAdmin(context, email)
	if err != nil {
		gate.logger.Error("admin_privilege_check_failed", slog.String("email", email), slog.String("error", err.Error()))
		return false, false
	}

	elevated, err := gate.elevations.IsElevated(context, email)
	if err != nil {
		gate.logger.Error("admin_elevation_check_failed", slog.String("email", email), slog.String("error", err.Error()))
		return privileged, false
	}

	if !privileged && elevated {
		if err := gate.elevations.ClearElevated(context, email); err != nil {
			gate.logger.Error("admin_stale_elevation_clear_failed", slog.String("email", email), slog.String("error", err.Error()))
		}
		return false, false
	}

	return privileged, elevated
}

// HasAccess reports whether an email clears both halves of the gate.
func (gate *Gate) HasAccess(context context.Context, email string) bool {
	isAdmin, isElevated := gate.Status(context, email)
	return isAdmin && isElevated
}

// Login attempts passphrase elevation for an email.
//
// The comparison is constant-time. A wrong passphrase or an unprivileged
// email both return Forbidden without recording anything, and the two cases
// are indistinguishable to the caller.
func (gate *Gate) Login(context context.Context, email string, passphrase string) error {
	privileged, err := gate.privileges.IsAdmin(context, email)
	if err != nil {
		gate.logger.Error("admin_privilege_check_failed", slog.String("email", email), slog.String("error", err.Error()))
		return apperr.Forbidden("Admin access denied")
	}

	if !sec.ConstantTimeEquals(passphrase, gate.passphrase) || !privileged {
		gate.logger.Warn("admin_login_rejected", slog.String("email", email))
		return apperr.Forbidden("Admin access denied")
	}

	if err := gate.elevations.SetElevated(context, email); err != nil {
		return err
	}

	gate.logger.Info("admin_elevated", slog.String("email", email))
	return nil
}

// Logout clears the elevation flag for an email. Idempotent.
func (gate *Gate) Logout(context context.Context, email string) error {
	if err := gate.elevations.ClearElevated(context, email); err != nil {
		return err
	}

	gate.logger.Info("admin_elevation_cleared", slog.String("email", email))
	return nil
}

// Grant marks an email as admin, recording who granted it. The grantee still
// has to pass the passphrase check before the gate opens for them.
func (gate *Gate) Grant(context context.Context, email string, grantedBy string) error {
	if err := gate.privileges.Grant(context, email, grantedBy); err != nil {
		return err
	}

	gate.logger.Info("admin_privilege_granted", slog.String("email", email), slog.String("granted_by", grantedBy))
	return nil
}

// Revoke withdraws the privilege and drops any live elevation, so access
// ends immediately rather than at the next identity change. The privilege
// row itself survives as an audit trail.
func (gate *Gate) Revoke(context context.Context, email string) error {
	if err := gate.privileges.Revoke(context, email); err != nil {
		return err
	}

	if err := gate.elevations.ClearElevated(context, email); err != nil {
		gate.logger.Error("admin_elevation_clear_failed", slog.String("email", email), slog.String("error", err.Error()))
	}

	gate.logger.Info("admin_privilege_revoked", slog.String("email", email))
	return nil
}

// OnIdentityChanged drops elevation when the identity goes absent. Admin
// tenure never survives a sign-out; the next session must re-enter the
// passphrase.
func (gate *Gate) OnIdentityChanged(context context.Context, email string, present bool) {
	if present {
		return
	}

	if err := gate.Logout(context, email); err != nil {
		gate.logger.Error("admin_logout_on_identity_change_failed", slog.String("email", email), slog.String("error", err.Error()))
	}
}
