// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package auth

import "context"

// IdentityListener receives identity transition events.
//
// The storefront services that keep per-identity state (cart, favorites,
// the admin gate) subscribe here so a sign-in reloads the new identity's
// namespace and a sign-out tears down anything tenure-bound.
//
// # Contract
//
//   - present = true  : the email just became the active identity (login,
//     session refresh after verification).
//   - present = false : the email just stopped being the active identity
//     (logout, session revocation).
//
// Listeners must not fail the transition: they log their own errors and
// return. They are invoked synchronously in subscription order, after the
// transition has been persisted.
type IdentityListener interface {
	OnIdentityChanged(ctx context.Context, email string, present bool)
}

// Subscribe registers a listener for identity transitions. Not safe for
// concurrent use with notify; wire all subscriptions during startup.
func (service *Service) Subscribe(listener IdentityListener) {
	service.listeners = append(service.listeners, listener)
}

// notify fans an identity transition out to every subscribed listener.
func (service *Service) notify(context context.Context, email string, present bool) {
	for _, listener := range service.listeners {
		listener.OnIdentityChanged(context, email, present)
	}
}
