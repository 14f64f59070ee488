// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks the shared administrator password.

# Admin Password

Administrative operations (tally, balances, reset) require the password
configured with ADMIN_PASSWORD:

	if err := auth.ValidateAdminPassword(given, cfg.AdminPassword); err != nil {
		// ErrInvalidPassword
	}

The comparison is plain equality done in constant time. There is no hashing
and no rate limiting.

# Transport

Read-only admin requests send the password in the X-Admin-Password header:

	password := auth.PasswordFromRequest(r)

The reset endpoint also accepts it in the JSON body.
*/
package auth
