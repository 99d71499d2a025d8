// Package auth implements authentication for the back office.
//
// Admin accounts carry bcrypt password hashes; sessions live in SQLite via
// alexedwards/scs with an absolute lifetime and no renewal, so a login is
// valid for exactly the configured window. Login attempts are rate limited
// per client IP and username, and mutating requests go through gorilla/csrf.
package auth
