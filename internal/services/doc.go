// Package services holds the weightkeeper stores: AccountStore for
// registration and credentials, SessionStore for the single active session,
// and TrackingStore for goals and weight entries.
//
// Every store reports failures with the taxonomy in package common:
// validation errors before storage is touched, ErrUsernameTaken,
// ErrInvalidCredentials, ErrNotFound, and *common.StorageError for engine
// faults. Multi-step mutations run inside dbx.WithTx.
package services
