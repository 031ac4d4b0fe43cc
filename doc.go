// Package users implements the request validation and credential
// authentication pipeline behind a JSON:API "users" resource.
//
// The package owns the document envelope contract, attribute grammar and
// normalization, password hashing, and access token issuance. Persistence is
// consumed through the UserStore interface; the HTTP surface in http.go is a
// thin fiber adapter over the pipelines and carries no validation logic of
// its own.
//
// Request flow:
//
//	body -> ParseEnvelope -> field validators -> UserStore / Hasher / TokenService -> Result
//
// Every pipeline call yields exactly one Result. Failures are translated
// into JSON:API error documents; raw collaborator errors are logged, never
// echoed to the client.
package users
