package users

import (
	"context"
	"net/http"
)

// Registrar runs the user resource pipelines: registration, updates,
// deletion, and the public read behind the show endpoint. Every method
// returns exactly one terminal Result.
type Registrar struct {
	store  UserStore
	hasher Hasher
	logger Logger
}

// NewRegistrar creates a Registrar on top of the given collaborators.
func NewRegistrar(store UserStore, hasher Hasher) *Registrar {
	return &Registrar{
		store:  store,
		hasher: hasher,
		logger: defLogger{},
	}
}

// WithLogger replaces the logger.
func (r *Registrar) WithLogger(logger Logger) *Registrar {
	r.logger = logger
	return r
}

// Register validates the envelope and every attribute, checks uniqueness,
// hashes the password and persists the user. Field errors are collected
// across validators so the client sees all of them at once; the envelope and
// the conflict check short-circuit.
func (r *Registrar) Register(ctx context.Context, body []byte) *Result {
	env, envErr := ParseEnvelope(body)
	if envErr != nil {
		return errorsResult(envErr)
	}

	username, usernameErr := ValidateUsername(env.Attr("username"))
	email, emailErr := ValidateEmail(env.Attr("email"))
	passwordErrs := ValidatePasswords(env.Attr("password"), env.Attr("confirm_password"))
	name, nameErr := ValidateName(env.Attr("name"))

	var fieldErrs []*Error
	if usernameErr != nil {
		fieldErrs = append(fieldErrs, usernameErr)
	}
	if emailErr != nil {
		fieldErrs = append(fieldErrs, emailErr)
	}
	fieldErrs = append(fieldErrs, passwordErrs...)
	if nameErr != nil {
		fieldErrs = append(fieldErrs, nameErr)
	}
	if len(fieldErrs) > 0 {
		return errorsResult(fieldErrs...)
	}

	existing, err := r.store.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		r.logger.Error("Register uniqueness check failed: %v", err)
		return errorsResult(Internal())
	}
	if existing != nil {
		return errorsResult(BadRequest("/data/attributes", "The username and/or the email are already taken. Are you a registered user?"))
	}

	hash, err := r.hasher.Hash(env.Attr("password").Value)
	if err != nil {
		r.logger.Error("Register password hashing failed: %v", err)
		return errorsResult(Internal())
	}

	user := &User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	if err := r.store.Insert(ctx, user); err != nil {
		r.logger.Error("Register insert failed: %v", err)
		return errorsResult(Internal())
	}

	return &Result{
		Status: http.StatusCreated,
		Body: ResourceDocument{Data: &Resource{
			Type:       ResourceType,
			Attributes: user.Public(),
			Links:      &Links{Self: "/api/v1/users/" + user.Username},
		}},
	}
}

// Update applies an email and/or name change to an existing user. Absent
// attributes keep their stored value; present ones go through the same
// validators registration uses.
func (r *Registrar) Update(ctx context.Context, username string, body []byte) *Result {
	env, envErr := ParseEnvelope(body)
	if envErr != nil {
		return errorsResult(envErr)
	}

	normalized, usernameErr := ValidateUsername(Attribute{Value: username, Set: true})
	if usernameErr != nil {
		return errorsResult(usernameErr)
	}

	user, err := r.store.FindByUsername(ctx, normalized)
	if err != nil {
		r.logger.Error("Update lookup failed: %v", err)
		return errorsResult(Internal())
	}
	if user == nil {
		return errorsResult(NotFound("/users/{username}", "The user you are trying to update does not exist, maybe you misspoke?"))
	}

	prevEmail := user.Email

	var fieldErrs []*Error

	if attr := env.Attr("email"); attr.Set {
		email, emailErr := ValidateEmail(attr)
		if emailErr != nil {
			fieldErrs = append(fieldErrs, emailErr)
		} else {
			user.Email = email
		}
	}

	if attr := env.Attr("name"); attr.Set {
		name, nameErr := ValidateName(attr)
		if nameErr != nil {
			fieldErrs = append(fieldErrs, nameErr)
		} else {
			user.Name = name
		}
	}

	if len(fieldErrs) > 0 {
		return errorsResult(fieldErrs...)
	}

	if user.Email != prevEmail {
		taken, err := r.store.FindByEmail(ctx, user.Email)
		if err != nil {
			r.logger.Error("Update uniqueness check failed: %v", err)
			return errorsResult(Internal())
		}
		if taken != nil && taken.Username != user.Username {
			return errorsResult(BadRequest("/data/attributes/email", "The email is already taken. Are you a registered user?"))
		}
	}

	if err := r.store.Update(ctx, user); err != nil {
		r.logger.Error("Update persist failed: %v", err)
		return errorsResult(Internal())
	}

	return &Result{
		Status: http.StatusOK,
		Body: ResourceDocument{Data: &Resource{
			ID:         user.Username,
			Type:       ResourceType,
			Attributes: user.Public(),
		}},
	}
}

// Show returns the public projection of a single user.
func (r *Registrar) Show(ctx context.Context, username string) *Result {
	normalized, usernameErr := ValidateUsername(Attribute{Value: username, Set: true})
	if usernameErr != nil {
		return errorsResult(usernameErr)
	}

	user, err := r.store.FindByUsername(ctx, normalized)
	if err != nil {
		r.logger.Error("Show lookup failed: %v", err)
		return errorsResult(Internal())
	}
	if user == nil {
		return errorsResult(NotFound("/username", "We couldn't find a user with that username"))
	}

	return &Result{
		Status: http.StatusOK,
		Body: ResourceDocument{Data: &Resource{
			ID:         user.Username,
			Type:       ResourceType,
			Attributes: user.Public(),
			Links:      &Links{Self: "/api/v1/users/" + user.Username},
		}},
	}
}

// Delete removes a user. Unknown usernames get a 404; success is a 204 with
// an empty data object.
func (r *Registrar) Delete(ctx context.Context, username string) *Result {
	normalized, usernameErr := ValidateUsername(Attribute{Value: username, Set: true})
	if usernameErr != nil {
		return errorsResult(usernameErr)
	}

	user, err := r.store.FindByUsername(ctx, normalized)
	if err != nil {
		r.logger.Error("Delete lookup failed: %v", err)
		return errorsResult(Internal())
	}
	if user == nil {
		return errorsResult(NotFound("/", "The user does not exist in the database"))
	}

	if err := r.store.Delete(ctx, user); err != nil {
		r.logger.Error("Delete persist failed: %v", err)
		return errorsResult(Internal())
	}

	return &Result{
		Status: http.StatusNoContent,
		Body:   map[string]any{"data": map[string]any{}},
	}
}
