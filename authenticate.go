package users

import (
	"context"
	"net/http"
)

// credentialMismatchDetail is the one detail every failed sign in gets. An
// unknown email and a wrong password are indistinguishable on the wire so
// the endpoint can not be used to enumerate accounts.
const credentialMismatchDetail = "We haven't found that combination of email and password. Check the credentials again and let us know."

// Auther runs the authentication pipeline: envelope and credential
// validation, hash verification and token issuance.
type Auther struct {
	store  UserStore
	hasher Hasher
	tokens TokenService
	logger Logger
}

// NewAuther creates an Auther on top of the given collaborators.
func NewAuther(store UserStore, hasher Hasher, tokens TokenService) *Auther {
	return &Auther{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: defLogger{},
	}
}

// WithLogger replaces the logger.
func (a *Auther) WithLogger(logger Logger) *Auther {
	a.logger = logger
	return a
}

// Authenticate verifies the submitted credentials and issues an access
// token. Exactly one terminal Result per call.
func (a *Auther) Authenticate(ctx context.Context, body []byte) *Result {
	env, envErr := ParseEnvelope(body)
	if envErr != nil {
		return errorsResult(envErr)
	}

	email, emailErr := ValidateEmail(env.Attr("email"))
	passwordErr := ValidatePassword(env.Attr("password"))

	var fieldErrs []*Error
	if emailErr != nil {
		fieldErrs = append(fieldErrs, emailErr)
	}
	if passwordErr != nil {
		fieldErrs = append(fieldErrs, passwordErr)
	}
	if len(fieldErrs) > 0 {
		return errorsResult(fieldErrs...)
	}

	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		a.logger.Error("Authenticate credential lookup failed: %v", err)
		return errorsResult(Internal())
	}

	if user == nil {
		return errorsResult(NotFound("", credentialMismatchDetail))
	}

	match, err := a.hasher.Verify(env.Attr("password").Value, user.PasswordHash)
	if err != nil {
		a.logger.Error("Authenticate hash verification failed: %v", err)
		return errorsResult(Internal())
	}
	if !match {
		return errorsResult(NotFound("", credentialMismatchDetail))
	}

	// Best effort: a failed sign-in timestamp must not fail the login.
	if err := a.store.TrackSuccessfulLogin(ctx, user); err != nil {
		a.logger.Error("Authenticate failed to track sign in: %v", err)
	}

	token, err := a.tokens.Issue(user.Username, user.Email)
	if err != nil {
		a.logger.Error("Authenticate token issuance failed: %v", err)
		return errorsResult(Internal())
	}

	return &Result{
		Status: http.StatusOK,
		Body: ResourceDocument{Data: &Resource{
			ID:         user.Username,
			Type:       ResourceType,
			Attributes: map[string]any{"token": token},
		}},
	}
}
