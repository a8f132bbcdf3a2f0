package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/metrics"
	"github.com/dtroode/aethercure-server/internal/model"
)

const (
	subjectSignUpVerify  = "signupVerify"
	subjectPasswordReset = "resetPass"
)

// AuthOptions holds process-wide flow parameters.
type AuthOptions struct {
	FlowTTL    time.Duration
	VerifyLink string
	ResetLink  string
	Now        func() time.Time
}

// Auth drives the signup, login and password reset flows.
type Auth struct {
	userStore model.UserStore
	flowStore model.FlowStore
	hasher    model.CredentialHasher
	passcodes model.PasscodeEngine
	tokens    model.TokenManager
	notifier  model.Notifier
	metrics   metrics.Recorder
	logger    *logger.Logger
	opts      AuthOptions
}

// NewAuth creates an Auth service. Zero options fall back to model.FlowTTL
// and time.Now; a nil recorder disables metrics.
func NewAuth(
	userStore model.UserStore,
	flowStore model.FlowStore,
	hasher model.CredentialHasher,
	passcodes model.PasscodeEngine,
	tokens model.TokenManager,
	notifier model.Notifier,
	recorder metrics.Recorder,
	logger *logger.Logger,
	opts AuthOptions,
) *Auth {
	if opts.FlowTTL <= 0 {
		opts.FlowTTL = model.FlowTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Auth{
		userStore: userStore,
		flowStore: flowStore,
		hasher:    hasher,
		passcodes: passcodes,
		tokens:    tokens,
		notifier:  notifier,
		metrics:   recorder,
		logger:    logger,
		opts:      opts,
	}
}

// StartSignUp checks that email and username are free, stores a pending
// signup and sends the verification code. Returns the flow id.
func (a *Auth) StartSignUp(ctx context.Context, email, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting signup",
		"email", email,
		"username", username)

	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return "", model.NewValidationError("email, username and password are required")
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return "", model.NewConflictError("email already exists")
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", model.NewStoreUnavailableError("failed to get user by email", err)
	}

	taken, err := a.userStore.UsernameExists(ctx, username)
	if err != nil {
		a.logger.Error("Auth service: failed to check username",
			"username", username,
			"error", err.Error())
		return "", model.NewStoreUnavailableError("failed to check username", err)
	}
	if taken {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return "", model.NewConflictError("username already exists")
	}

	credential, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"error", err.Error())
		return "", model.NewFatalError("failed to hash password", err)
	}

	code, secret, err := a.passcodes.Issue()
	if err != nil {
		a.logger.Error("Auth service: failed to issue otp",
			"error", err.Error())
		return "", model.NewFatalError("failed to issue otp", err)
	}

	record := model.FlowRecord{
		ID:         uuid.NewString(),
		Kind:       model.FlowKindSignUp,
		OTPSecret:  secret,
		Email:      email,
		Username:   username,
		Credential: credential,
		ExpiresAt:  a.opts.Now().Add(a.opts.FlowTTL),
	}

	message := fmt.Sprintf("Your OTP is %s. Click this link for signup verification: %s?id=%s",
		code, a.opts.VerifyLink, record.ID)
	if err := a.startFlow(ctx, record, subjectSignUpVerify, message); err != nil {
		return "", err
	}

	a.logger.Info("Auth service: signup started",
		"email", email,
		"flow_id", record.ID)

	return record.ID, nil
}

// VerifySignUp checks the code for a pending signup and, on success, creates
// the user and signs them in. A wrong code leaves the flow in place.
func (a *Auth) VerifySignUp(ctx context.Context, flowID, code string) (model.SessionResult, error) {
	a.logger.Debug("Auth service: verifying signup",
		"flow_id", flowID)

	if flowID == "" || strings.TrimSpace(code) == "" {
		return model.SessionResult{}, model.NewValidationError("id and otp are required")
	}

	record, err := a.loadFlow(ctx, flowID, model.FlowKindSignUp)
	if err != nil {
		return model.SessionResult{}, err
	}

	if !a.passcodes.Validate(record.OTPSecret, code) {
		a.metrics.RecordFlowOutcome(string(model.FlowKindSignUp), metrics.OutcomeInvalidCode)
		a.logger.Info("Auth service: invalid otp",
			"flow_id", flowID)
		return model.SessionResult{}, model.NewInvalidCodeError()
	}

	record, err = a.consumeFlow(ctx, flowID, model.FlowKindSignUp)
	if err != nil {
		return model.SessionResult{}, err
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:         uuid.New(),
		Email:      record.Email,
		Username:   record.Username,
		Credential: record.Credential,
	})
	if err != nil {
		a.metrics.RecordFlowOutcome(string(model.FlowKindSignUp), metrics.OutcomeFailed)
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: user registered concurrently",
				"email", record.Email,
				"flow_id", flowID)
			return model.SessionResult{}, model.NewConflictError("email or username already exists")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", record.Email,
			"flow_id", flowID,
			"error", err.Error())
		return model.SessionResult{}, model.NewStoreUnavailableError("failed to create user", err)
	}

	result, err := a.session(user)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.metrics.RecordFlowOutcome(string(model.FlowKindSignUp), metrics.OutcomeSuccess)
	a.logger.Info("Auth service: signup completed",
		"user_id", user.ID,
		"flow_id", flowID)

	return result, nil
}

// Login verifies the password for email and issues a session token.
func (a *Auth) Login(ctx context.Context, email, password string) (model.SessionResult, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", email)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.SessionResult{}, model.NewValidationError("email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.metrics.RecordLogin(metrics.OutcomeNotFound)
			a.logger.Info("Auth service: login for unknown email",
				"email", email)
			return model.SessionResult{}, model.NewNotFoundError("user does not exist")
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.SessionResult{}, model.NewStoreUnavailableError("failed to get user by email", err)
	}

	if !a.hasher.Verify(password, user.Credential) {
		a.metrics.RecordLogin(metrics.OutcomeBadPassword)
		a.logger.Info("Auth service: invalid password",
			"user_id", user.ID)
		return model.SessionResult{}, model.NewInvalidCredentialError()
	}

	result, err := a.session(user)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.metrics.RecordLogin(metrics.OutcomeSuccess)
	a.logger.Info("Auth service: login succeeded",
		"user_id", user.ID)

	return result, nil
}

// StartPasswordReset sends a reset link to the account registered under email.
func (a *Auth) StartPasswordReset(ctx context.Context, email string) (string, error) {
	a.logger.Debug("Auth service: starting password reset",
		"email", email)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", model.NewValidationError("email is required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: password reset for unknown email",
				"email", email)
			return "", model.NewNotFoundError("user does not exist")
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", model.NewStoreUnavailableError("failed to get user by email", err)
	}

	return a.startReset(ctx, user)
}

// StartPasswordResetForUser sends a reset link for an authenticated user.
// email must match the account's address.
func (a *Auth) StartPasswordResetForUser(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	a.logger.Debug("Auth service: starting password reset for user",
		"user_id", userID)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", model.NewValidationError("email is required")
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.NewNotFoundError("user does not exist")
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return "", model.NewStoreUnavailableError("failed to get user by id", err)
	}

	if user.Email != email {
		a.logger.Info("Auth service: password reset email mismatch",
			"user_id", userID)
		return "", model.NewForbiddenError("forbidden")
	}

	return a.startReset(ctx, user)
}

func (a *Auth) startReset(ctx context.Context, user model.User) (string, error) {
	record := model.FlowRecord{
		ID:        uuid.NewString(),
		Kind:      model.FlowKindPasswordReset,
		Email:     user.Email,
		UserID:    user.ID,
		ExpiresAt: a.opts.Now().Add(a.opts.FlowTTL),
	}

	message := fmt.Sprintf("Click this link to reset your password: %s/%s", a.opts.ResetLink, record.ID)
	if err := a.startFlow(ctx, record, subjectPasswordReset, message); err != nil {
		return "", err
	}

	a.logger.Info("Auth service: password reset started",
		"user_id", user.ID,
		"flow_id", record.ID)

	return record.ID, nil
}

// CompletePasswordReset stores newPassword for the user of a pending reset.
// The flow is consumed only after the credential is written, so a store
// failure leaves the reset link usable for a retry.
func (a *Auth) CompletePasswordReset(ctx context.Context, flowID, newPassword string) (uuid.UUID, error) {
	a.logger.Debug("Auth service: completing password reset",
		"flow_id", flowID)

	if flowID == "" || newPassword == "" {
		return uuid.Nil, model.NewValidationError("reset id and new password are required")
	}

	record, err := a.loadFlow(ctx, flowID, model.FlowKindPasswordReset)
	if err != nil {
		return uuid.Nil, err
	}

	credential, err := a.hasher.Hash(newPassword)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"error", err.Error())
		return uuid.Nil, model.NewFatalError("failed to hash password", err)
	}

	if _, err := a.userStore.UpdateCredential(ctx, record.UserID, credential); err != nil {
		a.metrics.RecordFlowOutcome(string(model.FlowKindPasswordReset), metrics.OutcomeFailed)
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.NewNotFoundError("user does not exist")
		}
		a.logger.Error("Auth service: failed to update credential",
			"user_id", record.UserID,
			"error", err.Error())
		return uuid.Nil, model.NewStoreUnavailableError("failed to update password", err)
	}

	if _, err := a.consumeFlow(ctx, flowID, model.FlowKindPasswordReset); err != nil {
		return uuid.Nil, err
	}

	a.metrics.RecordFlowOutcome(string(model.FlowKindPasswordReset), metrics.OutcomeSuccess)
	a.logger.Info("Auth service: password reset completed",
		"user_id", record.UserID,
		"flow_id", flowID)

	return record.UserID, nil
}

// VerifyToken checks a session token. Expired and otherwise invalid tokens
// are reported with different kinds.
func (a *Auth) VerifyToken(_ context.Context, token string) (model.Claims, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			return model.Claims{}, model.NewExpiredError("token expired")
		}
		return model.Claims{}, &model.Error{Kind: model.KindInvalidCredential, Message: "invalid token", Err: err}
	}
	return claims, nil
}

// startFlow stores record, then notifies. A flow whose message could not be
// delivered is removed again.
func (a *Auth) startFlow(ctx context.Context, record model.FlowRecord, subject, message string) error {
	if err := a.flowStore.Put(ctx, record, a.opts.FlowTTL); err != nil {
		a.logger.Error("Auth service: failed to store flow",
			"flow_id", record.ID,
			"kind", record.Kind,
			"error", err.Error())
		return model.NewStoreUnavailableError("failed to store flow", err)
	}

	if err := a.notifier.Send(ctx, record.Email, subject, message); err != nil {
		a.logger.Error("Auth service: failed to send notification",
			"email", record.Email,
			"flow_id", record.ID,
			"error", err.Error())
		if delErr := a.flowStore.Delete(ctx, record.ID); delErr != nil {
			a.logger.Error("Auth service: failed to drop undelivered flow",
				"flow_id", record.ID,
				"error", delErr.Error())
		}
		return model.NewStoreUnavailableError("failed to send email", err)
	}

	a.metrics.RecordFlowStarted(string(record.Kind))
	return nil
}

func (a *Auth) loadFlow(ctx context.Context, flowID string, kind model.FlowKind) (model.FlowRecord, error) {
	record, err := a.flowStore.Get(ctx, flowID)
	if err == nil && record.Kind != kind {
		err = model.ErrNotFound
	}
	return record, a.flowError(flowID, kind, err)
}

func (a *Auth) consumeFlow(ctx context.Context, flowID string, kind model.FlowKind) (model.FlowRecord, error) {
	record, err := a.flowStore.Consume(ctx, flowID)
	return record, a.flowError(flowID, kind, err)
}

func (a *Auth) flowError(flowID string, kind model.FlowKind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) {
		a.metrics.RecordFlowOutcome(string(kind), metrics.OutcomeExpired)
		a.logger.Info("Auth service: flow expired or not found",
			"flow_id", flowID,
			"kind", kind)
		return model.NewExpiredError("session expired or not found")
	}
	a.logger.Error("Auth service: failed to load flow",
		"flow_id", flowID,
		"error", err.Error())
	return model.NewStoreUnavailableError("failed to load flow", err)
}

func (a *Auth) session(user model.User) (model.SessionResult, error) {
	token, err := a.tokens.Issue(model.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.SessionResult{}, model.NewFatalError("failed to issue token", err)
	}
	return model.SessionResult{UserID: user.ID, Token: token}, nil
}
