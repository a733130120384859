package usecases

import (
	"context"

	"inkletter/internal/domain/newsletter"
	"inkletter/internal/shared/logger"
)

type mockRepository struct {
	findByEmailFn   func(ctx context.Context, email string) (*newsletter.Subscription, error)
	createFn        func(ctx context.Context, sub *newsletter.Subscription) error
	updateFn        func(ctx context.Context, sub *newsletter.Subscription) error
	markConfirmedFn func(ctx context.Context, sub *newsletter.Subscription) error

	created   []*newsletter.Subscription
	updated   []*newsletter.Subscription
	confirmed []*newsletter.Subscription
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*newsletter.Subscription, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockRepository) Create(ctx context.Context, sub *newsletter.Subscription) error {
	m.created = append(m.created, sub)
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return sub.SetID(uint(len(m.created)))
}

func (m *mockRepository) Update(ctx context.Context, sub *newsletter.Subscription) error {
	m.updated = append(m.updated, sub)
	if m.updateFn != nil {
		return m.updateFn(ctx, sub)
	}
	return nil
}

func (m *mockRepository) MarkConfirmed(ctx context.Context, sub *newsletter.Subscription) error {
	m.confirmed = append(m.confirmed, sub)
	if m.markConfirmedFn != nil {
		return m.markConfirmedFn(ctx, sub)
	}
	return nil
}

type sentMail struct {
	to     string
	locale string
	code   string
	token  string
}

type mockMailer struct {
	sendErr error
	sent    []sentMail
}

func (m *mockMailer) SendConfirmationEmail(to, locale, code, activationToken string) error {
	m.sent = append(m.sent, sentMail{to: to, locale: locale, code: code, token: activationToken})
	return m.sendErr
}

type mockAttemptLimiter struct {
	blocked  bool
	failures []string
	resets   []string
}

func (m *mockAttemptLimiter) Allowed(ctx context.Context, email string) (bool, error) {
	return !m.blocked, nil
}

func (m *mockAttemptLimiter) RecordFailure(ctx context.Context, email string) error {
	m.failures = append(m.failures, email)
	return nil
}

func (m *mockAttemptLimiter) Reset(ctx context.Context, email string) error {
	m.resets = append(m.resets, email)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                       {}
func (nopLogger) Info(msg string, args ...any)                        {}
func (nopLogger) Warn(msg string, args ...any)                        {}
func (nopLogger) Error(msg string, args ...any)                       {}
func (l nopLogger) With(args ...any) logger.Interface                 { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})     {}
