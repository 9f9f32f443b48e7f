package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
	"github.com/mailvalid/mailvalid/pkg/logger"
	"github.com/mailvalid/mailvalid/pkg/record"
	"github.com/mailvalid/mailvalid/pkg/validator"
)

// Service registers users.
type Service struct {
	repo    Repository
	tr      record.Translator
	matcher *emailsyntax.Matcher
	log     *slog.Logger
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMatcher checks emails with m instead of the default grammar, e.g. a
// matcher enforcing RFC 5321 length limits.
func WithMatcher(m *emailsyntax.Matcher) ServiceOption {
	return func(s *Service) {
		s.matcher = m
	}
}

// WithClock replaces time.Now for CreatedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, tr record.Translator, opts ...ServiceOption) *Service {
	s := &Service{repo: repo, tr: tr, log: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates email and stores a new user. Validation failures,
// including an email that is already taken, are returned as record.Errors
// with messages in the locale of ctx.
func (s *Service) Register(ctx context.Context, email string) (User, error) {
	u := User{Email: email}
	if errs := record.Validate(ctx, s.tr, matchedUser{user: u, matcher: s.matcher}); !errs.IsEmpty() {
		s.log.DebugContext(ctx, "Registration rejected", logger.Email(email), slog.Any("fields", errs.Fields()))
		return User{}, errs
	}

	id, err := uuid.NewV7()
	if err != nil {
		return User{}, err
	}
	u.ID = id
	u.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			s.log.DebugContext(ctx, "Registration rejected", logger.Email(email), logger.Reason(MessageTaken))
			return User{}, record.Translate(ctx, s.tr, validator.ValidationErrors{takenError()})
		}
		s.log.ErrorContext(ctx, "Failed to store user", logger.Error(err))
		return User{}, err
	}

	s.log.InfoContext(ctx, "User registered", logger.UserID(u.ID), logger.Email(email))
	return u, nil
}

// Get returns the user with id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}
