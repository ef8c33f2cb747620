package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexusai-site/internal/domain"
	leadrepo "nexusai-site/internal/repository/lead"
)

const (
	MissingFieldsMessage = "Missing required fields"
	InvalidFieldsMessage = "Invalid form fields"
	SuccessMessage       = "Your message has been sent successfully! We'll get back to you soon."
)

// Input is the contact form payload as posted by the site.
type Input struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Subject string `json:"subject" validate:"min=3"`
	Message string `json:"message" validate:"min=10"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Service string `json:"service,omitempty"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"-"`
}

// ValidationError reports which fields rejected the submission.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range requiredFields {
		if _, ok := e.Fields[f]; ok {
			names = append(names, f)
		}
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(names, ", "))
}

var requiredFields = []string{"name", "email", "subject", "message"}

type Options struct {
	// Strict enforces the site form schema on top of the required-field check.
	Strict bool
	// Store persists accepted submissions when set.
	Store  leadrepo.Repository
	Logger *zap.Logger
	Now    func() time.Time
}

type Service struct {
	strict   bool
	store    leadrepo.Repository
	logger   *zap.Logger
	now      func() time.Time
	validate *validator.Validate
}

func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		strict:   opts.Strict,
		store:    opts.Store,
		logger:   logger.Named("contact"),
		now:      now,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit validates in and records it. Validation failures are *ValidationError;
// any other error means the submission could not be recorded.
func (s *Service) Submit(ctx context.Context, in Input) (*Result, error) {
	in = normalize(in)

	if missing := missingFields(in); len(missing) > 0 {
		return nil, &ValidationError{Message: MissingFieldsMessage, Fields: missing}
	}
	if s.strict {
		if err := s.checkSchema(in); err != nil {
			return nil, err
		}
	}

	sub := domain.ContactSubmission{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Subject:    in.Subject,
		Message:    in.Message,
		Phone:      in.Phone,
		Company:    in.Company,
		Service:    in.Service,
		ReceivedAt: s.now().UTC(),
	}

	s.logger.Info("contact form submission",
		zap.String("id", sub.ID),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject),
		zap.String("company", sub.Company),
		zap.String("service", sub.Service),
		zap.Int("message_len", len(sub.Message)),
	)

	if s.store != nil {
		if err := s.store.Create(ctx, sub); err != nil {
			s.logger.Error("store submission", zap.String("id", sub.ID), zap.Error(err))
			return nil, fmt.Errorf("store submission: %w", err)
		}
	}

	return &Result{Success: true, Message: SuccessMessage, ID: sub.ID}, nil
}

func (s *Service) checkSchema(in Input) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = fieldMessage(name, fe)
	}
	return &ValidationError{Message: InvalidFieldsMessage, Fields: fields}
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", titleField(name), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", titleField(name))
	}
}

func titleField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func normalize(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Service = strings.TrimSpace(in.Service)
	return in
}

func missingFields(in Input) map[string]string {
	values := map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"subject": in.Subject,
		"message": in.Message,
	}
	var missing map[string]string
	for _, f := range requiredFields {
		if values[f] != "" {
			continue
		}
		if missing == nil {
			missing = make(map[string]string)
		}
		missing[f] = "required"
	}
	return missing
}
