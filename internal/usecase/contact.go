package usecase

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"viang-solution-backend/internal/domain"
	"viang-solution-backend/pkg/logger"
	"viang-solution-backend/pkg/validation"
)

// Options are the pipeline variants that differ between deployments.
type Options struct {
	// RequirePhone makes the phone field mandatory on submissions.
	RequirePhone bool
	// SendConfirmation also mails an acknowledgement to the submitter.
	SendConfirmation bool
}

type contactUsecase struct {
	validate *validator.Validate
	verifier domain.TokenVerifier
	mailer   domain.ContactMailer
	opts     Options
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(validate *validator.Validate, verifier domain.TokenVerifier, mailer domain.ContactMailer, opts Options) domain.ContactUsecase {
	return &contactUsecase{
		validate: validate,
		verifier: verifier,
		mailer:   mailer,
		opts:     opts,
	}
}

// Submit runs the relay pipeline in order, short-circuiting on the first
// failure: field validation, token verification, mail dispatch. No mail is
// ever sent after a rejection and nothing is retried.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) error {
	req.Normalize()

	if err := uc.validateFields(req); err != nil {
		return err
	}

	if !uc.mailer.IsConfigured() {
		return domain.ErrMailerNotConfigured
	}

	if !uc.verifier.Verify(ctx, req.Token) {
		return domain.ErrVerificationFailed
	}

	return uc.dispatch(req)
}

func (uc *contactUsecase) validateFields(req *domain.ContactRequest) error {
	fields := map[string]string{}

	if err := uc.validate.Struct(req); err != nil {
		fields = validation.FieldErrors(err)
	}
	if uc.opts.RequirePhone && req.Phone == "" {
		fields["phone"] = "This field is required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// dispatch sends the notification and, when enabled, the confirmation. The
// two sends are independent and run concurrently; both are awaited before
// responding. A confirmation failure alone is logged as a partial failure
// but does not fail the submission.
func (uc *contactUsecase) dispatch(req *domain.ContactRequest) error {
	var (
		wg        sync.WaitGroup
		notifErr  error
		confErr   error
		confirmed = uc.opts.SendConfirmation
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		notifErr = uc.mailer.SendNotification(req)
	}()

	if confirmed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			confErr = uc.mailer.SendConfirmation(req)
		}()
	}
	wg.Wait()

	switch {
	case notifErr != nil && confErr != nil:
		logger.Log.Error("both contact emails failed", "notification_error", notifErr, "confirmation_error", confErr)
	case notifErr != nil:
		logger.Log.Error("notification email failed", "error", notifErr)
	case confErr != nil:
		logger.Log.Warn("confirmation email failed, notification delivered", "error", confErr)
	default:
		logger.Log.Info("contact emails dispatched", "confirmation", confirmed)
	}

	if notifErr != nil {
		return &domain.MailError{Err: notifErr}
	}
	return nil
}
