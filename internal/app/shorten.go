package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/five82/snip/internal/logging"
	"github.com/five82/snip/internal/shortener"
	"github.com/five82/snip/internal/submission"
)

// FailureError is a failed shorten. Error returns only the user-facing
// message; the underlying cause stays reachable through Unwrap.
type FailureError struct {
	Failure submission.Failure
	Err     error
}

func (e *FailureError) Error() string {
	return e.Failure.Message
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// Shorten submits rawURL once without the terminal UI and writes the short
// URL to out.
func Shorten(ctx context.Context, opts Options, rawURL string, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, "")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := newClient(cfg, opts, logger, shortener.WithTimeout(cfg.ShortenTimeout()))
	if err != nil {
		return err
	}

	short, err := shortenOnce(ctx, client, cfg.ShortDomain, rawURL, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, short)
	return err
}

// shortenOnce drives a single submission through the same state machine the
// UI uses.
func shortenOnce(ctx context.Context, s shortener.Shortener, shortDomain, rawURL string, logger *zap.Logger) (string, error) {
	state := submission.New(shortDomain)
	state, _ = submission.Reduce(state, submission.InputChanged{Value: rawURL})

	state, effect := submission.Reduce(state, submission.SubmitRequested{})
	submit, ok := effect.(submission.SubmitEffect)
	if !ok {
		return "", submission.ErrInvalidURL
	}

	token, err := s.Shorten(ctx, submit.URL)
	if err != nil {
		logger.Warn("shorten request failed", zap.String("url", submit.URL), zap.Error(err))
		state, _ = submission.Reduce(state, submission.SubmissionFailed{Seq: submit.Seq, Err: err})
		return "", &FailureError{Failure: state.Failure, Err: err}
	}

	state, _ = submission.Reduce(state, submission.SubmissionSucceeded{Seq: submit.Seq, Token: token})
	return state.Result.Value, nil
}
