package download

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/ytget/ytdlp/errs"
)

// librarySentinels are the causes ytdlp reports for videos it cannot fetch
var librarySentinels = []error{
	errs.ErrPrivate,
	errs.ErrVideoUnavailable,
	errs.ErrAgeRestricted,
	errs.ErrGeoBlocked,
	errs.ErrRateLimited,
	errs.ErrCipherFailed,
}

// FailureReason names the ytdlp sentinel behind err, or "other"
func FailureReason(err error) string {
	sentinel, ok := lo.Find(librarySentinels, func(s error) bool {
		return errors.Is(err, s)
	})
	if !ok {
		return "other"
	}
	return sentinel.Error()
}

// AttemptError is the failure of one player client
type AttemptError struct {
	Client string
	Err    error
}

// AttemptsError is returned when every player client failed. errors.Is and
// errors.As see each attempt's cause.
type AttemptsError struct {
	Attempts []AttemptError
}

func (e *AttemptsError) Error() string {
	if len(e.Attempts) == 0 {
		return "no player clients configured"
	}
	parts := lo.Map(e.Attempts, func(a AttemptError, _ int) string {
		return a.Client + ": " + a.Err.Error()
	})
	return "all player clients failed (" + strings.Join(parts, "; ") + ")"
}

func (e *AttemptsError) Unwrap() []error {
	return lo.Map(e.Attempts, func(a AttemptError, _ int) error {
		return a.Err
	})
}
