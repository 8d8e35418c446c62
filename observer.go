package payproc

import "go.uber.org/zap"

// Observer receives the failures a processing run skips over. Passing
// an explicit sink instead of logging from the core makes "what was
// skipped and why" observable and testable as structured events.
type Observer interface {
	// ParseFailure reports an input record that could not be parsed
	// into an activity. The record is skipped; no account is touched.
	ParseFailure(err error)

	// ActivityRejected reports an activity the account refused. The
	// activity is skipped and never retried.
	ActivityRejected(activity AccountActivity, err error)
}

// NopObserver discards all reports.
type NopObserver struct{}

func (NopObserver) ParseFailure(error)                      {}
func (NopObserver) ActivityRejected(AccountActivity, error) {}

// LogObserver reports skipped records through a zap logger: parse
// failures at error level, rejected activities at warn level.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an observer logging to the given logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) ParseFailure(err error) {
	o.logger.Error("error parsing account activity", zap.Error(err))
}

func (o *LogObserver) ActivityRejected(activity AccountActivity, err error) {
	o.logger.Warn("error processing account activity",
		zap.String("kind", string(activity.Kind())),
		zap.Uint32("transaction.id", uint32(activity.TransactionID())),
		zap.Uint16("client.id", uint16(activity.ClientID())),
		zap.Error(err),
	)
}
