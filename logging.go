package sgmlcode

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vippsas/sgmlcode/event"
)

// ParseWithLogger parses text exactly as Parse does, additionally emitting
// a single structured Debug-level log line through logger carrying a
// parse_id correlating this call's own log lines (and any the caller adds
// around it) in a batch run over many documents. The parser itself never
// logs; only this facade wrapper does.
func ParseWithLogger(text string, logger logrus.FieldLogger) (*event.Fragment, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"component": "sgmlcode",
		"parse_id":  id.String(),
		"bytes":     len(text),
	}

	fragment, err := Parse(text)
	if err != nil {
		logger.WithFields(fields).WithError(err).Debug("parse failed")
		return nil, err
	}

	fields["events"] = fragment.Len()
	logger.WithFields(fields).Debug("parsed fragment")
	return fragment, nil
}
