package log

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// JSONFormatter writes one JSON object per entry. Entry fields sit next to
// the time, level and msg keys.
type JSONFormatter struct {
	// TimestampFormat is a time.Format layout.
	TimestampFormat string

	DisableTimestamp bool
}

// Format renders a single log entry.
func (f *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(logrus.Fields, len(entry.Data)+3)
	for k, v := range entry.Data {
		// error values have no exported fields and would encode as {}
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}

	if !f.DisableTimestamp {
		data[logrus.FieldKeyTime] = entry.Time.Format(f.TimestampFormat)
	}
	data[logrus.FieldKeyLevel] = entry.Level.String()
	data[logrus.FieldKeyMsg] = entry.Message

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
