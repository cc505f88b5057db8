package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// LineFormatter renders "timestamp, LEVEL, message" followed by sorted fields.
type LineFormatter struct {
	TimestampFormat string
}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02 15:04:05"
	}
	b.WriteString(entry.Time.Format(layout))
	b.WriteString(", ")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString(", ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := entry.Data[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		fmt.Fprintf(&b, " %s=%v", k, v)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
