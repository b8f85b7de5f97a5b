package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
)

var (
	file   *os.File
	stderr io.Writer = os.Stderr
	level            = log.InfoLevel
)

var levelColors = map[log.Level]func(string, ...interface{}) string{
	log.DebugLevel: color.HiBlackString,
	log.InfoLevel:  color.BlueString,
	log.WarnLevel:  color.YellowString,
	log.ErrorLevel: color.RedString,
	log.FatalLevel: color.RedString,
}

// SetDebug turns debug logging to STDERR on or off.
//
// The log file always receives debug-level entries.
func SetDebug(debug bool) {
	// This sets `level` rather than calling `log.SetLevel`, which would filter
	// entries before they reach the handler and the log file.
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// File returns the log file name, or "" if no log file could be opened.
func File() string {
	if file == nil {
		return ""
	}
	return file.Name()
}

// Handler handles log entries. It multiplexes them into two outputs, writing
// human-readable messages to STDERR and machine-readable entries to a log file.
func Handler(entry *log.Entry) error {
	if entry.Level >= level {
		if useSpinner {
			s.Stop()
			defer s.Start()
		}
		fmt.Fprintln(stderr, format(entry))
	}

	if file == nil {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

func format(entry *log.Entry) string {
	name := strings.ToUpper(entry.Level.String())
	if paint, ok := levelColors[entry.Level]; ok {
		name = paint("%s", name)
	}
	msg := name + " " + entry.Message
	if level > log.DebugLevel || len(entry.Fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msg += fmt.Sprintf(" %s=%v", color.HiBlackString(k), entry.Fields[k])
	}
	return msg
}
