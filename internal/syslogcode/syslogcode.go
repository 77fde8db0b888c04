// Package syslogcode maps syslog facility and severity names to their
// numeric codes. The vocabulary is fixed; unknown names are rejected rather
// than defaulted so that configuration typos surface as errors.
package syslogcode

// Severity codes follow RFC 5424 numbering (0 = most severe).
const (
	LevelNone      = -1 // sentinel: no level / any level
	LevelEmergency = 0
	LevelAlert     = 1
	LevelCritical  = 2
	LevelError     = 3
	LevelWarning   = 4
	LevelNotice    = 5
	LevelInfo      = 6
	LevelDebug     = 7
)

// FacilityAny is the sentinel for rules that match every facility.
const FacilityAny = -1

var levelByName = map[string]int{
	"none":    LevelNone,
	"emerg":   LevelEmergency,
	"alert":   LevelAlert,
	"crit":    LevelCritical,
	"err":     LevelError,
	"warning": LevelWarning,
	"notice":  LevelNotice,
	"info":    LevelInfo,
	"debug":   LevelDebug,
}

var levelNames = map[int]string{
	LevelNone:      "none",
	LevelEmergency: "emerg",
	LevelAlert:     "alert",
	LevelCritical:  "crit",
	LevelError:     "err",
	LevelWarning:   "warning",
	LevelNotice:    "notice",
	LevelInfo:      "info",
	LevelDebug:     "debug",
}

var facilityByName = map[string]int{
	"kern":     0,
	"user":     1,
	"mail":     2,
	"daemon":   3,
	"auth":     4,
	"syslog":   5,
	"lpr":      6,
	"news":     7,
	"uucp":     8,
	"cron":     9,
	"authpriv": 10,
	"ftp":      11,
	"local0":   16,
	"local1":   17,
	"local2":   18,
	"local3":   19,
	"local4":   20,
	"local5":   21,
	"local6":   22,
	"local7":   23,
}

var facilityNames = func() map[int]string {
	m := make(map[int]string, len(facilityByName))
	for name, code := range facilityByName {
		m[code] = name
	}
	return m
}()

// Level resolves a severity name ("emerg".."debug", plus "none" for the -1
// sentinel) to its numeric code.
func Level(name string) (int, bool) {
	code, ok := levelByName[name]
	return code, ok
}

// LevelName returns the canonical name for a severity code, or "" if the
// code is out of vocabulary.
func LevelName(code int) string {
	return levelNames[code]
}

// Facility resolves a facility name ("kern".."local7") to its numeric code.
func Facility(name string) (int, bool) {
	code, ok := facilityByName[name]
	return code, ok
}

// FacilityName returns the canonical name for a facility code, or "" if the
// code is out of vocabulary.
func FacilityName(code int) string {
	return facilityNames[code]
}
