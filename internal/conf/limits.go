package conf

// Structural names fixed by the configuration format.
const (
	// StdlogName is the mandatory name of the first output target.
	StdlogName = "stdlog"

	// GlobalContextName is the mandatory name of the first context.
	GlobalContextName = "<global>"

	// DefaultLogPath is where the built-in stdlog output points.
	DefaultLogPath = "/var/log/messages"
)

// Capacity and value bounds. These used to be fixed array sizes; they are
// now enforced as explicit capacity checks on growing slices.
const (
	// MaxOutputs bounds the number of output targets in one table.
	MaxOutputs = 16

	// MaxRulesPerContext bounds the rule list of one context.
	MaxRulesPerContext = 16

	// MaxOutputNameLen bounds output target names.
	MaxOutputNameLen = 31

	// MaxContextNameLen bounds context names.
	MaxContextNameLen = 31

	// MinLogSize and MaxLogSize clamp an output's MaxSize in bytes.
	MinLogSize = 4 * 1024
	MaxLogSize = 64 * 1024 * 1024

	// DefaultLogSize applies when an output group omits MaxSize.
	DefaultLogSize = 100 * 1024

	// MinRotations and MaxRotations clamp an output's rotation count.
	MinRotations = 1
	MaxRotations = 10

	// DefaultRotations applies when an output group omits Rotations.
	DefaultRotations = 4
)
