package consts

const (
	RiseTime   = 1.0             // Edge padding between two levels (us)
	TimeGrid   = 15.0            // AC timing quantum (us)
	MicroScale = 1e6             // Seconds to microseconds
	MaxValue   = 3.0             // High level of a binary trace channel
	TimeUnit   = "u"             // Suffix written after each breakpoint time
	Marker     = "Python Script" // Netlist text holding the phase table
	MinPhases  = 6               // start, pw, dt0, rpw, dt1, gap
)

// Scripts carry either the four base channels or the full set.
const (
	BaseChannels = 4
	AllChannels  = 8
)

// Channel labels in script column order.
var Channels = []string{
	"dac_en",
	"amp_sel",
	"rebal1",
	"rebal2",
	"ie_en",
	"cap_byp",
	"pw_amp",
	"rpw_amp",
}
