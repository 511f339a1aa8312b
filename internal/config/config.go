package config

// Core configuration constants that define the defaults and boundaries of
// a render run.
const (
	DefaultLogLevel    = "info"
	DefaultSize        = 800   // frame width and height in pixels
	DefaultPoints      = 360   // working set size
	DefaultFPS         = 60    // output frame rate
	DefaultSampleRate  = 44100 // CD-quality audio
	DefaultMinHz       = 20    // pitch of index 0
	DefaultMaxHz       = 1000  // pitch ceiling
	DefaultSilence     = SilenceEmit
	DefaultSeed        = "0"
	DefaultShuffle     = "fast"
	DefaultWaitSeconds = 1 // pause between stages when running every sort

	// Limits
	MinSampleRate = 8000
	MaxSampleRate = 192000
	MaxSize       = 8192
)

// Silence policies for frames without any exchange.
const (
	SilenceEmit = "emit" // write a slice of zero samples
	SilenceSkip = "skip" // write nothing
)

// Config holds all runtime options. It is built from defaults, an optional
// YAML file, ENV_* overrides and finally command line flags.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Video     VideoConfig     `yaml:"video"`
	Audio     AudioConfig     `yaml:"audio"`
	Sort      SortConfig      `yaml:"sort"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Command is a one-off command chosen on the command line ("list").
	Command string `yaml:"-"`
}

// VideoConfig describes the frame stream.
type VideoConfig struct {
	Size   int `yaml:"size"`   // frame edge length in pixels
	Points int `yaml:"points"` // number of elements on the ring
	FPS    int `yaml:"fps"`    // frames per second, sets audio slice length
}

// AudioConfig describes the optional WAV output.
type AudioConfig struct {
	Output     string  `yaml:"output"`      // file path; empty disables audio
	SampleRate int     `yaml:"sample_rate"` // Hz
	MinHz      float64 `yaml:"min_hz"`
	MaxHz      float64 `yaml:"max_hz"`
	Finalize   bool    `yaml:"finalize"` // patch WAV lengths on close
	Silence    string  `yaml:"silence"`  // "emit" or "skip"
}

// SortConfig describes the run plan.
type SortConfig struct {
	Seed        string   `yaml:"seed"`         // 64-bit hex shuffle seed
	Algorithms  []string `yaml:"algorithms"`   // ids or names, in order; empty runs all
	Shuffle     string   `yaml:"shuffle"`      // "full", "fast" or "quiet"
	PauseFrames int      `yaml:"pause_frames"` // idle frames after each explicit stage
	WaitSeconds int      `yaml:"wait_seconds"` // idle time after each stage of a full run
}

// TelemetryConfig selects where per-frame reports go. All are optional.
type TelemetryConfig struct {
	Log           bool   `yaml:"log"`            // debug log every frame
	WebSocketAddr string `yaml:"websocket_addr"` // e.g. ":8080"
	UDPTarget     string `yaml:"udp_target"`     // e.g. "127.0.0.1:9090"
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Video: VideoConfig{
			Size:   DefaultSize,
			Points: DefaultPoints,
			FPS:    DefaultFPS,
		},
		Audio: AudioConfig{
			SampleRate: DefaultSampleRate,
			MinHz:      DefaultMinHz,
			MaxHz:      DefaultMaxHz,
			Silence:    DefaultSilence,
		},
		Sort: SortConfig{
			Seed:        DefaultSeed,
			Shuffle:     DefaultShuffle,
			WaitSeconds: DefaultWaitSeconds,
		},
	}
}
