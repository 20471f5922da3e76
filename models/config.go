package models

// ExtractConfig holds runtime configuration for one extract invocation.
// All values come from CLI flags, not external config files.
type ExtractConfig struct {
	Source   string // file path, URL, or "stdin"
	Output   OutputMode
	Format   string // json or yaml for structured output
	Archive  bool
	Keywords int // top-N keywords to report; 0 disables
}
