package accessor

// Mode selects how a call obtains credentials and where its result goes.
type Mode int

const (
	// ModeProgrammatic hands (err, result) to the caller's callback and never
	// prompts. It is the zero value.
	ModeProgrammatic Mode = iota
	// ModeScripted prints the result to stdout without prompting.
	ModeScripted
	// ModeInteractive prompts for missing credentials, then prints the result.
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeScripted:
		return "scripted"
	case ModeInteractive:
		return "interactive"
	default:
		return "programmatic"
	}
}

// Options are the per-call invocation options. A nil *Options is valid.
type Options struct {
	Mode Mode
}

type strategy struct {
	mode    Mode
	prompt  bool // resolve credentials through the prompter first
	console bool // print to stdout and return the error instead of calling back
}

// selectStrategy normalizes opts. Missing options and unrecognized modes
// fall back to programmatic delivery.
func selectStrategy(opts *Options) strategy {
	if opts == nil {
		return strategy{mode: ModeProgrammatic}
	}
	switch opts.Mode {
	case ModeScripted:
		return strategy{mode: ModeScripted, console: true}
	case ModeInteractive:
		return strategy{mode: ModeInteractive, prompt: true, console: true}
	default:
		return strategy{mode: ModeProgrammatic}
	}
}
