package accessor

import (
	"github.com/rs/zerolog/log"

	"github.com/tansive/hecate/internal/authrules"
	"github.com/tansive/hecate/internal/prompt"
)

// requiredFields decides what to ask for before calling ep.
func (a *Accessor) requiredFields(ep Endpoint) []prompt.Field {
	if ep.CheckCredentialsFirst && a.conn.Credentials != nil {
		return nil
	}
	return authrules.RequiredFields(a.conn.HasCredentials(), a.conn.Rules, ep.RuleKey)
}

// resolve prompts for credentials when ep needs them and none are held. An
// empty username leaves the context untouched. The prompt is always stopped
// once started.
func (a *Accessor) resolve(ep Endpoint) error {
	fields := a.requiredFields(ep)
	if len(fields) == 0 {
		log.Debug().Str("endpoint", ep.Name).Msg("no credentials required")
		return nil
	}

	defer a.prompter.Stop()
	if err := a.prompter.Start(a.promptOut, PromptLabel); err != nil {
		return &PromptError{Err: err}
	}
	values, err := a.prompter.Get(fields)
	if err != nil {
		return &PromptError{Err: err}
	}

	username := values[authrules.FieldUsername]
	if username == "" {
		log.Debug().Str("endpoint", ep.Name).Msg("credentials skipped")
		return nil
	}
	a.conn.Credentials = &Credentials{
		Username: username,
		Password: values[authrules.FieldPassword],
	}
	log.Debug().Str("endpoint", ep.Name).Str("username", username).Msg("credentials resolved")
	return nil
}
