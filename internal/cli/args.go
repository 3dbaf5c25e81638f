package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/enunezf/sqlprompt/internal/config"
	"github.com/enunezf/sqlprompt/internal/core/domain"
	"github.com/enunezf/sqlprompt/internal/core/ports"
)

const (
	hostLabel     = "host: "
	userLabel     = "username: "
	passwordLabel = "password: "
)

// separateValueFlags take their value from the following token
var separateValueFlags = map[string]bool{
	"-h": true, "--host": true,
	"-u": true, "--user": true,
	"-e": true, "--execute": true,
	"-P": true, "--port": true,
}

// normalizeArgs rewrites the password flag into a form pflag can parse.
// Its value is optional and must be attached: -p alone asks for the
// password, -pSECRET passes it. Both become --password=[SECRET]. Tokens
// consumed as another flag's value are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-p" || arg == "--password":
			out = append(out, "--password=")
		case strings.HasPrefix(arg, "-p"):
			out = append(out, "--password="+arg[2:])
		case separateValueFlags[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		default:
			out = append(out, arg)
		}
	}
	return out
}

// Invocation is what the command line said, before any prompting
type Invocation struct {
	host         string
	user         string
	password     string
	passwordMode domain.PasswordMode
	port         int
	portSet      bool
	database     string
}

func parseInvocation(flags *pflag.FlagSet, opts *options, args []string) Invocation {
	inv := Invocation{
		host:     opts.host,
		user:     opts.user,
		password: opts.password,
		port:     opts.port,
		portSet:  flags.Changed("port"),
	}

	switch {
	case !flags.Changed("password"):
		inv.passwordMode = domain.PasswordAbsent
	case opts.password == "":
		inv.passwordMode = domain.PasswordPrompt
	default:
		inv.passwordMode = domain.PasswordGiven
	}

	if len(args) > 0 {
		inv.database = args[0]
	}

	return inv
}

// ArgumentResolver completes an Invocation into connection parameters,
// filling gaps from configuration defaults and then from the user
type ArgumentResolver struct {
	prompter ports.CredentialPrompter
	defaults config.Client
}

// NewArgumentResolver creates a new argument resolver
func NewArgumentResolver(prompter ports.CredentialPrompter, defaults config.Client) *ArgumentResolver {
	return &ArgumentResolver{prompter: prompter, defaults: defaults}
}

// Resolve returns the final connection parameters. Host and user are asked
// for until non-empty; the password is asked for once, and only when the
// flag was given without a value.
func (r *ArgumentResolver) Resolve(inv Invocation) (domain.ConnectionParameters, error) {
	params := domain.NewConnectionParameters()
	params.Host = firstNonEmpty(inv.host, r.defaults.Host)
	params.User = firstNonEmpty(inv.user, r.defaults.User)
	params.Database = firstNonEmpty(inv.database, r.defaults.Database)
	params.Port = inv.port
	if !inv.portSet && r.defaults.Port > 0 {
		params.Port = r.defaults.Port
	}

	var err error
	if params.Host, err = r.require(params.Host, hostLabel); err != nil {
		return params, err
	}
	if params.User, err = r.require(params.User, userLabel); err != nil {
		return params, err
	}

	switch inv.passwordMode {
	case domain.PasswordPrompt:
		password, err := r.prompter.AskSecret(passwordLabel)
		if err != nil {
			return params, fmt.Errorf("password: %w", err)
		}
		params.Password = password
		params.HasPassword = true
	case domain.PasswordGiven:
		params.Password = inv.password
		params.HasPassword = true
	}

	return params, nil
}

// require keeps asking until the answer is non-empty. There is no retry
// limit; only end of input stops it.
func (r *ArgumentResolver) require(value, label string) (string, error) {
	for value == "" {
		answer, err := r.prompter.Ask(label)
		if err != nil {
			return "", fmt.Errorf("%s%w", label, err)
		}
		value = answer
	}
	return value, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
