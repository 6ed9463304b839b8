package documents

import "strings"

// Agent is the commercial agent printed on documents.
type Agent struct {
	Name  string
	Phone string
	Email string
}

// agentDirectory is keyed by lower-cased first name.
var agentDirectory = map[string]Agent{
	"sophie": {Name: "Sophie LAMBERT", Phone: "06 12 45 78 90", Email: "sophie.lambert"},
	"thomas": {Name: "Thomas REYNAUD", Phone: "06 23 56 89 01", Email: "thomas.reynaud"},
	"nadia":  {Name: "Nadia BENALI", Phone: "06 34 67 90 12", Email: "nadia.benali"},
}

// AgentDirectory resolves commercial agents by reference.
type AgentDirectory struct {
	emailDomain string
}

// NewAgentDirectory builds a directory whose addresses live under emailDomain.
func NewAgentDirectory(emailDomain string) AgentDirectory {
	return AgentDirectory{emailDomain: strings.TrimPrefix(emailDomain, "@")}
}

// Lookup resolves an agent reference (a first name, optionally followed by a last name).
// Unknown agents keep the reference as display name, no phone, and firstname@domain.
func (d AgentDirectory) Lookup(reference string) Agent {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return Agent{}
	}
	first := strings.ToLower(strings.Fields(reference)[0])

	if agent, ok := agentDirectory[first]; ok {
		agent.Email = agent.Email + "@" + d.emailDomain
		return agent
	}
	return Agent{Name: reference, Email: first + "@" + d.emailDomain}
}
