// Package namemap translates external agent identifiers into the canonical
// names used by the internal identity store. The call-center platform and the
// CRM were provisioned independently, so agent names diverge: the platform
// holds romanized or nickname forms while the ledger keys on canonical full
// names.
package namemap

import (
	"strings"

	"golang.org/x/text/width"
)

// Mapper resolves external agent names against an injected alias table.
type Mapper struct {
	aliases map[string]string
}

// New creates a Mapper from an alias table mapping external agent names to
// canonical internal names. The table is copied; keys are width-folded so
// full-width romanized names match their ASCII aliases.
func New(aliases map[string]string) *Mapper {
	m := &Mapper{aliases: make(map[string]string, len(aliases))}
	for external, canonical := range aliases {
		m.aliases[foldKey(external)] = canonical
	}
	return m
}

// Resolve returns the canonical internal name for an external agent name.
// Unknown names fall through unchanged (trimmed), so agents whose platform
// name already matches their canonical name need no alias entry.
func (m *Mapper) Resolve(externalName string) string {
	trimmed := strings.TrimSpace(externalName)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := m.aliases[foldKey(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Len reports the number of configured aliases.
func (m *Mapper) Len() int {
	return len(m.aliases)
}

func foldKey(name string) string {
	return width.Fold.String(strings.TrimSpace(name))
}
