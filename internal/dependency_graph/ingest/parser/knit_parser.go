package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Document is a knit.json dump keyed by class name ("knit/demo/AuditLogger").
type Document map[string]ClassEntry

type ClassEntry struct {
	Parent     []string             `json:"parent,omitempty"`
	Providers  []ProviderEntry      `json:"providers,omitempty"`
	Composite  map[string]string    `json:"composite,omitempty"`
	Injections map[string]Injection `json:"injections,omitempty"`
}

// ProviderEntry.Provider has the form "Owner.<init> -> ProvidedType".
type ProviderEntry struct {
	Provider   string   `json:"provider"`
	Parameters []string `json:"parameters,omitempty"`
}

// Injection is one node of the injection tree. MethodID has the form
// "Owner.<init> -> Type (STATUS)".
type Injection struct {
	MethodID   string      `json:"methodId,omitempty"`
	Parameters []Injection `json:"parameters,omitempty"`
}

// UnmarshalJSON accepts an injection object or a bare list of injections.
// Entries that are neither (plain strings in parameter lists) are dropped.
func (in *Injection) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '[':
		list, err := decodeInjectionList(b)
		if err != nil {
			return err
		}
		*in = Injection{Parameters: list}
		return nil
	case '{':
		var raw struct {
			MethodID   string          `json:"methodId"`
			Parameters json.RawMessage `json:"parameters"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := Injection{MethodID: raw.MethodID}
		if len(raw.Parameters) > 0 {
			list, err := decodeInjectionList(raw.Parameters)
			if err != nil {
				return err
			}
			out.Parameters = list
		}
		*in = out
		return nil
	}
	*in = Injection{}
	return nil
}

func decodeInjectionList(b []byte) ([]Injection, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		// a scalar where a list was expected carries nothing we use
		return nil, nil
	}
	var out []Injection
	for _, r := range raws {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || (r[0] != '{' && r[0] != '[') {
			continue
		}
		var child Injection
		if err := json.Unmarshal(r, &child); err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// Target returns the injected type and its status, if any.
func (in Injection) Target() (name string, status string, ok bool) {
	i := strings.LastIndex(in.MethodID, "->")
	if i < 0 {
		return "", "", false
	}
	right := strings.TrimSpace(in.MethodID[i+2:])
	if open := strings.Index(right, " ("); open >= 0 {
		status = strings.TrimSpace(strings.TrimSuffix(right[open+2:], ")"))
		right = strings.TrimSpace(right[:open])
	}
	if f := strings.Fields(right); len(f) > 0 {
		right = f[0]
	}
	if right == "" {
		return "", "", false
	}
	return right, status, true
}

// ProvidedType is the right-hand side of the provider signature.
func (p ProviderEntry) ProvidedType() string {
	parts := strings.Split(p.Provider, "->")
	return strings.TrimSpace(parts[len(parts)-1])
}

// HasProviders reports whether the class is registered as a provider.
func (c ClassEntry) HasProviders() bool { return len(c.Providers) > 0 }

// Names returns the class names in sorted order.
func (d Document) Names() []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func ParseJSON(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse knit document: %w", err)
	}
	return d, nil
}

func ParseJSONString(s string) (Document, error) {
	return ParseJSONBytes([]byte(s))
}
