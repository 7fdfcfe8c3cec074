package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// UnselectedTypeValue is the DocumentType value meaning "no selection".
// It never triggers a downstream request.
const UnselectedTypeValue = "0"

// UnselectedTypeLabel is the label shown for the unselected option
const UnselectedTypeLabel = "--Select--"

// Design statuses seen in practice. Status stays an open string.
const (
	StatusActive   = "Active"
	StatusDraft    = "Draft"
	StatusArchived = "Archived"
)

// DocumentType is a coarse design category (Anchor, MasterList, ...)
type DocumentType struct {
	Value       string `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsUnselected reports whether the type is the "no selection" placeholder
func (t DocumentType) IsUnselected() bool {
	return IsUnselectedType(t.Value)
}

// IsUnselectedType reports whether a type identifier means "no selection"
func IsUnselectedType(value string) bool {
	return value == "" || value == UnselectedTypeValue
}

// DocumentDesignData is one named design as listed for a document type.
//
// Provider specific fields are carried in the optional members and in Extra.
// When serialized, Extra is written first and the contract fields are
// superimposed on top of it.
type DocumentDesignData struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	CreatedDate string `json:"createdDate" yaml:"createdDate"`
	Status      string `json:"status" yaml:"status"`
	Version     string `json:"version" yaml:"version"`

	FormDesignID  string `json:"formDesignId,omitempty" yaml:"formDesignId,omitempty"`
	DisplayText   string `json:"displayText,omitempty" yaml:"displayText,omitempty"`
	IsMDM         *bool  `json:"isMDM,omitempty" yaml:"isMDM,omitempty"`
	MDMSchemaName string `json:"mdmSchemaName,omitempty" yaml:"mdmSchemaName,omitempty"`

	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// designFields mirrors DocumentDesignData without the custom marshalers
type designFields DocumentDesignData

// MarshalJSON implements custom JSON marshaling to superimpose contract fields over Extra
func (d DocumentDesignData) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(designFields(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return base, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}

	merged := make(map[string]json.RawMessage, len(d.Extra)+len(fields))
	for k, v := range d.Extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// designWire decodes the optional members raw so that a provider value of an
// unexpected kind lands in Extra instead of failing the whole design.
type designWire struct {
	designFields
	FormDesignID  json.RawMessage `json:"formDesignId"`
	DisplayText   json.RawMessage `json:"displayText"`
	IsMDM         json.RawMessage `json:"isMDM"`
	MDMSchemaName json.RawMessage `json:"mdmSchemaName"`
}

// UnmarshalJSON implements json.Unmarshaler, keeping unknown members in Extra
func (d *DocumentDesignData) UnmarshalJSON(data []byte) error {
	var wire designWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range contractDesignKeys {
		delete(all, known)
	}

	fields := wire.designFields
	optional := []struct {
		key    string
		raw    json.RawMessage
		assign func(json.RawMessage) bool
	}{
		{"formDesignId", wire.FormDesignID, stringInto(&fields.FormDesignID)},
		{"displayText", wire.DisplayText, stringInto(&fields.DisplayText)},
		{"isMDM", wire.IsMDM, func(raw json.RawMessage) bool {
			var b bool
			if err := json.Unmarshal(raw, &b); err != nil {
				return false
			}
			fields.IsMDM = &b
			return true
		}},
		{"mdmSchemaName", wire.MDMSchemaName, stringInto(&fields.MDMSchemaName)},
	}
	for _, o := range optional {
		if isNullJSON(o.raw) || o.assign(o.raw) {
			delete(all, o.key)
		}
	}

	if len(all) > 0 {
		fields.Extra = all
	}

	*d = DocumentDesignData(fields)
	return nil
}

func stringInto(dst *string) func(json.RawMessage) bool {
	return func(raw json.RawMessage) bool {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '"' {
			return false
		}
		return json.Unmarshal(trimmed, dst) == nil
	}
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

var contractDesignKeys = []string{
	"id", "name", "description", "createdDate", "status", "version",
}

// ExtraString returns a provider field from Extra as a string, or "" if absent
func (d DocumentDesignData) ExtraString(key string) string {
	raw, ok := d.Extra[key]
	if !ok {
		return ""
	}
	var s FlexString
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return string(s)
}

// DocumentDesignVersion is one dated revision of a design. The server
// passes provider rows through untouched, so every member accepts a string,
// number or boolean.
type DocumentDesignVersion struct {
	Index               FlexString `json:"index"`
	EnvironmentName     FlexString `json:"environmentName"`
	TenantID            FlexString `json:"tenantId"`
	FormDesignVersionID FlexString `json:"formDesignVersionId"`
	EffectiveDate       FlexString `json:"effectiveDate"`
	Version             FlexString `json:"version"`
	StatusID            FlexString `json:"statusId"`
	StatusText          FlexString `json:"statusText"`
	FormDesignID        FlexString `json:"formDesignId"`
}

// FlexString accepts a JSON string, number or boolean and keeps its text form.
// Upstream payloads are not consistent about quoting identifiers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(trimmed, &b); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatBool(b))
	return nil
}

// MessageResponse is the body of /api/ping and /api/demo
type MessageResponse struct {
	Message string `json:"message"`
}

// DocumentTypesResponse is the body of both type list routes.
// Error is only set by the proxy when the fallback list is returned.
type DocumentTypesResponse struct {
	Types []DocumentType `json:"types"`
	Error string         `json:"error,omitempty"`
}

// DocumentDesignResponse is the body of /api/document-designs/{type}
type DocumentDesignResponse struct {
	DocumentType string               `json:"documentType"`
	Data         []DocumentDesignData `json:"data"`
}

// DesignListResponse is the body of /api/form-design/designs-by-type/{docTypeId}
type DesignListResponse struct {
	Data  []DocumentDesignData `json:"data"`
	Error string               `json:"error,omitempty"`
}

// VersionListResponse is the body of /api/form-design/design-versions/{formDesignId}.
// Data is the upstream array, passed through untouched.
type VersionListResponse struct {
	Data json.RawMessage `json:"data"`
}

// ResolveID returns the identifier used to fetch the design's versions:
// formDesignId, then id, then a provider designId member. ok is false when
// none is present.
func (d DocumentDesignData) ResolveID() (id string, ok bool) {
	for _, candidate := range []string{d.FormDesignID, d.ID, d.ExtraString("designId")} {
		if candidate != "" {
			return candidate, true
		}
	}
	return "", false
}
