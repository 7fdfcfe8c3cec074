package formdesign

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"dms/internal/domain"
	"dms/internal/domain/models"
)

// FallbackTypes is the type list answered when the upstream call fails
func FallbackTypes() []models.DocumentType {
	return []models.DocumentType{
		{Value: models.UnselectedTypeValue, Label: models.UnselectedTypeLabel},
		{Value: "error", Label: "⚠️ API Connection Failed"},
	}
}

// extractItems returns the item array of a payload that is either a bare
// array or an object holding the array under one of the wrapper keys
func extractItems(body []byte, wrappers []string) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", domain.ErrUnrecognizedShape)
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root.Array(), nil
	}
	if root.IsObject() {
		for _, key := range wrappers {
			if v := root.Get(key); v.IsArray() {
				return v.Array(), nil
			}
		}
		return nil, fmt.Errorf("%w: object has no array under any of %v", domain.ErrUnrecognizedShape, wrappers)
	}
	return nil, fmt.Errorf("%w: expected array or object, got %s", domain.ErrUnrecognizedShape, root.Type)
}

// present reports whether a member counts as set. Absent, null, false,
// empty strings and numeric zero are skipped so the next candidate is tried.
func present(v gjson.Result) bool {
	if !v.Exists() {
		return false
	}
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	}
	return true
}

// firstOf returns the text of the first present candidate member
func firstOf(item gjson.Result, candidates []string) string {
	for _, key := range candidates {
		if v := item.Get(key); present(v) {
			return v.String()
		}
	}
	return ""
}

// NormalizeDocumentTypes maps an upstream type payload onto DocumentType.
// Non-object items are skipped. The result is not yet guaranteed to start
// with the unselected option; see EnsureUnselected.
func NormalizeDocumentTypes(body []byte, spec ShapeSpec) ([]models.DocumentType, error) {
	items, err := extractItems(body, spec.Wrappers)
	if err != nil {
		return nil, err
	}

	types := make([]models.DocumentType, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		types = append(types, models.DocumentType{
			Value:       firstOf(item, spec.Candidates("value")),
			Label:       firstOf(item, spec.Candidates("label")),
			Description: firstOf(item, spec.Candidates("description")),
		})
	}
	return types, nil
}

// EnsureUnselected returns a list with exactly one entry whose value is
// "0", placed first. The first "0" entry found is kept (and moved to the
// front), later ones are dropped, and entries with an empty value are
// dropped since they cannot be selected. If no "0" entry exists the
// default "--Select--" option is prepended.
func EnsureUnselected(types []models.DocumentType) []models.DocumentType {
	var unselected *models.DocumentType
	rest := make([]models.DocumentType, 0, len(types))

	for i := range types {
		switch types[i].Value {
		case "":
			continue
		case models.UnselectedTypeValue:
			if unselected == nil {
				t := types[i]
				unselected = &t
			}
			continue
		}
		rest = append(rest, types[i])
	}

	if unselected == nil {
		unselected = &models.DocumentType{
			Value: models.UnselectedTypeValue,
			Label: models.UnselectedTypeLabel,
		}
	}
	return append([]models.DocumentType{*unselected}, rest...)
}

func normalizeDesign(item gjson.Result, spec ShapeSpec) models.DocumentDesignData {
	d := models.DocumentDesignData{
		ID:          firstOf(item, spec.Candidates("id")),
		Name:        firstOf(item, spec.Candidates("name")),
		Description: firstOf(item, spec.Candidates("description")),
		CreatedDate: firstOf(item, spec.Candidates("createdDate")),
		Status:      firstOf(item, spec.Candidates("status")),
		Version:     firstOf(item, spec.Candidates("version")),
	}

	// Members lifted into typed fields stay out of Extra. A value the typed
	// field cannot hold is passed through in Extra untouched.
	lifted := make(map[string]bool, 4)
	if v := item.Get("formDesignId"); present(v) {
		d.FormDesignID = v.String()
		lifted["formDesignId"] = true
	}
	if v := item.Get("displayText"); present(v) {
		d.DisplayText = v.String()
		lifted["displayText"] = true
	}
	if v := item.Get("isMDM"); v.IsBool() {
		b := v.Bool()
		d.IsMDM = &b
		lifted["isMDM"] = true
	}
	if v := item.Get("mdmSchemaName"); present(v) {
		d.MDMSchemaName = v.String()
		lifted["mdmSchemaName"] = true
	}

	item.ForEach(func(key, value gjson.Result) bool {
		if lifted[key.Str] {
			return true
		}
		if d.Extra == nil {
			d.Extra = make(map[string]json.RawMessage)
		}
		d.Extra[key.Str] = json.RawMessage(value.Raw)
		return true
	})

	return d
}
