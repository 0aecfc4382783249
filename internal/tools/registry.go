// Package tools exposes the pharmacy lookups as model-callable functions and
// dispatches tool invocations to the store.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tom-damari/pharmacy-ai-agent/internal/pharmacy"
)

// Registry dispatches tool calls against the pharmacy store. Results are
// JSON objects; lookup failures are reported inside the result as an
// "error" member rather than as a Go error, so the model can read them.
type Registry struct {
	store *pharmacy.Store
}

func NewRegistry(store *pharmacy.Store) *Registry {
	return &Registry{store: store}
}

type medicationResult struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	NameHe               string  `json:"name_he"`
	Description          string  `json:"description"`
	DescriptionHe        string  `json:"description_he"`
	ActiveIngredient     string  `json:"active_ingredient"`
	DosageForm           string  `json:"dosage_form"`
	StandardDosage       string  `json:"standard_dosage"`
	RequiresPrescription bool    `json:"requires_prescription"`
	Price                float64 `json:"price"`
}

type errorResult struct {
	Error string `json:"error"`
}

// Execute runs the named tool with raw JSON arguments and returns the result
// serialized as JSON. Malformed argument payloads are treated as empty
// arguments, which surfaces as the tool's own missing-parameter error.
func (r *Registry) Execute(name, rawArgs string) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		args = map[string]interface{}{}
	}

	switch name {
	case "get_medication_by_name":
		return r.getMedicationByName(args)
	case "check_inventory":
		return r.checkInventory(args)
	case "verify_user_prescription":
		return r.verifyUserPrescription(args)
	default:
		return marshal(errorResult{Error: fmt.Sprintf("Unknown tool: %s", name)})
	}
}

func (r *Registry) getMedicationByName(args map[string]interface{}) string {
	med, ok := r.store.MedicationByName(stringArg(args, "medication_name"))
	if !ok {
		return marshal(errorResult{Error: "Medication not found"})
	}
	return marshal(medicationResult{
		ID:                   med.ID,
		Name:                 med.Name,
		NameHe:               med.NameHe,
		Description:          med.Description,
		DescriptionHe:        med.DescriptionHe,
		ActiveIngredient:     med.ActiveIngredient,
		DosageForm:           med.DosageForm,
		StandardDosage:       med.StandardDosage,
		RequiresPrescription: med.RequiresPrescription,
		Price:                med.Price,
	})
}

func (r *Registry) checkInventory(args map[string]interface{}) string {
	id, ok := intArg(args, "medication_id")
	if !ok {
		return marshal(errorResult{Error: "medication_id is required"})
	}
	status, found := r.store.CheckInventory(id)
	if !found {
		return marshal(errorResult{Error: "Medication not found"})
	}
	return marshal(status)
}

func (r *Registry) verifyUserPrescription(args map[string]interface{}) string {
	userID := stringArg(args, "user_id")
	medName := stringArg(args, "medication_name")
	if userID == "" || medName == "" {
		return marshal(errorResult{Error: "user_id and medication_name are required"})
	}
	return marshal(r.store.VerifyPrescription(userID, medName))
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// intArg accepts both JSON numbers and numeric strings; models sometimes
// quote integer parameters.
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error": "internal serialization failure"}`
	}
	return string(data)
}
