package tools

import "github.com/tom-damari/pharmacy-ai-agent/pkg/llm"

// Definitions returns the tool schemas advertised to the model on every
// completion call.
func Definitions() []llm.Tool {
	return []llm.Tool{
		{
			Name: "get_medication_by_name",
			Description: "Look up medication details by name. Returns dosage, active ingredient, " +
				"prescription requirements, and price. Supports English and Hebrew names.",
			Parameters: objectSchema(map[string]interface{}{
				"medication_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the medication (English or Hebrew)",
				},
			}, "medication_name"),
		},
		{
			Name: "check_inventory",
			Description: "Check if a medication is in stock and get current quantity. " +
				"Use after get_medication_by_name to check availability.",
			Parameters: objectSchema(map[string]interface{}{
				"medication_id": map[string]interface{}{
					"type":        "integer",
					"description": "The medication ID (from get_medication_by_name result)",
				},
			}, "medication_id"),
		},
		{
			Name: "verify_user_prescription",
			Description: "Verify if a user has a valid prescription for a medication. " +
				"Required before dispensing prescription-only medications.",
			Parameters: objectSchema(map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User's 9-digit ID number",
				},
				"medication_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the medication to check prescription for",
				},
			}, "user_id", "medication_name"),
		},
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
