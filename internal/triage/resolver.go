// Package triage maps reported symptoms to candidate conditions and a
// recommended department. This is a static rule lookup, not a diagnosis.
package triage

import "github.com/healthkiosk/platform/internal/catalog"

// maxConditions caps how many candidate conditions the kiosk shows.
const maxConditions = 5

// Outcome is the guidance derived from a symptom selection.
type Outcome struct {
	Conditions            []string `json:"conditions"`
	RecommendedDepartment string   `json:"recommended_department"`
}

// Resolve walks symptomIDs in selection order and accumulates each symptom's
// conditions, keeping first-seen order and dropping duplicates, capped at
// maxConditions. The department comes from the first selected symptom only;
// the primary complaint drives the routing. Unknown ids contribute nothing.
func Resolve(symptomIDs []string) Outcome {
	out := Outcome{
		Conditions:            []string{},
		RecommendedDepartment: catalog.GeneralMedicine.Label(),
	}

	seen := make(map[string]struct{})
	for _, id := range symptomIDs {
		sym, ok := catalog.SymptomByID(id)
		if !ok {
			continue
		}
		for _, cond := range sym.Conditions {
			label := cond.Label()
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			if len(out.Conditions) < maxConditions {
				out.Conditions = append(out.Conditions, label)
			}
		}
	}

	if len(symptomIDs) > 0 {
		if first, ok := catalog.SymptomByID(symptomIDs[0]); ok {
			out.RecommendedDepartment = first.Department.Label()
		}
	}

	return out
}
