// Package catalog holds the static reference data the kiosk runs on:
// the symptom catalog, duration options, the facility directory and the
// bookable time slots. The tables are read-only; a lookup miss returns a
// zero value, never an error.
package catalog

// Text is a bilingual label.
type Text struct {
	English string `json:"english"`
	Hindi   string `json:"hindi"`
}

// Label renders the pair the way the kiosk displays it.
func (t Text) Label() string {
	if t.Hindi == "" {
		return t.English
	}
	return t.English + " / " + t.Hindi
}

// Departments a symptom can route to. Facility specialties reference the
// English half of these.
var (
	GeneralMedicine  = Text{English: "General Medicine", Hindi: "सामान्य चिकित्सा"}
	Cardiology       = Text{English: "Cardiology", Hindi: "हृदय रोग"}
	Orthopedics      = Text{English: "Orthopedics", Hindi: "हड्डी रोग"}
	Gastroenterology = Text{English: "Gastroenterology", Hindi: "पेट रोग"}
	Pulmonology      = Text{English: "Pulmonology", Hindi: "श्वास रोग"}
	Neurology        = Text{English: "Neurology", Hindi: "तंत्रिका रोग"}
)

// Symptom is one entry of the symptom catalog.
type Symptom struct {
	ID         string `json:"id"`
	Name       Text   `json:"name"`
	Department Text   `json:"department"`
	Conditions []Text `json:"conditions"`
}

// Duration is one entry of the duration catalog.
type Duration struct {
	ID   string `json:"id"`
	Name Text   `json:"name"`
}

// Facility is a static directory entry for a bookable health facility.
type Facility struct {
	ID          string   `json:"id"`
	Name        Text     `json:"name"`
	Address     Text     `json:"address"`
	Type        Text     `json:"type"`
	Specialties []string `json:"specialties"`
	Distance    string   `json:"distance"`
}

// Clone returns a deep copy, so a stored snapshot cannot alias catalog data.
func (f Facility) Clone() Facility {
	out := f
	out.Specialties = append([]string(nil), f.Specialties...)
	return out
}

// Condition labels, shared across symptoms so a condition reachable through
// two symptoms deduplicates to one entry.
var (
	condViralFever   = Text{English: "Acute Viral Fever", Hindi: "तीव्र वायरल बुखार"}
	condMalaria      = Text{English: "Malaria", Hindi: "मलेरिया"}
	condTyphoid      = Text{English: "Typhoid", Hindi: "टाइफाइड"}
	condDengue       = Text{English: "Dengue", Hindi: "डेंगू"}
	condURI          = Text{English: "Upper Respiratory Infection", Hindi: "ऊपरी श्वसन संक्रमण"}
	condBronchitis   = Text{English: "Bronchitis", Hindi: "ब्रोंकाइटिस"}
	condTB           = Text{English: "Tuberculosis", Hindi: "क्षय रोग (टीबी)"}
	condPneumonia    = Text{English: "Pneumonia", Hindi: "निमोनिया"}
	condAsthma       = Text{English: "Asthma", Hindi: "दमा"}
	condCOPD         = Text{English: "COPD", Hindi: "सीओपीडी"}
	condHeartDisease = Text{English: "Heart Disease", Hindi: "हृदय रोग"}
	condAngina       = Text{English: "Angina", Hindi: "एनजाइना"}
	condArrhythmia   = Text{English: "Arrhythmia", Hindi: "अनियमित धड़कन"}
	condStroke       = Text{English: "Stroke", Hindi: "आघात (स्ट्रोक)"}
	condHypoglycemia = Text{English: "Low Blood Sugar", Hindi: "निम्न रक्त शर्करा"}
	condMigraine     = Text{English: "Migraine", Hindi: "माइग्रेन"}
	condTensionHead  = Text{English: "Tension Headache", Hindi: "तनाव सिरदर्द"}
	condMeningitis   = Text{English: "Meningitis", Hindi: "मस्तिष्क ज्वर"}
	condAnemia       = Text{English: "Anemia", Hindi: "खून की कमी"}
	condLowBP        = Text{English: "Low Blood Pressure", Hindi: "निम्न रक्तचाप"}
	condDehydration  = Text{English: "Dehydration", Hindi: "निर्जलीकरण"}
	condGastro       = Text{English: "Gastroenteritis", Hindi: "आंत्रशोथ"}
	condFoodPoison   = Text{English: "Food Poisoning", Hindi: "भोजन विषाक्तता"}
	condCholera      = Text{English: "Cholera", Hindi: "हैजा"}
	condGastritis    = Text{English: "Gastritis", Hindi: "जठरशोथ"}
	condUlcer        = Text{English: "Peptic Ulcer", Hindi: "पेट का अल्सर"}
	condAppendicitis = Text{English: "Appendicitis", Hindi: "अपेंडिसाइटिस"}
	condHepatitis    = Text{English: "Hepatitis", Hindi: "हेपेटाइटिस"}
	condJaundice     = Text{English: "Jaundice", Hindi: "पीलिया"}
	condDiabetes     = Text{English: "Diabetes", Hindi: "मधुमेह"}
	condChikungunya  = Text{English: "Chikungunya", Hindi: "चिकनगुनिया"}
	condArthritis    = Text{English: "Arthritis", Hindi: "गठिया"}
	condHeatStroke   = Text{English: "Heat Stroke", Hindi: "लू (हीट स्ट्रोक)"}
	condEpilepsy     = Text{English: "Epilepsy", Hindi: "मिर्गी"}
	condUTI          = Text{English: "Urinary Tract Infection", Hindi: "मूत्र संक्रमण"}
)

// symptoms covers the top diseases of the catchment area: fevers (malaria,
// dengue, typhoid), TB, pneumonia, cardiac disease, stroke, diarrheal
// illness, asthma/COPD, diabetes, jaundice/hepatitis, heat stroke, anemia
// and epilepsy.
var symptoms = []Symptom{
	{ID: "fever", Name: Text{English: "Fever", Hindi: "बुखार"}, Department: GeneralMedicine,
		Conditions: []Text{condViralFever, condMalaria, condTyphoid}},
	{ID: "high_fever", Name: Text{English: "High Fever", Hindi: "तेज बुखार"}, Department: GeneralMedicine,
		Conditions: []Text{condDengue, condMalaria, condTyphoid}},
	{ID: "chills", Name: Text{English: "Chills", Hindi: "ठंड लगना"}, Department: GeneralMedicine,
		Conditions: []Text{condMalaria, condViralFever}},

	{ID: "cough", Name: Text{English: "Cough", Hindi: "खांसी"}, Department: Pulmonology,
		Conditions: []Text{condURI, condBronchitis}},
	{ID: "chronic_cough", Name: Text{English: "Chronic Cough (TB)", Hindi: "लगातार खांसी"}, Department: Pulmonology,
		Conditions: []Text{condTB, condCOPD}},
	{ID: "blood_cough", Name: Text{English: "Coughing Blood", Hindi: "खांसी में खून"}, Department: Pulmonology,
		Conditions: []Text{condTB, condPneumonia}},

	{ID: "breathlessness", Name: Text{English: "Breathlessness", Hindi: "सांस फूलना"}, Department: Pulmonology,
		Conditions: []Text{condAsthma, condCOPD, condPneumonia}},
	{ID: "chest_pain", Name: Text{English: "Chest Pain", Hindi: "सीने में दर्द"}, Department: Cardiology,
		Conditions: []Text{condHeartDisease, condAngina}},
	{ID: "palpitations", Name: Text{English: "Rapid Heartbeat", Hindi: "दिल तेज धड़कना"}, Department: Cardiology,
		Conditions: []Text{condArrhythmia, condAnemia}},

	{ID: "sudden_weakness", Name: Text{English: "Sudden Weakness (Stroke)", Hindi: "अचानक कमजोरी"}, Department: Neurology,
		Conditions: []Text{condStroke, condHypoglycemia}},
	{ID: "paralysis", Name: Text{English: "Paralysis", Hindi: "शरीर के एक हिस्से में लकवा"}, Department: Neurology,
		Conditions: []Text{condStroke}},
	{ID: "slurred_speech", Name: Text{English: "Slurred Speech", Hindi: "बोलने में परेशानी"}, Department: Neurology,
		Conditions: []Text{condStroke}},

	{ID: "headache", Name: Text{English: "Headache", Hindi: "सिरदर्द"}, Department: GeneralMedicine,
		Conditions: []Text{condMigraine, condTensionHead}},
	{ID: "severe_headache", Name: Text{English: "Severe Headache", Hindi: "तेज सिरदर्द"}, Department: Neurology,
		Conditions: []Text{condMigraine, condMeningitis}},
	{ID: "dizziness", Name: Text{English: "Dizziness", Hindi: "चक्कर आना"}, Department: GeneralMedicine,
		Conditions: []Text{condAnemia, condLowBP, condDehydration}},

	{ID: "vomiting", Name: Text{English: "Vomiting", Hindi: "उल्टी"}, Department: Gastroenterology,
		Conditions: []Text{condGastro, condFoodPoison}},
	{ID: "diarrhea", Name: Text{English: "Diarrhea", Hindi: "दस्त"}, Department: Gastroenterology,
		Conditions: []Text{condGastro, condCholera, condDehydration}},
	{ID: "abdominal_pain", Name: Text{English: "Abdominal Pain", Hindi: "पेट दर्द"}, Department: Gastroenterology,
		Conditions: []Text{condGastritis, condUlcer, condAppendicitis}},

	{ID: "loss_of_appetite", Name: Text{English: "Loss of Appetite", Hindi: "भूख न लगना"}, Department: Gastroenterology,
		Conditions: []Text{condHepatitis, condTB}},
	{ID: "weight_loss", Name: Text{English: "Weight Loss", Hindi: "वजन कम होना"}, Department: GeneralMedicine,
		Conditions: []Text{condTB, condDiabetes}},

	{ID: "yellow_eyes", Name: Text{English: "Yellow Eyes (Jaundice)", Hindi: "आंखों में पीलापन"}, Department: Gastroenterology,
		Conditions: []Text{condJaundice, condHepatitis}},
	{ID: "dark_urine", Name: Text{English: "Dark Urine", Hindi: "गहरा पेशाब"}, Department: Gastroenterology,
		Conditions: []Text{condJaundice, condHepatitis, condDehydration}},

	{ID: "body_ache", Name: Text{English: "Body Ache", Hindi: "शरीर दर्द"}, Department: GeneralMedicine,
		Conditions: []Text{condViralFever, condDengue, condChikungunya}},
	{ID: "joint_pain", Name: Text{English: "Joint Pain", Hindi: "जोड़ों का दर्द"}, Department: Orthopedics,
		Conditions: []Text{condArthritis, condChikungunya}},

	{ID: "heat_exhaustion", Name: Text{English: "Heat Stroke", Hindi: "लू लगना"}, Department: GeneralMedicine,
		Conditions: []Text{condHeatStroke, condDehydration}},
	{ID: "excessive_sweating", Name: Text{English: "Excessive Sweating", Hindi: "अधिक पसीना"}, Department: GeneralMedicine,
		Conditions: []Text{condHeatStroke, condHypoglycemia}},

	{ID: "seizures", Name: Text{English: "Seizures (Epilepsy)", Hindi: "दौरे पड़ना"}, Department: Neurology,
		Conditions: []Text{condEpilepsy}},

	{ID: "fatigue", Name: Text{English: "Extreme Fatigue", Hindi: "अत्यधिक थकान"}, Department: GeneralMedicine,
		Conditions: []Text{condAnemia, condDiabetes}},
	{ID: "pale_skin", Name: Text{English: "Pale Skin (Anemia)", Hindi: "पीला चेहरा"}, Department: GeneralMedicine,
		Conditions: []Text{condAnemia}},

	{ID: "frequent_urination", Name: Text{English: "Frequent Urination (Diabetes)", Hindi: "बार-बार पेशाब"}, Department: GeneralMedicine,
		Conditions: []Text{condDiabetes, condUTI}},
	{ID: "excessive_thirst", Name: Text{English: "Excessive Thirst", Hindi: "अधिक प्यास लगना"}, Department: GeneralMedicine,
		Conditions: []Text{condDiabetes, condDehydration}},
}

var durations = []Duration{
	{ID: "1-2", Name: Text{English: "1-2 days", Hindi: "1-2 दिन"}},
	{ID: "3-5", Name: Text{English: "3-5 days", Hindi: "3-5 दिन"}},
	{ID: "6-10", Name: Text{English: "6-10 days", Hindi: "6-10 दिन"}},
	{ID: "10+", Name: Text{English: "More than 10 days", Hindi: "10 दिन से अधिक"}},
}

var facilities = []Facility{
	{
		ID:      "fac-001",
		Name:    Text{English: "Patna Medical College Hospital (PMCH)", Hindi: "पटना मेडिकल कॉलेज अस्पताल"},
		Address: Text{English: "Ashok Rajpath, Patna", Hindi: "अशोक राजपथ, पटना"},
		Type:    Text{English: "Government Medical College", Hindi: "सरकारी मेडिकल कॉलेज"},
		Specialties: []string{
			"General Medicine", "Cardiology", "Neurology", "Pediatrics",
			"Pulmonology", "Orthopedics", "Gastroenterology", "Gynecology",
		},
		Distance: "2.5 km",
	},
	{
		ID:      "fac-002",
		Name:    Text{English: "District Hospital", Hindi: "जिला अस्पताल"},
		Address: Text{English: "Civil Lines, District HQ", Hindi: "सिविल लाइन्स, जिला मुख्यालय"},
		Type:    Text{English: "District Hospital", Hindi: "जिला अस्पताल"},
		Specialties: []string{
			"General Medicine", "Pediatrics", "Orthopedics", "Cardiology", "Gastroenterology",
		},
		Distance: "1.2 km",
	},
	{
		ID:          "fac-003",
		Name:        Text{English: "Primary Health Centre (PHC)", Hindi: "प्राथमिक स्वास्थ्य केंद्र (PHC)"},
		Address:     Text{English: "Block Road, Sector 5", Hindi: "ब्लॉक रोड, सेक्टर 5"},
		Type:        Text{English: "Primary Health Centre", Hindi: "प्राथमिक स्वास्थ्य केंद्र"},
		Specialties: []string{"General Medicine", "Pediatrics"},
		Distance:    "0.8 km",
	},
	{
		ID:      "fac-004",
		Name:    Text{English: "Community Health Centre (CHC)", Hindi: "सामुदायिक स्वास्थ्य केंद्र (CHC)"},
		Address: Text{English: "NH-45, Near Bus Stand", Hindi: "NH-45, बस स्टैंड के पास"},
		Type:    Text{English: "Community Health Centre", Hindi: "सामुदायिक स्वास्थ्य केंद्र"},
		Specialties: []string{
			"General Medicine", "Orthopedics", "Pulmonology", "Gastroenterology",
		},
		Distance: "4.0 km",
	},
}

var timeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "02:00 PM",
	"02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
}

var (
	symptomIndex  = indexSymptoms(symptoms)
	durationIndex = indexDurations(durations)
	facilityIndex = indexFacilities(facilities)
	slotIndex     = indexSlots(timeSlots)
)

func indexSymptoms(list []Symptom) map[string]Symptom {
	m := make(map[string]Symptom, len(list))
	for _, s := range list {
		m[s.ID] = s
	}
	return m
}

func indexDurations(list []Duration) map[string]Duration {
	m := make(map[string]Duration, len(list))
	for _, d := range list {
		m[d.ID] = d
	}
	return m
}

func indexFacilities(list []Facility) map[string]Facility {
	m := make(map[string]Facility, len(list))
	for _, f := range list {
		m[f.ID] = f
	}
	return m
}

func indexSlots(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}

// Symptoms returns the symptom catalog in display order.
func Symptoms() []Symptom {
	return append([]Symptom(nil), symptoms...)
}

// SymptomByID returns the catalog entry for id. ok is false on a miss.
func SymptomByID(id string) (Symptom, bool) {
	s, ok := symptomIndex[id]
	return s, ok
}

// Durations returns the duration catalog in display order.
func Durations() []Duration {
	return append([]Duration(nil), durations...)
}

// DurationByID returns the duration entry for id. ok is false on a miss.
func DurationByID(id string) (Duration, bool) {
	d, ok := durationIndex[id]
	return d, ok
}

// Facilities returns deep copies of the facility directory.
func Facilities() []Facility {
	out := make([]Facility, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, f.Clone())
	}
	return out
}

// FacilityByID returns a deep copy of the facility for id.
func FacilityByID(id string) (Facility, bool) {
	f, ok := facilityIndex[id]
	if !ok {
		return Facility{}, false
	}
	return f.Clone(), true
}

// TimeSlots returns the bookable slot values in display order.
func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

// ValidTimeSlot reports whether slot is one of the bookable values.
func ValidTimeSlot(slot string) bool {
	_, ok := slotIndex[slot]
	return ok
}
