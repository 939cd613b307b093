package model

// Incident is a read-only snapshot of one row in the incident table.
// Every field is optional in the store; missing values are substituted
// with FieldPlaceholder once, at the store boundary, so downstream code
// never sees an empty field.
type Incident struct {
	ID              string `json:"Incident ID"`
	Title           string `json:"Title"`
	Status          string `json:"Status"`
	Priority        string `json:"Priority"`
	Urgency         string `json:"Urgency"`
	Category        string `json:"Category"`
	AffectedService string `json:"Affected Service"`
	RootCause       string `json:"Root Cause"`
}

// FieldPlaceholder renders in place of any attribute absent from the store.
const FieldPlaceholder = "N/A"
