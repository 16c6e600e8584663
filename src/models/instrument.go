package models

// TreatmentPolicy distinguishes market-priced instruments from face-value
// instruments such as short-term government bills, which are carried at a
// fixed nominal unit price instead of a market quote.
type TreatmentPolicy string

const (
	TreatmentStandard  TreatmentPolicy = "STANDARD"
	TreatmentFaceValue TreatmentPolicy = "FACE_VALUE"
)

// All face-value rows collapse into this single synthetic identity,
// regardless of the broker-specific codes they were reported under.
const FaceValueCanonicalID = "GOV-BILLS"

const FaceValueDisplayName = "Government Bills"

// FaceValueUnitPrice is the par convention for face-value instruments: 1.0
// per unit of reported quantity, used for both unit cost and price.
const FaceValueUnitPrice = 1.0

type CanonicalInstrument struct {
	CanonicalID string
	DisplayName string
	Policy      TreatmentPolicy
}
