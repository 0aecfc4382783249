package pharmacy

import (
	"strings"
	"time"
)

// Store serves the pharmacy catalog, customers, and prescriptions from an
// in-memory dataset. The clock is injectable so prescription validity is
// testable against fixed dates.
type Store struct {
	medications   []Medication
	users         []User
	prescriptions []Prescription
	now           func() time.Time
}

type StoreOption func(*Store)

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		medications:   medications,
		users:         users,
		prescriptions: prescriptions,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

// MedicationByName finds a medication by name. Matching is case-insensitive
// and accepts partial matches in either English or Hebrew.
func (s *Store) MedicationByName(name string) (Medication, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Medication{}, false
	}
	for _, med := range s.medications {
		if strings.Contains(strings.ToLower(med.Name), needle) || strings.Contains(med.NameHe, needle) {
			return med, true
		}
	}
	return Medication{}, false
}

// InventoryStatus is the stock view of a single medication.
type InventoryStatus struct {
	MedicationID  int     `json:"medication_id"`
	Name          string  `json:"name"`
	StockQuantity int     `json:"stock_quantity"`
	InStock       bool    `json:"in_stock"`
	Price         float64 `json:"price"`
}

func (s *Store) CheckInventory(medicationID int) (InventoryStatus, bool) {
	for _, med := range s.medications {
		if med.ID == medicationID {
			return InventoryStatus{
				MedicationID:  med.ID,
				Name:          med.Name,
				StockQuantity: med.StockQuantity,
				InStock:       med.StockQuantity > 0,
				Price:         med.Price,
			}, true
		}
	}
	return InventoryStatus{}, false
}

func (s *Store) UserByIDNumber(idNumber string) (User, bool) {
	for _, u := range s.users {
		if u.IDNumber == idNumber {
			return u, true
		}
	}
	return User{}, false
}

// PrescriptionSummary is one active prescription joined with its medication.
type PrescriptionSummary struct {
	PrescriptionID   int    `json:"prescription_id"`
	MedicationName   string `json:"medication_name"`
	MedicationNameHe string `json:"medication_name_he"`
	Dosage           string `json:"dosage"`
	RefillsRemaining int    `json:"refills_remaining"`
	ExpiryDate       string `json:"expiry_date"`
}

// UserPrescriptions returns the user's unexpired prescriptions. A
// prescription expiring today is still valid. An unknown user yields an
// empty list, not an error.
func (s *Store) UserPrescriptions(idNumber string) []PrescriptionSummary {
	user, ok := s.UserByIDNumber(idNumber)
	if !ok {
		return nil
	}

	today := s.today()
	var results []PrescriptionSummary
	for _, rx := range s.prescriptions {
		if rx.UserID != user.ID || rx.ExpiryDate < today {
			continue
		}
		for _, med := range s.medications {
			if med.ID == rx.MedicationID {
				results = append(results, PrescriptionSummary{
					PrescriptionID:   rx.ID,
					MedicationName:   med.Name,
					MedicationNameHe: med.NameHe,
					Dosage:           rx.Dosage,
					RefillsRemaining: rx.RefillsRemaining,
					ExpiryDate:       rx.ExpiryDate,
				})
				break
			}
		}
	}
	return results
}

// VerificationResult reports whether a user holds a valid prescription for a
// medication. Error carries the lookup failure mode when one applies.
type VerificationResult struct {
	HasPrescription  bool   `json:"has_prescription"`
	Medication       string `json:"medication,omitempty"`
	Dosage           string `json:"dosage,omitempty"`
	RefillsRemaining *int   `json:"refills_remaining,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (s *Store) VerifyPrescription(idNumber, medicationName string) VerificationResult {
	user, ok := s.UserByIDNumber(idNumber)
	if !ok {
		return VerificationResult{Error: "User not found"}
	}
	med, ok := s.MedicationByName(medicationName)
	if !ok {
		return VerificationResult{Error: "Medication not found"}
	}

	today := s.today()
	for _, rx := range s.prescriptions {
		if rx.UserID == user.ID && rx.MedicationID == med.ID && rx.ExpiryDate >= today {
			refills := rx.RefillsRemaining
			return VerificationResult{
				HasPrescription:  true,
				Medication:       med.Name,
				Dosage:           rx.Dosage,
				RefillsRemaining: &refills,
				ExpiryDate:       rx.ExpiryDate,
			}
		}
	}
	return VerificationResult{Medication: med.Name}
}
