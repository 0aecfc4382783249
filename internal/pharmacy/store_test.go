package pharmacy

import (
	"testing"
	"time"
)

func fixedClock(iso string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", iso)
		return t
	}
}

func testStore(today string) *Store {
	return NewStore(WithClock(fixedClock(today)))
}

func TestMedicationByName(t *testing.T) {
	s := testStore("2026-03-01")

	tests := []struct {
		query  string
		wantID int
		found  bool
	}{
		{"Ibuprofen", 1, true},
		{"ibuprofen", 1, true},
		{"amox", 2, true},
		{"איבופרופן", 1, true},
		{"אמוקס", 2, true},
		{"Aspirin", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tt := range tests {
		med, ok := s.MedicationByName(tt.query)
		if ok != tt.found {
			t.Errorf("MedicationByName(%q) found = %v, want %v", tt.query, ok, tt.found)
			continue
		}
		if ok && med.ID != tt.wantID {
			t.Errorf("MedicationByName(%q) = id %d, want %d", tt.query, med.ID, tt.wantID)
		}
	}
}

func TestCheckInventory(t *testing.T) {
	s := testStore("2026-03-01")

	status, ok := s.CheckInventory(1)
	if !ok {
		t.Fatal("medication 1 should exist")
	}
	if !status.InStock || status.StockQuantity != 150 {
		t.Errorf("unexpected status: %+v", status)
	}

	status, ok = s.CheckInventory(5)
	if !ok {
		t.Fatal("medication 5 should exist")
	}
	if status.InStock {
		t.Error("Loratadine has zero stock and should report out of stock")
	}

	if _, ok := s.CheckInventory(99); ok {
		t.Error("unknown medication id should not be found")
	}
}

func TestUserByIDNumber(t *testing.T) {
	s := testStore("2026-03-01")

	user, ok := s.UserByIDNumber("123456789")
	if !ok || user.FirstName != "David" {
		t.Errorf("UserByIDNumber = %+v, ok=%v", user, ok)
	}
	if _, ok := s.UserByIDNumber("999999999"); ok {
		t.Error("unknown id number should not be found")
	}
}

func TestUserPrescriptionsFiltersExpired(t *testing.T) {
	s := testStore("2026-03-01")

	// User 9 has two prescriptions, both still valid on the fixed date.
	rxs := s.UserPrescriptions("901234567")
	if len(rxs) != 2 {
		t.Fatalf("got %d prescriptions, want 2", len(rxs))
	}

	// User 6's only prescription expired in 2024.
	if rxs := s.UserPrescriptions("678901234"); len(rxs) != 0 {
		t.Errorf("expired prescription should be filtered, got %+v", rxs)
	}

	// Unknown users yield an empty list rather than an error.
	if rxs := s.UserPrescriptions("999999999"); len(rxs) != 0 {
		t.Errorf("unknown user should have no prescriptions, got %+v", rxs)
	}
}

func TestPrescriptionExpiryIsInclusive(t *testing.T) {
	// Prescription 1 for user 1 expires 2026-06-15.
	onExpiry := testStore("2026-06-15")
	if got := onExpiry.VerifyPrescription("123456789", "Amoxicillin"); !got.HasPrescription {
		t.Errorf("prescription expiring today should still be valid: %+v", got)
	}

	dayAfter := testStore("2026-06-16")
	if got := dayAfter.VerifyPrescription("123456789", "Amoxicillin"); got.HasPrescription {
		t.Errorf("prescription should be invalid the day after expiry: %+v", got)
	}
}

func TestVerifyPrescription(t *testing.T) {
	s := testStore("2026-03-01")

	got := s.VerifyPrescription("123456789", "Amoxicillin")
	if !got.HasPrescription || got.Medication != "Amoxicillin" || got.Dosage != "500mg 3 times daily" {
		t.Errorf("valid prescription: %+v", got)
	}
	if got.RefillsRemaining == nil || *got.RefillsRemaining != 2 {
		t.Errorf("refills = %v, want 2", got.RefillsRemaining)
	}

	got = s.VerifyPrescription("123456789", "Metformin")
	if got.HasPrescription || got.Medication != "Metformin" || got.Error != "" {
		t.Errorf("no prescription for this medication: %+v", got)
	}

	got = s.VerifyPrescription("999999999", "Amoxicillin")
	if got.HasPrescription || got.Error != "User not found" {
		t.Errorf("unknown user: %+v", got)
	}

	got = s.VerifyPrescription("123456789", "Aspirin")
	if got.HasPrescription || got.Error != "Medication not found" {
		t.Errorf("unknown medication: %+v", got)
	}
}
