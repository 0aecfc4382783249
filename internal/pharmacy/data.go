package pharmacy

// Medication is a catalog entry with bilingual naming.
type Medication struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	NameHe               string  `json:"name_he"`
	Description          string  `json:"description"`
	DescriptionHe        string  `json:"description_he"`
	ActiveIngredient     string  `json:"active_ingredient"`
	DosageForm           string  `json:"dosage_form"`
	StandardDosage       string  `json:"standard_dosage"`
	RequiresPrescription bool    `json:"requires_prescription"`
	StockQuantity        int     `json:"stock_quantity"`
	Price                float64 `json:"price"`
}

// User is a registered customer, looked up by national ID number.
type User struct {
	ID          int    `json:"id"`
	IDNumber    string `json:"id_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// Prescription links a user to a medication with refill and expiry state.
// ExpiryDate is an ISO date string so validity checks are plain string
// comparisons against today's date.
type Prescription struct {
	ID               int    `json:"id"`
	UserID           int    `json:"user_id"`
	MedicationID     int    `json:"medication_id"`
	Dosage           string `json:"dosage"`
	RefillsRemaining int    `json:"refills_remaining"`
	ExpiryDate       string `json:"expiry_date"`
}

var medications = []Medication{
	{
		ID:               1,
		Name:             "Ibuprofen",
		NameHe:           "איבופרופן",
		Description:      "Nonsteroidal anti-inflammatory drug (NSAID) for pain and fever",
		DescriptionHe:    "תרופה נוגדת דלקת לא סטרואידית לכאב וחום",
		ActiveIngredient: "Ibuprofen",
		DosageForm:       "Tablet",
		StandardDosage:   "200-400mg every 4-6 hours",
		StockQuantity:    150,
		Price:            12.90,
	},
	{
		ID:                   2,
		Name:                 "Amoxicillin",
		NameHe:               "אמוקסיצילין",
		Description:          "Antibiotic used to treat bacterial infections",
		DescriptionHe:        "אנטיביוטיקה לטיפול בזיהומים חיידקיים",
		ActiveIngredient:     "Amoxicillin",
		DosageForm:           "Capsule",
		StandardDosage:       "500mg every 8 hours",
		RequiresPrescription: true,
		StockQuantity:        45,
		Price:                28.50,
	},
	{
		ID:               3,
		Name:             "Omeprazole",
		NameHe:           "אומפרזול",
		Description:      "Proton pump inhibitor for acid reflux and ulcers",
		DescriptionHe:    "מעכב משאבת פרוטונים לרפלוקס וכיבים",
		ActiveIngredient: "Omeprazole",
		DosageForm:       "Capsule",
		StandardDosage:   "20mg once daily",
		StockQuantity:    80,
		Price:            19.90,
	},
	{
		ID:                   4,
		Name:                 "Metformin",
		NameHe:               "מטפורמין",
		Description:          "Oral diabetes medication that helps control blood sugar",
		DescriptionHe:        "תרופה פומית לסוכרת לשליטה ברמת הסוכר בדם",
		ActiveIngredient:     "Metformin Hydrochloride",
		DosageForm:           "Tablet",
		StandardDosage:       "500mg twice daily",
		RequiresPrescription: true,
		StockQuantity:        200,
		Price:                8.50,
	},
	{
		ID:               5,
		Name:             "Loratadine",
		NameHe:           "לוראטדין",
		Description:      "Antihistamine for allergy relief",
		DescriptionHe:    "אנטיהיסטמין להקלה באלרגיות",
		ActiveIngredient: "Loratadine",
		DosageForm:       "Tablet",
		StandardDosage:   "10mg once daily",
		StockQuantity:    0,
		Price:            15.90,
	},
}

var users = []User{
	{ID: 1, IDNumber: "123456789", FirstName: "David", LastName: "Cohen", Phone: "050-1234567", DateOfBirth: "1985-03-15"},
	{ID: 2, IDNumber: "234567890", FirstName: "Sarah", LastName: "Levi", Phone: "052-2345678", DateOfBirth: "1990-07-22"},
	{ID: 3, IDNumber: "345678901", FirstName: "Michael", LastName: "Mizrachi", Phone: "054-3456789", DateOfBirth: "1978-11-08"},
	{ID: 4, IDNumber: "456789012", FirstName: "Rachel", LastName: "Goldberg", Phone: "053-4567890", DateOfBirth: "1995-01-30"},
	{ID: 5, IDNumber: "567890123", FirstName: "Yossi", LastName: "Peretz", Phone: "050-5678901", DateOfBirth: "1982-09-12"},
	{ID: 6, IDNumber: "678901234", FirstName: "Miriam", LastName: "Azulay", Phone: "052-6789012", DateOfBirth: "1988-04-25"},
	{ID: 7, IDNumber: "789012345", FirstName: "Daniel", LastName: "Shapiro", Phone: "054-7890123", DateOfBirth: "1972-12-03"},
	{ID: 8, IDNumber: "890123456", FirstName: "Noa", LastName: "Ben-David", Phone: "053-8901234", DateOfBirth: "2000-06-18"},
	{ID: 9, IDNumber: "901234567", FirstName: "Eli", LastName: "Katz", Phone: "050-9012345", DateOfBirth: "1965-08-07"},
	{ID: 10, IDNumber: "012345678", FirstName: "Tamar", LastName: "Friedman", Phone: "052-0123456", DateOfBirth: "1992-02-14"},
}

var prescriptions = []Prescription{
	{ID: 1, UserID: 1, MedicationID: 2, Dosage: "500mg 3 times daily", RefillsRemaining: 2, ExpiryDate: "2026-06-15"},
	{ID: 2, UserID: 3, MedicationID: 4, Dosage: "500mg twice daily", RefillsRemaining: 5, ExpiryDate: "2025-12-31"},
	{ID: 3, UserID: 5, MedicationID: 2, Dosage: "250mg 3 times daily", RefillsRemaining: 0, ExpiryDate: "2026-01-01"},
	{ID: 4, UserID: 6, MedicationID: 4, Dosage: "1000mg once daily", RefillsRemaining: 3, ExpiryDate: "2024-09-30"},
	{ID: 5, UserID: 9, MedicationID: 2, Dosage: "500mg 3 times daily", RefillsRemaining: 1, ExpiryDate: "2026-08-20"},
	{ID: 6, UserID: 9, MedicationID: 4, Dosage: "850mg twice daily", RefillsRemaining: 4, ExpiryDate: "2026-11-15"},
}
