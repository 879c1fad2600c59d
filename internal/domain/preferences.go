package domain

// Preferences is the sanitized questionnaire input for one recommendation
// request. The HTTP boundary coerces raw JSON into this shape defensively;
// the scoring engine assumes every field already has the right type.
type Preferences struct {
	Recipient  string   `json:"recipient"`
	Occasion   string   `json:"occasion"`
	Age        string   `json:"age"` // number or free text; first integer substring is used
	GiftType   string   `json:"giftType"`
	GiftNumber string   `json:"giftNumber"` // "Un seul" | "Plusieurs"
	Categories []string `json:"categories"`
	Exclude    []string `json:"exclude"`
	Criteria   []string `json:"criteria"`
	Interests  []string `json:"interests"`
	BudgetMin  *float64 `json:"budgetMin"` // euros
	BudgetMax  *float64 `json:"budgetMax"` // euros
	Ideas      string   `json:"ideas"`
	Info       string   `json:"info"`
	PersonInfo string   `json:"personInfo"`
}
